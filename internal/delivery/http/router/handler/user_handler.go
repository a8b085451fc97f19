package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"identity/internal/delivery/http/middleware"
	"identity/internal/delivery/http/response"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user CRUD handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// statusBody is the minimal acknowledgement returned by mutating endpoints.
type statusBody struct {
	Status string `json:"status"`
}

// List handles GET /api/users?page=N.
func (h *UserHandler) List(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_PAGE", "Page must be a positive integer")
		}
		page = parsed
	}

	views, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c echo.Context) error {
	var input usecase.UserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if _, err := h.uc.Create(c.Request().Context(), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, statusBody{Status: "User created!"})
}

// Show handles GET /api/users/:id.
func (h *UserHandler) Show(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	view, err := h.uc.Show(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Update handles PUT /api/users/:id with full-replace semantics.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	var input usecase.UserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if _, err := h.uc.Update(c.Request().Context(), id, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, statusBody{Status: "User updated!"})
}

// Me handles GET /api/me. The user ID comes from the verified token.
func (h *UserHandler) Me(c echo.Context) error {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized.WrapMessage("no authenticated user in context"))
	}

	view, err := h.uc.Show(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, statusBody{Status: "User deleted!"})
}
