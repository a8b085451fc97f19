package impl

import (
	"testing"
	"time"

	"identity/config"
	"identity/internal/domain/service"
	"identity/internal/infra/auth"

	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) service.TokenIssuer {
	t.Helper()

	issuer, err := auth.NewJWTIssuer(&config.Config{
		Token: config.TokenConfig{
			Secret: "test-secret-key",
			TTL:    time.Hour,
		},
	})
	require.NoError(t, err)

	return issuer
}
