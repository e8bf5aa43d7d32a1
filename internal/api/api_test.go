package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
	"go-talentiq-client/internal/nav"
	"go-talentiq-client/internal/session"
)

// newTestGateway wires a gateway against an httptest backend with a
// signed-in session, the way every resource client is used in practice.
func newTestGateway(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.Open(t.TempDir())
	require.NoError(t, err)
	store.Login(models.Identity{ID: 1, Email: "a@x.com", Role: models.RoleJobSeeker}, "test-token")

	return gateway.New(srv.URL, 5*time.Second, store, nav.NewMemory("/jobseeker/dashboard"))
}
