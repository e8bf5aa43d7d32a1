package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-talentiq-client/internal/models"
	"go-talentiq-client/internal/nav"
	"go-talentiq-client/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler, startView string) (*Client, *session.Store, *nav.Memory) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.Open(t.TempDir())
	require.NoError(t, err)
	navigator := nav.NewMemory(startView)
	return New(srv.URL, 5*time.Second, store, navigator), store, navigator
}

func TestBearerHeaderAttachedIffTokenPresent(t *testing.T) {
	var gotAuth []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})
	client, store, _ := newTestClient(t, handler, "/jobseeker/dashboard")

	//no token yet
	require.NoError(t, client.Get(context.Background(), "/jobs", nil, nil))
	//token present
	store.Login(models.Identity{ID: 1, Email: "a@x.com", Role: models.RoleJobSeeker}, "tok-abc")
	require.NoError(t, client.Get(context.Background(), "/jobs", nil, nil))

	require.Len(t, gotAuth, 2)
	assert.Empty(t, gotAuth[0])
	assert.Equal(t, "Bearer tok-abc", gotAuth[1])
}

func TestRequestIDAlwaysAttached(t *testing.T) {
	var gotID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	})
	client, _, _ := newTestClient(t, handler, "/")

	require.NoError(t, client.Get(context.Background(), "/jobs", nil, nil))
	assert.NotEmpty(t, gotID)
}

func TestUnauthorizedClearsSessionAndRedirects(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	})
	client, store, navigator := newTestClient(t, handler, "/jobseeker/dashboard")
	store.Login(models.Identity{ID: 1, Email: "a@x.com", Role: models.RoleJobSeeker}, "stale")

	err := client.Get(context.Background(), "/jobs", nil, nil)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	assert.False(t, store.Authenticated(), "session must be cleared")
	assert.Equal(t, nav.RouteLogin, navigator.Current(), "must land on login")
}

func TestUnauthorizedOnAuthViewLeavesSessionAlone(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad credentials"}`))
	})
	client, store, navigator := newTestClient(t, handler, nav.RouteLogin)
	store.Login(models.Identity{ID: 1, Email: "a@x.com", Role: models.RoleJobSeeker}, "tok")

	err := client.Post(context.Background(), "/auth/login", map[string]string{"email": "a@x.com", "password": "nope"}, nil)
	require.Error(t, err)

	assert.True(t, store.Authenticated(), "session untouched on auth views")
	assert.Equal(t, nav.RouteLogin, navigator.Current(), "no forced redirect")
}

func TestUnauthorizedWithoutTokenPropagatesUntouched(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"nope"}`))
	})
	client, store, navigator := newTestClient(t, handler, "/jobseeker/dashboard")

	err := client.Get(context.Background(), "/jobs", nil, nil)
	require.Error(t, err)
	assert.False(t, store.Authenticated())
	assert.Equal(t, "/jobseeker/dashboard", navigator.Current(), "no redirect when no token existed")
}

func TestAPIErrorCarriesPayloadAndFlags(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Please verify your email","requiresVerification":true,"email":"a@x.com"}`))
	})
	client, _, _ := newTestClient(t, handler, nav.RouteLogin)

	err := client.Post(context.Background(), "/auth/login", map[string]string{"email": "a@x.com", "password": "pw"}, nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Please verify your email", apiErr.Message)
	assert.True(t, apiErr.RequiresVerification)
	assert.Equal(t, "a@x.com", apiErr.Email)
	assert.JSONEq(t, `{"error":"Please verify your email","requiresVerification":true,"email":"a@x.com"}`, string(apiErr.Payload))
}

func TestNetworkFailureWrapsTransportError(t *testing.T) {
	store, err := session.Open(t.TempDir())
	require.NoError(t, err)
	client := New("http://127.0.0.1:1", time.Second, store, nav.NewMemory("/"))

	err = client.Get(context.Background(), "/jobs", nil, nil)
	require.Error(t, err)
	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI, "transport failures are not API errors")
}

func TestSuccessDecodesPayloadUnchanged(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":9,"title":"Go Developer","company":"Acme"}]`))
	})
	client, _, _ := newTestClient(t, handler, "/")

	var jobs []models.Job
	require.NoError(t, client.Get(context.Background(), "/jobs", nil, &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, int64(9), jobs[0].ID)
	assert.Equal(t, "Go Developer", jobs[0].Title)
}
