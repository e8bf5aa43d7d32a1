package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-talentiq-client/internal/models"
)

func TestUpdateStatusSendsQueryParamsWithEmptyBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/7/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "SHORTLISTED", r.URL.Query().Get("status"))
		assert.Equal(t, "strong portfolio", r.URL.Query().Get("notes"))

		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body, "status transitions carry no request body")

		json.NewEncoder(w).Encode(models.Application{ID: 7, JobID: 3, Status: models.StatusShortlisted})
	})

	apps := NewApplications(newTestGateway(t, mux))
	updated, err := apps.UpdateStatus(context.Background(), 7, models.StatusShortlisted, "strong portfolio")
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, updated.Status)
}

func TestUpdateStatusOmitsEmptyNotes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/7/status", func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("notes"), "notes param must be absent when empty")
		json.NewEncoder(w).Encode(models.Application{ID: 7, Status: models.StatusReviewing})
	})

	apps := NewApplications(newTestGateway(t, mux))
	_, err := apps.UpdateStatus(context.Background(), 7, models.StatusReviewing, "")
	require.NoError(t, err)
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	apps := NewApplications(newTestGateway(t, http.NewServeMux()))
	_, err := apps.UpdateStatus(context.Background(), 7, "", "notes")
	require.Error(t, err)
}

func TestApplyRequiresJobID(t *testing.T) {
	apps := NewApplications(newTestGateway(t, http.NewServeMux()))
	_, err := apps.Apply(context.Background(), models.ApplicationRequest{})
	require.Error(t, err)
}

func TestWithdrawHitsWithdrawEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/9/withdraw", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		json.NewEncoder(w).Encode(models.Application{ID: 9, Status: models.StatusWithdrawn})
	})

	apps := NewApplications(newTestGateway(t, mux))
	withdrawn, err := apps.Withdraw(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWithdrawn, withdrawn.Status)
}

func TestStatsDecodesBreakdown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/job/3/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"jobId": 3,
			"totalApplications": 6,
			"pendingApplications": 2,
			"shortlistedApplications": 1,
			"applicationsByStatus": {"PENDING": 2, "SHORTLISTED": 1, "REJECTED": 3},
			"totalViews": 40
		}`))
	})

	apps := NewApplications(newTestGateway(t, mux))
	stats, err := apps.Stats(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalApplications)
	assert.Equal(t, 2, stats.PendingApplications)
	assert.Equal(t, 3, stats.ApplicationsByStatus["REJECTED"])
	assert.Equal(t, 40, stats.TotalViews)
}
