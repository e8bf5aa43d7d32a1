package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-talentiq-client/internal/models"
)

func mixedApplications() []models.Application {
	return []models.Application{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusShortlisted},
		{ID: 3, Status: models.StatusPending},
		{ID: 4, Status: models.StatusRejected},
		{ID: 5, Status: models.StatusShortlisted},
	}
}

func TestFilterByStatusAll(t *testing.T) {
	apps := mixedApplications()
	filtered := FilterByStatus(apps, models.StatusFilterAll)

	assert.Equal(t, apps, filtered, "ALL must return the full list unchanged in order")
}

func TestFilterByStatusSubsetPreservesOrder(t *testing.T) {
	filtered := FilterByStatus(mixedApplications(), string(models.StatusPending))

	assert.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)

	shortlisted := FilterByStatus(mixedApplications(), string(models.StatusShortlisted))
	assert.Len(t, shortlisted, 2)
	assert.Equal(t, int64(2), shortlisted[0].ID)
	assert.Equal(t, int64(5), shortlisted[1].ID)
}

func TestFilterByStatusNoMatches(t *testing.T) {
	filtered := FilterByStatus(mixedApplications(), string(models.StatusWithdrawn))
	assert.Empty(t, filtered)
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(mixedApplications())
	assert.Equal(t, 2, counts[models.StatusPending])
	assert.Equal(t, 2, counts[models.StatusShortlisted])
	assert.Equal(t, 1, counts[models.StatusRejected])
	assert.Equal(t, 0, counts[models.StatusAccepted])
}
