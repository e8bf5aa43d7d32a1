package views

import "go-talentiq-client/internal/models"

// FilterByStatus narrows an application list to one status. The
// "ALL" sentinel (or an empty filter) returns the input unchanged;
// any other filter returns the matching subset in its original
// relative order.
func FilterByStatus(apps []models.Application, status string) []models.Application {
	if status == "" || status == models.StatusFilterAll {
		return apps
	}
	filtered := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if string(app.Status) == status {
			filtered = append(filtered, app)
		}
	}
	return filtered
}

// CountByStatus tallies applications per status for dashboard cards.
func CountByStatus(apps []models.Application) map[models.ApplicationStatus]int {
	counts := make(map[models.ApplicationStatus]int)
	for _, app := range apps {
		counts[app.Status]++
	}
	return counts
}
