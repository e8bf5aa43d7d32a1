package api

import (
	"context"
	"fmt"

	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
)

// Matches wraps the /match endpoints (saved jobs).
type Matches struct {
	gw *gateway.Client
}

func NewMatches(gw *gateway.Client) *Matches {
	return &Matches{gw: gw}
}

// Mine lists the signed-in user's saved jobs.
func (m *Matches) Mine(ctx context.Context) ([]models.Match, error) {
	var out []models.Match
	if err := m.gw.Get(ctx, "/match/user", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Save bookmarks a job.
func (m *Matches) Save(ctx context.Context, jobID int64) (*models.Match, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job id is required")
	}
	var out models.Match
	if err := m.gw.Post(ctx, "/match", map[string]int64{"jobId": jobID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a bookmark.
func (m *Matches) Delete(ctx context.Context, matchID int64) error {
	return m.gw.Delete(ctx, fmt.Sprintf("/match/%d", matchID), nil)
}
