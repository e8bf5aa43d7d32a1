package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
)

// Admin wraps the /admin endpoints.
type Admin struct {
	gw *gateway.Client
}

func NewAdmin(gw *gateway.Client) *Admin {
	return &Admin{gw: gw}
}

// ListOptions are the shared pagination/sorting parameters of the
// admin list endpoints.
type ListOptions struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(o.Page))
	size := o.Size
	if size == 0 {
		size = 10
	}
	q.Set("size", strconv.Itoa(size))
	if o.SortBy != "" {
		q.Set("sortBy", o.SortBy)
	}
	if o.SortDirection != "" {
		q.Set("sortDirection", o.SortDirection)
	}
	return q
}

// AdminUser is a user row in the management table.
type AdminUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"createdAt"`
}

// Stats returns the platform-wide counters.
func (a *Admin) Stats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := a.gw.Get(ctx, "/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users lists accounts, paginated and sorted.
func (a *Admin) Users(ctx context.Context, opts ListOptions) (*models.Page[AdminUser], error) {
	var out models.Page[AdminUser]
	if err := a.gw.Get(ctx, "/admin/users", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserRole changes an account's role.
func (a *Admin) UpdateUserRole(ctx context.Context, userID int64, role models.Role) (*AdminUser, error) {
	var out AdminUser
	body := map[string]string{"role": string(role)}
	if err := a.gw.Put(ctx, fmt.Sprintf("/admin/users/%d/role", userID), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an account.
func (a *Admin) DeleteUser(ctx context.Context, userID int64) error {
	return a.gw.Delete(ctx, fmt.Sprintf("/admin/users/%d", userID), nil)
}

// Jobs lists every posting for moderation.
func (a *Admin) Jobs(ctx context.Context, opts ListOptions) (*models.Page[models.Job], error) {
	var out models.Page[models.Job]
	if err := a.gw.Get(ctx, "/admin/jobs", opts.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteJob removes a posting (admin override).
func (a *Admin) DeleteJob(ctx context.Context, jobID int64) error {
	return a.gw.Delete(ctx, fmt.Sprintf("/admin/jobs/%d", jobID), nil)
}
