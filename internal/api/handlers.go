package api

import (
	"context"
	"net/http"

	"github.com/ignite/bulkmail/internal/auth"
	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/pkg/httputil"
	"github.com/ignite/bulkmail/internal/service/account"
	"github.com/ignite/bulkmail/internal/service/group"
	"github.com/ignite/bulkmail/internal/service/sending"
	"github.com/ignite/bulkmail/internal/service/template"
)

// AccountService is the account behaviour the handlers need.
type AccountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*account.Session, error)
	Logout(ctx context.Context, id *domain.Identity) error
}

// GroupService is the group behaviour the handlers need.
type GroupService interface {
	Create(ctx context.Context, ownerID string, input group.CreateInput) (*domain.Group, error)
	List(ctx context.Context, ownerID string) ([]domain.Group, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// TemplateService is the template behaviour the handlers need.
type TemplateService interface {
	Create(ctx context.Context, ownerID string, input template.CreateInput) (*domain.Template, error)
	List(ctx context.Context, ownerID string) ([]domain.Template, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// SendService runs the send workflow and reads its history.
type SendService interface {
	ExecuteSend(ctx context.Context, ownerID string, req sending.SendRequest) (*domain.SentRecord, error)
	History(ctx context.Context, ownerID string) ([]domain.SentEntry, error)
}

// DashboardService reports per-owner counts.
type DashboardService interface {
	Summary(ctx context.Context, ownerID string) (*domain.DashboardSummary, error)
}

// Handlers contains the HTTP handlers for the bulk mail API.
type Handlers struct {
	accounts  AccountService
	groups    GroupService
	templates TemplateService
	sends     SendService
	dashboard DashboardService
	auth      *auth.Middleware
}

// NewHandlers creates the handler set.
func NewHandlers(
	accounts AccountService,
	groups GroupService,
	templates TemplateService,
	sends SendService,
	dashboard DashboardService,
	authMW *auth.Middleware,
) *Handlers {
	return &Handlers{
		accounts:  accounts,
		groups:    groups,
		templates: templates,
		sends:     sends,
		dashboard: dashboard,
		auth:      authMW,
	}
}

// ownerID returns the authenticated caller's user id. Routes using it sit
// behind RequireUser, so a missing identity is a wiring bug.
func ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.Unauthorized(w, "User not logged in")
		return "", false
	}
	return id.UserID, true
}
