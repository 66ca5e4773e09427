package sending

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/metrics"
	"github.com/ignite/bulkmail/internal/pkg/logger"
	"github.com/ignite/bulkmail/internal/service/group"
	"github.com/ignite/bulkmail/internal/service/template"
)

// NoTemplate is the template id clients send to mean "custom message".
const NoTemplate = "none"

// blank stands in for an absent message body or template content.
const blank = " "

// SendRequest is a client's request to mail a group.
type SendRequest struct {
	GroupID    string `json:"group"`
	TemplateID string `json:"template"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
}

// Option configures a Service.
type Option func(*Service)

// WithOwnershipEnforcement makes ExecuteSend treat another owner's group as
// not found and another owner's template as absent.
func WithOwnershipEnforcement(on bool) Option {
	return func(s *Service) { s.enforceOwnership = on }
}

// Service orchestrates the send-and-record workflow.
// All public methods are safe for concurrent use if its collaborators are.
type Service struct {
	groups     GroupFinder
	templates  TemplateFinder
	repo       Repository
	dispatcher Dispatcher

	enforceOwnership bool
	now              func() time.Time
}

// NewService creates a send orchestrator.
func NewService(groups GroupFinder, templates TemplateFinder, repo Repository, d Dispatcher, opts ...Option) *Service {
	s := &Service{
		groups:     groups,
		templates:  templates,
		repo:       repo,
		dispatcher: d,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExecuteSend mails every address in the group and records the send.
//
// The group is resolved first; ErrGroupNotFound means nothing happened. A
// template id of "" or NoTemplate, or one that does not resolve, sends the
// message as plain text labelled domain.CustomMessageLabel. Once the
// dispatch has been issued a record write failure still returns an
// *InternalError even though mail may go out.
func (s *Service) ExecuteSend(ctx context.Context, ownerID string, req SendRequest) (*domain.SentRecord, error) {
	g, err := s.groups.Get(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, group.ErrNotFound) {
			metrics.IncSend(metrics.SendGroupNotFound)
			return nil, ErrGroupNotFound
		}
		metrics.IncSend(metrics.SendInternalFailed)
		logger.Error("send: group lookup failed", "group_id", req.GroupID, "error", err)
		return nil, &InternalError{Message: MsgInternal, Err: err}
	}
	if s.enforceOwnership && g.OwnerID != ownerID {
		metrics.IncSend(metrics.SendGroupNotFound)
		return nil, ErrGroupNotFound
	}

	tpl, ok, err := s.resolveTemplate(ctx, ownerID, req.TemplateID)
	if err != nil {
		metrics.IncSend(metrics.SendInternalFailed)
		logger.Error("send: template lookup failed", "template_id", req.TemplateID, "error", err)
		return nil, &InternalError{Message: MsgInternal, Err: err}
	}

	text := req.Message
	if text == "" {
		text = blank
	}
	html, label := blank, domain.CustomMessageLabel
	if ok {
		html, label = tpl.Content, tpl.Name
		if html == "" {
			html = blank
		}
	}

	s.dispatcher.Dispatch(ctx, domain.OutboundMessage{
		Recipients: g.Emails,
		Subject:    req.Subject,
		Text:       text,
		HTML:       html,
	})

	rec := &domain.SentRecord{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Subject:      req.Subject,
		GroupID:      g.ID,
		MessageLabel: label,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		metrics.IncSend(metrics.SendRecordFailed)
		logger.Error("send: record write failed after dispatch",
			"group_id", g.ID,
			"owner_id", ownerID,
			"error", err,
		)
		return nil, &InternalError{Message: MsgRecordFailed, Err: err}
	}

	metrics.IncSend(metrics.SendSuccess)
	logger.Info("send recorded",
		"sent_id", rec.ID,
		"group_id", g.ID,
		"recipient_count", len(g.Emails),
		"message", label,
	)
	return rec, nil
}

// resolveTemplate returns the template to use, if any. A missing template is
// not an error; only lookup failures are.
func (s *Service) resolveTemplate(ctx context.Context, ownerID, id string) (*domain.Template, bool, error) {
	if id == "" || id == NoTemplate {
		return nil, false, nil
	}
	t, err := s.templates.Get(ctx, id)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			logger.Warn("send: template not found, sending custom message", "template_id", id)
			return nil, false, nil
		}
		return nil, false, err
	}
	if s.enforceOwnership && t.OwnerID != ownerID {
		return nil, false, nil
	}
	return t, true, nil
}

// History returns the owner's send history, newest first.
func (s *Service) History(ctx context.Context, ownerID string) ([]domain.SentEntry, error) {
	entries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &InternalError{Message: MsgInternal, Err: err}
	}
	return entries, nil
}
