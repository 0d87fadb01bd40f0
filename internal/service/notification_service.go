package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/nagarseva/internal/config"
	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/events"
)

// Notification is one entry of the header bell feed.
type Notification struct {
	EventID   string           `json:"event_id"`
	IssueID   string           `json:"issue_id"`
	Type      events.EventType `json:"type"`
	Audience  domain.Role      `json:"audience"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationService turns issue events into log lines and a bounded feed.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig

	mu   sync.RWMutex
	feed []Notification
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if cfg.FeedSize <= 0 {
		cfg.FeedSize = 20
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventIssueReported, n.handleIssueReported)
	n.dispatcher.Subscribe(events.EventIssueStatusChanged, n.handleIssueStatusChanged)
}

func (n *NotificationService) handleIssueReported(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.IssueReportedPayload)
	if !ok {
		return fmt.Errorf("issue_reported: unexpected payload %T", event.Payload)
	}
	n.logger.Info("IssueReported",
		zap.String("issue_id", event.IssueID),
		zap.String("category", string(payload.Category)),
		zap.String("priority", string(payload.Priority)),
		zap.Int("ai_score", payload.AIScore))
	n.push(Notification{
		EventID:   event.ID,
		IssueID:   event.IssueID,
		Type:      event.Type,
		Audience:  domain.RoleAdmin,
		Message:   fmt.Sprintf("New %s report: %s", payload.Category, payload.Title),
		CreatedAt: event.Timestamp,
	})
	return nil
}

func (n *NotificationService) handleIssueStatusChanged(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.IssueStatusChangedPayload)
	if !ok {
		return fmt.Errorf("issue_status_changed: unexpected payload %T", event.Payload)
	}
	n.logger.Info("IssueStatusChanged",
		zap.String("issue_id", event.IssueID),
		zap.String("old_status", string(payload.OldStatus)),
		zap.String("new_status", string(payload.NewStatus)))
	n.push(Notification{
		EventID:   event.ID,
		IssueID:   event.IssueID,
		Type:      event.Type,
		Audience:  domain.RoleCitizen,
		Message:   fmt.Sprintf("%q is now %s", payload.Title, payload.NewStatus.Label()),
		CreatedAt: event.Timestamp,
	})
	return nil
}

func (n *NotificationService) push(item Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.feed = append([]Notification{item}, n.feed...)
	if len(n.feed) > n.cfg.FeedSize {
		n.feed = n.feed[:n.cfg.FeedSize]
	}
}

// Feed returns notifications for role, newest first.
func (n *NotificationService) Feed(role domain.Role) []Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Notification, 0, len(n.feed))
	for _, item := range n.feed {
		if item.Audience == role {
			out = append(out, item)
		}
	}
	return out
}

// UnreadCount returns the bell badge value for role.
func (n *NotificationService) UnreadCount(role domain.Role) int {
	return len(n.Feed(role))
}
