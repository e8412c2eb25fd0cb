package list_notifications

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request filters the notifications.
type Request struct {
	UnreadOnly bool
}

// Result holds the notifications and the badge count.
type Result struct {
	Notifications []domain.Notification
	UnreadCount   int
}

// Query handles the list notifications query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list notifications query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns notifications newest first with the unread count.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	all, err := q.readModel.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{Notifications: make([]domain.Notification, 0, len(all))}
	for _, n := range all {
		if !n.Read {
			res.UnreadCount++
		} else if req.UnreadOnly {
			continue
		}
		res.Notifications = append(res.Notifications, n)
	}
	return res, nil
}
