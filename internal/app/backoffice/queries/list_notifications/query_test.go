package list_notifications_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_notifications"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/repo"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func TestListNotifications(t *testing.T) {
	ctx := context.Background()
	store := testutil.OpenStore(t, kv.NewMemoryStore(), testutil.NewMockClock())
	q := list_notifications.NewQuery(repo.NewReadModel(store))

	all, err := q.Execute(ctx, &list_notifications.Request{})
	require.NoError(t, err)
	assert.Len(t, all.Notifications, 3)
	assert.Equal(t, 2, all.UnreadCount)

	unread, err := q.Execute(ctx, &list_notifications.Request{UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, unread.Notifications, 2)
	assert.Equal(t, 2, unread.UnreadCount)
}
