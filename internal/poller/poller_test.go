package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

type fakeGateway struct {
	notifications []domain.Notification
	listErr       error
	stats         *domain.NotificationStats
	statsErr      error
}

func (f *fakeGateway) ListNotifications(_ context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	if !filter.UnreadOnly {
		return nil, errors.New("poller must request unread notifications only")
	}
	return f.notifications, f.listErr
}

func (f *fakeGateway) NotificationStats(context.Context) (*domain.NotificationStats, error) {
	return f.stats, f.statsErr
}

func TestStart_RefreshesImmediately(t *testing.T) {
	gw := &fakeGateway{
		notifications: []domain.Notification{{ID: 1, Title: "Task completed"}},
		stats:         &domain.NotificationStats{TotalNotifications: 3, UnreadNotifications: 1},
	}
	updates := make(chan Update, 1)
	p := New(gw, func(u Update) { updates <- u })

	require.NoError(t, p.Start(context.Background(), "@every 1h"))
	defer p.Stop()

	select {
	case u := <-updates:
		require.Len(t, u.Unread, 1)
		assert.Equal(t, "Task completed", u.Unread[0].Title)
		require.NotNil(t, u.Stats)
		assert.Equal(t, 1, u.Stats.UnreadNotifications)
	case <-time.After(time.Second):
		t.Fatal("no immediate refresh on Start")
	}
}

func TestRefresh_FallsBackToEmptyOnErrors(t *testing.T) {
	gw := &fakeGateway{
		listErr:  errors.New("backend unreachable"),
		statsErr: errors.New("backend unreachable"),
	}
	updates := make(chan Update, 1)
	p := New(gw, func(u Update) { updates <- u })

	require.NoError(t, p.Start(context.Background(), "@every 1h"))
	defer p.Stop()

	select {
	case u := <-updates:
		assert.Empty(t, u.Unread)
		assert.Nil(t, u.Stats)
	case <-time.After(time.Second):
		t.Fatal("failed fetches must still deliver an update")
	}
}

func TestStart_RejectsBadSpec(t *testing.T) {
	p := New(&fakeGateway{}, func(Update) {})
	assert.Error(t, p.Start(context.Background(), "not a cron spec"))
}
