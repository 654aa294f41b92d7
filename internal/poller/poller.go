// Package poller periodically refreshes notifications for watch mode.
package poller

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// Gateway is the slice of the API client the poller needs.
type Gateway interface {
	ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)
	NotificationStats(ctx context.Context) (*domain.NotificationStats, error)
}

// Update is one refresh result delivered to the handler.
type Update struct {
	Unread []domain.Notification
	Stats  *domain.NotificationStats
}

// Poller drives scheduled notification refreshes.
type Poller struct {
	gw      Gateway
	cron    *cron.Cron
	handler func(Update)
}

// New creates a poller delivering refreshes to handler.
func New(gw Gateway, handler func(Update)) *Poller {
	return &Poller{
		gw:      gw,
		cron:    cron.New(),
		handler: handler,
	}
}

// Start schedules refreshes with a cron spec such as "@every 30s" and runs
// one refresh immediately.
func (p *Poller) Start(ctx context.Context, spec string) error {
	_, err := p.cron.AddFunc(spec, func() {
		p.refresh(ctx)
	})
	if err != nil {
		return err
	}
	p.refresh(ctx)
	p.cron.Start()
	return nil
}

// Stop halts the schedule. In-flight refreshes finish on their own.
func (p *Poller) Stop() {
	p.cron.Stop()
}

func (p *Poller) refresh(ctx context.Context) {
	// A failed auxiliary fetch falls back to an empty view rather than
	// tearing down watch mode.
	unread, err := p.gw.ListNotifications(ctx, domain.NotificationFilter{UnreadOnly: true})
	if err != nil {
		log.Printf("[warn] component=poller operation=list_notifications error=%v", err)
		unread = nil
	}
	stats, err := p.gw.NotificationStats(ctx)
	if err != nil {
		log.Printf("[warn] component=poller operation=notification_stats error=%v", err)
		stats = nil
	}
	p.handler(Update{Unread: unread, Stats: stats})
}
