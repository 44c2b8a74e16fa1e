package mailqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tendant/simple-hrms/pkg/notification"
)

// DrainStats counts one drain pass.
type DrainStats struct {
	Sent    int
	Skipped int
	Failed  int
}

// Drainer delivers queued notifications. A message is marked sent only
// after the mailer accepts it, so a crash between send and mark can
// redeliver. Messages with no usable recipients are marked sent without a
// delivery attempt so they do not clog the queue.
type Drainer struct {
	repo      QueueRepository
	mailer    notification.Mailer
	sender    notification.SenderIdentity
	batchSize int32
}

func NewDrainer(repo QueueRepository, mailer notification.Mailer, sender notification.SenderIdentity) *Drainer {
	return &Drainer{
		repo:      repo,
		mailer:    mailer,
		sender:    sender,
		batchSize: 100,
	}
}

// DrainPending delivers one batch of unsent notifications, oldest first.
// A delivery failure leaves the message queued for the next pass and does
// not stop the batch.
func (d *Drainer) DrainPending(ctx context.Context) (DrainStats, error) {
	pending, err := d.repo.GetPending(ctx, d.batchSize)
	if err != nil {
		return DrainStats{}, fmt.Errorf("failed to load pending notifications: %w", err)
	}

	var stats DrainStats
	for _, n := range pending {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		to := notification.SplitAddressList(n.ToEmails)
		if len(to) == 0 {
			slog.Warn("Queued notification has no recipients, discarding", "id", n.ID)
			if err := d.repo.MarkAsSent(ctx, n.ID); err != nil {
				slog.Error("Failed to discard notification", "id", n.ID, "err", err)
				stats.Failed++
				continue
			}
			stats.Skipped++
			continue
		}

		req := notification.EmailRequest{
			To:        to,
			CC:        notification.SplitAddressList(n.CCEmails),
			BCC:       notification.SplitAddressList(n.BCCEmails),
			FromEmail: d.sender.FromEmail,
			FromName:  d.sender.FromName,
			Subject:   n.Subject,
			Body:      n.Body,
		}
		if err := d.mailer.SendEmail(ctx, req); err != nil {
			slog.Error("Failed to deliver queued notification", "id", n.ID, "to", to, "err", err)
			stats.Failed++
			continue
		}
		if err := d.repo.MarkAsSent(ctx, n.ID); err != nil {
			slog.Error("Delivered notification but failed to mark it sent", "id", n.ID, "err", err)
			stats.Failed++
			continue
		}
		slog.Info("Queued notification delivered", "id", n.ID, "to", to)
		stats.Sent++
	}
	return stats, nil
}

// Run drains the queue on a fixed interval until the context is canceled.
func (d *Drainer) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	slog.Info("Mail queue drainer started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Mail queue drainer stopped")
			return
		case <-ticker.C:
			stats, err := d.DrainPending(ctx)
			if err != nil {
				slog.Error("Drain pass failed", "err", err)
				continue
			}
			if stats.Sent > 0 || stats.Failed > 0 || stats.Skipped > 0 {
				slog.Info("Drain pass complete",
					"sent", stats.Sent, "failed", stats.Failed, "skipped", stats.Skipped)
			}
		}
	}
}
