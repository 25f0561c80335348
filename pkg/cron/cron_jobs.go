package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"tripmate/internal/store"
	"tripmate/pkg/utils"
)

// StartCronJob schedules the invitation expiry sweep. The sweep is hygiene
// only: readers already treat rows past expires_at as expired, this just
// keeps the stored status column honest.
func StartCronJob(s store.Store) *cron.Cron {
	c := cron.New()

	// Runs every 6 hours — flag expired invitations
	_, err := c.AddFunc("0 */6 * * *", func() {
		if err := SweepExpiredInvitations(s); err != nil {
			utils.Logger.Errorf("Cron job failed to update expired invitations: %v", err)
		}
	})
	if err != nil {
		utils.Logger.Errorf("Failed to schedule invitation expiration job: %v", err)
	}

	c.Start()
	utils.Logger.Info("Cron jobs started (invitation expiry every 6h)")
	return c
}

func SweepExpiredInvitations(s store.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated, err := s.Invites().ExpireStale(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if updated > 0 {
		utils.Logger.Infof("Updated %d expired invitations to status 'expired'", updated)
	}
	return nil
}
