// file: service/notifier_service.go

package service

import (
	"context"
	"time"
	"tokenwatch/logger"
	"tokenwatch/model"
	"tokenwatch/repository"

	"github.com/sirupsen/logrus"
)

// INotificationSender defines the contract for the outbound notification
// channel.
type INotificationSender interface {
	SendMessage(ctx context.Context, text string) error
}

// NotifierService periodically sweeps the token store and notifies on
// tokens that are expired or about to expire.
type NotifierService struct {
	tokenRepo     repository.ITokenRepository
	sender        INotificationSender
	thresholdDays int
	interval      time.Duration
	now           func() time.Time
}

// NewNotifierService creates a new NotifierService.
func NewNotifierService(tokenRepo repository.ITokenRepository, sender INotificationSender, thresholdDays int, interval time.Duration) *NotifierService {
	return &NotifierService{
		tokenRepo:     tokenRepo,
		sender:        sender,
		thresholdDays: thresholdDays,
		interval:      interval,
		now:           time.Now,
	}
}

// Run sweeps once immediately, then once per interval until ctx is
// cancelled. A failed sweep is logged and the loop keeps going.
func (s *NotifierService) Run(ctx context.Context) {
	logger.Log.WithFields(logrus.Fields{
		"threshold_days":         s.thresholdDays,
		"check_interval_seconds": int(s.interval.Seconds()),
	}).Info("Starting token expiration notifier")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.CheckAndNotify(ctx, s.now()); err != nil {
			logger.Log.WithError(err).Error("Token expiry sweep failed")
		}

		select {
		case <-ctx.Done():
			logger.Log.Info("Notifier stopping")
			return
		case <-ticker.C:
		}
	}
}

// CheckAndNotify performs a single sweep: query the tokens due at now, send
// one message per token and stamp last_notified after each delivery. A
// failed delivery leaves its token unstamped so the next sweep retries it.
// A storage error aborts the sweep.
func (s *NotifierService) CheckAndNotify(ctx context.Context, now time.Time) error {
	due, err := s.tokenRepo.FindExpiring(s.thresholdDays, now)
	if err != nil {
		return err
	}

	for _, token := range due {
		log := logger.Log.WithFields(logrus.Fields{
			"name":       token.Name,
			"expires_at": token.ExpiresAt.Format(model.DateLayout),
		})

		if err := s.sender.SendMessage(ctx, ExpiryMessage(token, now)); err != nil {
			log.WithError(err).Error("Failed to send expiry notification")
			continue
		}

		if err := s.tokenRepo.MarkNotified(token.Name, s.now()); err != nil {
			return err
		}
		log.Info("Expiry notification sent")
	}
	return nil
}
