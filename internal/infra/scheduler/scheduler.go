package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DigestSender is the slice of the application the scheduler drives.
type DigestSender interface {
	SendDailyDigest(ctx context.Context) error
}

// DigestScheduler runs the morning digest job on a cron spec.
type DigestScheduler struct {
	cronEngine *cron.Cron
	sender     DigestSender
	logger     *logrus.Entry
	cronSpec   string
}

func NewDigestScheduler(sender DigestSender, logger *logrus.Entry, cronSpec string) *DigestScheduler {
	return &DigestScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		sender:     sender,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *DigestScheduler) Start() {
	s.logger.Info("Starting digest scheduler")

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for morning digest")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.sender.SendDailyDigest(ctx); err != nil {
			s.logger.WithError(err).Error("Morning digest failed")
		}
	})
	if err != nil {
		s.logger.WithError(err).Fatal("Could not add morning digest cron job")
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Digest scheduler started")
}

func (s *DigestScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Digest scheduler stopped")
}
