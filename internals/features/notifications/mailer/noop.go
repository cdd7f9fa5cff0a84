package mailer

import (
	"context"

	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/metrics"
)

// NoopForwarder drops every notice. Used when email delivery is not configured.
type NoopForwarder struct {
	log logrus.FieldLogger
}

func NewNoopForwarder(log logrus.FieldLogger) *NoopForwarder {
	return &NoopForwarder{log: log}
}

func (f *NoopForwarder) ForwardTwitterSubmission(_ context.Context, notice TwitterNotice) error {
	metrics.Notifications.WithLabelValues("skipped").Inc()
	f.log.WithField("twitter_handle", notice.TwitterHandle).Debug("notification skipped: email disabled")
	return nil
}
