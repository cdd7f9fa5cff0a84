package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/metrics"
)

// emailSender is the slice of the Resend emails service we use.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type ResendForwarder struct {
	emails emailSender
	from   string
	to     string
	log    logrus.FieldLogger
}

func NewResendForwarder(opts Options, log logrus.FieldLogger) *ResendForwarder {
	client := resend.NewClient(opts.APIKey)
	return newResendForwarder(client.Emails, opts, log)
}

func newResendForwarder(emails emailSender, opts Options, log logrus.FieldLogger) *ResendForwarder {
	return &ResendForwarder{
		emails: emails,
		from:   opts.From,
		to:     opts.To,
		log:    log,
	}
}

func (f *ResendForwarder) ForwardTwitterSubmission(ctx context.Context, notice TwitterNotice) error {
	body, err := RenderTwitterNotice(notice)
	if err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		return &SendError{To: f.to, Err: fmt.Errorf("render: %w", err)}
	}

	sent, err := f.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    f.from,
		To:      []string{f.to},
		Subject: twitterNoticeSubject,
		Html:    body,
	})
	if err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		return &SendError{To: f.to, Err: err}
	}

	metrics.Notifications.WithLabelValues("sent").Inc()
	emailID := ""
	if sent != nil {
		emailID = sent.Id
	}
	f.log.WithFields(logrus.Fields{
		"email_id":       emailID,
		"twitter_handle": notice.TwitterHandle,
	}).Info("📧 twitter submission forwarded")
	return nil
}
