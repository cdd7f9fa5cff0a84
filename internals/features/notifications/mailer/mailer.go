// Package mailer forwards twitter submissions to the team inbox by email.
package mailer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// TwitterNotice is what gets forwarded for one twitter submission.
type TwitterNotice struct {
	TwitterHandle string
	QuoteContent  string
}

// Forwarder sends a notice or reports why it could not.
type Forwarder interface {
	ForwardTwitterSubmission(ctx context.Context, notice TwitterNotice) error
}

// FailurePolicy decides what a forwarding failure means for the HTTP response.
type FailurePolicy string

const (
	// PolicyLog keeps the 201 and only logs the failure.
	PolicyLog FailurePolicy = "log"
	// PolicyFail turns the failure into a 500 (the row stays persisted).
	PolicyFail FailurePolicy = "fail"
)

func ParsePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case PolicyLog, PolicyFail:
		return FailurePolicy(s), nil
	case "":
		return PolicyLog, nil
	}
	return "", fmt.Errorf("unknown notification failure policy %q", s)
}

// SendError is a failed delivery attempt.
type SendError struct {
	To  string
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send notification to %s: %v", e.To, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

type Options struct {
	APIKey string
	From   string
	To     string
}

// New returns a Resend-backed forwarder, or a NoopForwarder when no API key is configured.
func New(opts Options, log logrus.FieldLogger) Forwarder {
	if opts.APIKey == "" {
		log.Warn("⚠️ RESEND_API_KEY not set, twitter submission emails are disabled")
		return NewNoopForwarder(log)
	}
	return NewResendForwarder(opts, log)
}
