package relay

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexvelboy/contact-api/internal/logging"
	"github.com/alexvelboy/contact-api/internal/mail"
)

// ReceiptPolicy controls the best-effort receipt delivery: a fixed delay
// before the first attempt, one retry triggered only by RetryStatus, and
// a fixed delay before that retry.
type ReceiptPolicy struct {
	PreSendDelay time.Duration
	RetryDelay   time.Duration
	RetryStatus  int
}

// DefaultReceiptPolicy returns the production policy
func DefaultReceiptPolicy() ReceiptPolicy {
	return ReceiptPolicy{
		PreSendDelay: 700 * time.Millisecond,
		RetryDelay:   time.Second,
		RetryStatus:  http.StatusTooManyRequests,
	}
}

// Service delivers a validated submission: admin notification first, then
// the receipt. A failed receipt never fails the submission.
type Service struct {
	sender mail.Sender
	from   string
	to     string
	policy ReceiptPolicy
	sleep  func(time.Duration)
	now    func() time.Time
	logger *logging.Logger
}

// NewService creates a new relay service
func NewService(sender mail.Sender, from, to string, policy ReceiptPolicy, logger *logging.Logger) *Service {
	return &Service{
		sender: sender,
		from:   from,
		to:     to,
		policy: policy,
		sleep:  time.Sleep,
		now:    time.Now,
		logger: logger,
	}
}

// WithClock overrides the sleep and now functions (used by tests)
func (s *Service) WithClock(sleep func(time.Duration), now func() time.Time) *Service {
	s.sleep = sleep
	s.now = now
	return s
}

// Deliver sends the admin notification and then attempts the receipt.
// The returned error is the admin-send failure; receipt failures are
// absorbed and reported through receiptOK only.
func (s *Service) Deliver(ctx context.Context, sub Submission, userAgent, tag string) (receiptOK bool, err error) {
	admin := AdminEmail(s.from, s.to, sub, userAgent, s.now())
	if err := s.sender.Send(ctx, admin); err != nil {
		s.logger.Error("[%s] admin notification failed: %v", tag, err)
		return false, err
	}
	s.logger.Info("[%s] admin notification sent to %s", tag, s.to)

	receipt := ReceiptEmail(s.from, sub)

	s.sleep(s.policy.PreSendDelay)
	sendErr := s.sender.Send(ctx, receipt)
	if sendErr != nil && s.retryable(sendErr) {
		s.logger.Warn("[%s] receipt rate limited, retrying once", tag)
		s.sleep(s.policy.RetryDelay)
		sendErr = s.sender.Send(ctx, receipt)
	}

	if sendErr != nil {
		s.logger.Warn("[%s] receipt delivery to %s failed: %v", tag, sub.Email, sendErr)
		return false, nil
	}

	s.logger.Info("[%s] receipt sent to %s", tag, sub.Email)
	return true, nil
}

func (s *Service) retryable(err error) bool {
	var sendErr *mail.SendError
	return errors.As(err, &sendErr) && sendErr.StatusCode == s.policy.RetryStatus
}
