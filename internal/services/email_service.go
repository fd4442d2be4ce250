package services

import (
	"context"
	"log"
	"time"

	"kodeks24/pkg/mailer"
	"kodeks24/pkg/rabbitmq"

	"github.com/sethvargo/go-retry"
)

// EmailPublisher enqueues outbound email jobs for async delivery.
type EmailPublisher interface {
	PublishEmailJob(job rabbitmq.EmailJob) error
}

// EmailService queues confirmation emails on the producer side and delivers
// queued jobs on the worker side.
type EmailService struct {
	publisher   EmailPublisher
	mailer      mailer.Mailer
	backoffBase time.Duration
	maxRetries  uint64
}

// NewEmailService creates a new EmailService. Delivery retries use
// exponential backoff from a 10s base, up to 5 retries.
func NewEmailService(publisher EmailPublisher, m mailer.Mailer) *EmailService {
	return &EmailService{
		publisher:   publisher,
		mailer:      m,
		backoffBase: 10 * time.Second,
		maxRetries:  5,
	}
}

// EnqueueConfirmationCode publishes the activation email carrying the code.
// It returns as soon as the job is queued; delivery happens in the worker.
func (s *EmailService) EnqueueConfirmationCode(email, code string, expiry time.Duration) error {
	if s.publisher == nil {
		log.Println("Email publisher is not initialized. Skipping confirmation email.")
		return nil
	}
	return s.publisher.PublishEmailJob(rabbitmq.EmailJob{
		To:      email,
		Subject: "Registration on kodeks24",
		Body:    mailer.BuildConfirmationEmailBody(code, expiry),
	})
}

// HandleJob delivers one queued email, retrying transient transport failures
// with exponential backoff. After the retries are exhausted the job is
// dropped; nothing is surfaced back to the registering user.
func (s *EmailService) HandleJob(ctx context.Context, job rabbitmq.EmailJob) error {
	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.backoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if sendErr := s.mailer.Send(job.To, job.Subject, job.Body); sendErr != nil {
			return retry.RetryableError(sendErr)
		}
		return nil
	})
	if err != nil {
		log.Printf("Dropping email to %s after exhausting retries: %v", job.To, err)
	}
	return nil
}
