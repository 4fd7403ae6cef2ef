package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"hraktech_web/metrics"
	"hraktech_web/ui"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// Submission is an accepted contact request.
type Submission struct {
	ID         string
	Draft      ui.Draft
	ReceivedAt time.Time
}

// ContactService simulates delivery of contact requests. Nothing leaves the
// process: accepted drafts are logged, counted and kept in a short in-memory
// history, the same way email test mode logs instead of sending.
type ContactService struct {
	delay   time.Duration
	log     zerolog.Logger
	policy  *bluemonday.Policy
	now     func() time.Time
	history int

	mu     sync.Mutex
	recent []Submission
}

// NewContactService returns a service that waits delay before accepting.
func NewContactService(delay time.Duration, log zerolog.Logger) *ContactService {
	return &ContactService{
		delay:   delay,
		log:     log,
		policy:  bluemonday.StrictPolicy(),
		now:     time.Now,
		history: 50,
	}
}

// Submit satisfies ui.Submitter.
func (s *ContactService) Submit(ctx context.Context, draft ui.Draft) error {
	_, err := s.Accept(ctx, draft)
	return err
}

// Accept sanitizes draft, waits the simulated network delay and records the
// submission. It fails only when ctx ends first.
func (s *ContactService) Accept(ctx context.Context, draft ui.Draft) (*Submission, error) {
	clean := s.Sanitize(draft)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			metrics.ContactSubmissions.WithLabelValues("cancelled").Inc()
			return nil, ctx.Err()
		}
	}

	sub := Submission{
		ID:         uuid.New().String(),
		Draft:      clean,
		ReceivedAt: s.now(),
	}

	s.mu.Lock()
	s.recent = append(s.recent, sub)
	if len(s.recent) > s.history {
		s.recent = s.recent[len(s.recent)-s.history:]
	}
	s.mu.Unlock()

	metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
	s.log.Info().
		Str("submission_id", sub.ID).
		Str("email", clean.Email).
		Str("project", clean.Project).
		Int("message_length", len(clean.Message)).
		Msg("Contact request received")
	return &sub, nil
}

// Sanitize strips markup from every free-text field.
func (s *ContactService) Sanitize(d ui.Draft) ui.Draft {
	clean := func(v string) string {
		return strings.TrimSpace(s.policy.Sanitize(v))
	}
	return ui.Draft{
		Name:    clean(d.Name),
		Email:   strings.TrimSpace(d.Email),
		Company: clean(d.Company),
		Project: strings.TrimSpace(d.Project),
		Message: clean(d.Message),
	}
}

// Recent returns the latest accepted submissions, oldest first.
func (s *ContactService) Recent() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Submission(nil), s.recent...)
}
