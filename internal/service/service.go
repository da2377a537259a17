package service

import (
	"context"
	"time"

	"weathermail/internal/logger"

	"github.com/pkg/errors"
)

type ForecastAPI interface {
	Forecast(ctx context.Context, loc Location) (*Forecast, error)
}

// EmailRenderer turns a forecast into a ready-to-send message. Must be
// deterministic for a given forecast and date.
type EmailRenderer interface {
	Render(forecast *Forecast, today time.Time) Email
}

type Service struct {
	ForecastAPI  ForecastAPI
	Renderer     EmailRenderer
	EmailService EmailSender

	Location Location
	From     EmailAddress
	To       []EmailAddress

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Run executes one fetch-render-send pass. The sender is never invoked when
// the fetch fails, and a rejected send is not retried.
func (s *Service) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	log.Info("fetching forecast")

	forecast, err := s.ForecastAPI.Forecast(ctx, s.Location)
	if err != nil {
		return FetchFailed(errors.Wrap(err, "failed to fetch forecast"))
	}

	email := s.Renderer.Render(forecast, s.today())

	log.WithField("days", len(forecast.Days)).Info("forecast rendered")

	err = s.EmailService.SendEmail(ctx, s.From, s.To, email)
	if err != nil {
		return SendFailed(errors.Wrap(err, "failed to send email"))
	}

	log.WithField("recipients", len(s.To)).Info("email submitted for delivery")

	return nil
}

// today is the current date in the forecast's timezone, so the subject line
// agrees with the first forecast row.
func (s *Service) today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	t := now()
	if tz, err := time.LoadLocation(s.Location.Timezone); err == nil {
		t = t.In(tz)
	}

	return t
}
