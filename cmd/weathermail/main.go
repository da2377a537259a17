package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"weathermail/internal/email"
	"weathermail/internal/logger"
	"weathermail/internal/openmeteo"
	"weathermail/internal/render"
	"weathermail/internal/sendgrid"
	"weathermail/internal/service"

	"golang.org/x/sync/errgroup"
)

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(config.LogLevel)
	ctx := logger.WithLogger(context.Background(), logg)

	httpClient := &http.Client{Timeout: config.RequestTimeout}

	weatherAPI, err := openmeteo.NewClient(httpClient, config.WeatherAPI)
	if err != nil {
		logg.Fatal(err)
	}

	var sender service.EmailSender
	if config.DryRun {
		sender = &email.LogSender{}
	} else {
		sender, err = sendgrid.NewClient(httpClient, config.SendGridAPI, config.SendGridKey)
		if err != nil {
			logg.Fatal(err)
		}
	}

	svc := &service.Service{
		ForecastAPI:  weatherAPI,
		Renderer:     render.New(config.SiteName),
		EmailService: sender,
		Location: service.Location{
			Latitude:  config.Latitude,
			Longitude: config.Longitude,
			Timezone:  config.Timezone,
		},
		From: service.EmailAddress{Address: config.EmailFrom},
		To:   recipients(config.EmailTo),
	}

	if len(svc.To) == 0 {
		logg.Fatal("no recipient addresses in EMAIL_TO")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// the trap unblocks through the cancel once the run is done
		defer cancel()
		return svc.Run(ctx)
	})
	eg.Go(sigTrap(ctx))

	err = eg.Wait()
	if err != nil && err != context.Canceled {
		logg.WithError(err).Fatal("run failed")
	}

	logg.Info("weather email run complete")
}

func recipients(addresses []string) []service.EmailAddress {
	to := make([]service.EmailAddress, 0, len(addresses))

	for _, addr := range addresses {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		to = append(to, service.EmailAddress{Address: addr})
	}

	return to
}
