package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SendGridKey string   `envconfig:"SENDGRID_API_KEY" required:"true"`
	EmailFrom   string   `envconfig:"EMAIL_FROM" required:"true"`
	EmailTo     []string `envconfig:"EMAIL_TO" required:"true"`

	Latitude  float64 `envconfig:"LATITUDE" default:"39.36"`
	Longitude float64 `envconfig:"LONGITUDE" default:"-78.05"`
	Timezone  string  `envconfig:"TIMEZONE" default:"America/New_York"`
	SiteName  string  `envconfig:"SITE_NAME" default:"Inwood"`

	WeatherAPI  string `envconfig:"WEATHER_API" default:"https://api.open-meteo.com"`
	SendGridAPI string `envconfig:"SENDGRID_API" default:"https://api.sendgrid.com"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	DryRun         bool          `envconfig:"DRY_RUN" default:"false"`
}

func loadConfig() (*Config, error) {
	var config Config

	err := envconfig.Process("weathermail", &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
