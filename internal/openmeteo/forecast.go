package openmeteo

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"weathermail/internal/service"

	"github.com/pkg/errors"
)

const (
	pathForecast = "/v1/forecast"

	forecastDays = 10

	dailyFields = "apparent_temperature_max,temperature_2m_max,temperature_2m_min," +
		"weathercode,precipitation_probability_max"
)

// daily mirrors Open-Meteo's parallel-array payload: index i across all
// arrays describes the same calendar day.
type daily struct {
	Time                 []string   `json:"time"`
	ApparentMax          []*float64 `json:"apparent_temperature_max"`
	TemperatureMax       []*float64 `json:"temperature_2m_max"`
	TemperatureMin       []*float64 `json:"temperature_2m_min"`
	WeatherCode          []*int     `json:"weathercode"`
	PrecipProbabilityMax []*int     `json:"precipitation_probability_max"`
}

func (d *daily) toDomain() *service.Forecast {
	forecast := &service.Forecast{
		Days: make([]service.Day, 0, len(d.Time)),
	}

	if len(d.ApparentMax) > 0 {
		forecast.ApparentMax = d.ApparentMax[0]
	}

	for i, date := range d.Time {
		day := service.Day{Date: date}

		if i < len(d.TemperatureMax) {
			day.High = d.TemperatureMax[i]
		}
		if i < len(d.TemperatureMin) {
			day.Low = d.TemperatureMin[i]
		}
		if i < len(d.WeatherCode) {
			day.WeatherCode = d.WeatherCode[i]
		}
		if i < len(d.PrecipProbabilityMax) {
			day.PrecipChance = d.PrecipProbabilityMax[i]
		}

		forecast.Days = append(forecast.Days, day)
	}

	return forecast
}

func (c *Client) Forecast(ctx context.Context, loc service.Location) (*service.Forecast, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	query.Set("timezone", loc.Timezone)
	query.Set("daily", dailyFields)
	query.Set("forecast_days", strconv.Itoa(forecastDays))
	query.Set("temperature_unit", "fahrenheit")

	body, err := c.get(ctx, pathForecast, query)
	if err != nil {
		return nil, errors.WithMessage(err, "request failed")
	}
	defer body.Close()

	type response struct {
		Daily daily `json:"daily"`
	}

	var resp response

	err = json.NewDecoder(body).Decode(&resp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal forecast")
	}

	if len(resp.Daily.Time) == 0 {
		return nil, errors.New("forecast payload contains no days")
	}

	return resp.Daily.toDomain(), nil
}
