package service

// Location is the fixed spot the forecast is fetched for. Immutable for the
// lifetime of the process.
type Location struct {
	Latitude  float64
	Longitude float64
	Timezone  string
}

// Day is one daily forecast record. Pointer fields stay nil when the provider
// omits or nulls a value, so the renderer can show a placeholder instead of
// failing the run.
type Day struct {
	Date         string // provider-local calendar date, YYYY-MM-DD
	High         *float64
	Low          *float64
	WeatherCode  *int
	PrecipChance *int
}

// Forecast is the multi-day prediction for one location, typically 10 days.
// ApparentMax is today's maximum apparent temperature, used as a heat index
// proxy for the work-practice guidance.
type Forecast struct {
	Days        []Day
	ApparentMax *float64
}
