// Package render turns a forecast into the subject and HTML body of the
// daily brief. Rendering is deterministic: the same forecast and date always
// produce byte-identical output.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"time"

	"weathermail/internal/service"
)

// placeholder is shown for any field the provider did not supply.
const placeholder = "N/A"

// emoji maps WMO weather codes to a condition glyph. Unknown codes render
// as an empty cell.
var emoji = map[int]string{
	0: "☀️", 1: "🌤️", 2: "⛅", 3: "☁️", 45: "🌫️", 48: "🌫️",
	51: "🌦️", 53: "🌧️", 55: "🌧️", 61: "🌦️", 63: "🌧️", 65: "🌧️",
	71: "🌨️", 73: "🌨️", 75: "❄️", 80: "🌦️", 81: "🌧️",
	95: "⛈️", 96: "⛈️", 99: "⛈️",
}

// policyBand is one row of the heat-stress work-practice guidance, keyed by
// the heat index range it applies to.
type policyBand struct {
	Lo, Hi    int
	Warning   string
	WorkMax   string
	Hydration string
	WorkRest  string
	Checks    string
}

var policy = []policyBand{
	{80, 90, "Caution", "30", "1/20", "Normal", "Periodic"},
	{91, 103, "Extreme Caution", "15", "1/15", "30-40/10", "1"},
	{104, 124, "Danger", "10", "1/10", "20-30/10", "2"},
	{125, 999, "Extreme Danger", "0", "1/10", "10-20/10", "4"},
}

const warningNone = "None"

const bodyTemplate = `<h2 style='margin-bottom:4px'>{{.Title}} — {{.Today}}</h2>
<p style='margin:0;font-size:16px'><b>Peak Heat Index Today:</b> {{.PeakHeat}} °F ({{.Warning}})</p>
<p style='margin:0 0 8px;font-size:14px;color:#555'>Guidance below ⬇︎</p>
<table border='1' cellpadding='4' cellspacing='0' style='border-collapse:collapse'>
  <thead style='background:#4f81bd;color:#fff'>
    <tr><th>Date</th><th>High °F</th><th>Low °F</th><th>Cond</th><th>Precip %</th></tr>
  </thead>
  <tbody>
{{- range .Days}}
    <tr><td>{{.Date}}</td><td>{{.High}}</td><td>{{.Low}}</td><td style='text-align:center;font-size:1.2em'>{{.Cond}}</td><td>{{.Precip}}</td></tr>
{{- end}}
  </tbody>
</table>
<h3 style='margin:14px 0 4px'>Heat-Stress Work Practices</h3>
<table border='1' cellpadding='4' cellspacing='0' style='border-collapse:collapse'>
  <thead style='background:#4f81bd;color:#fff'>
    <tr><th>Warning</th><th>HI °F</th><th>Work max</th><th>Hydration</th><th>Work/Rest</th><th>Checks/hr</th></tr>
  </thead>
  <tbody>
{{- range .Policy}}
    <tr style='{{.Style}}'><td>{{.Warning}}</td><td>{{.Range}}</td><td>{{.WorkMax}}</td><td>{{.Hydration}}</td><td>{{.WorkRest}}</td><td>{{.Checks}}</td></tr>
{{- end}}
  </tbody>
</table>
`

type dayView struct {
	Date   string
	High   string
	Low    string
	Cond   string
	Precip string
}

type policyView struct {
	Warning   string
	Range     string
	WorkMax   string
	Hydration string
	WorkRest  string
	Checks    string
	Style     template.CSS
}

type bodyData struct {
	Title    string
	Today    string
	PeakHeat string
	Warning  string
	Days     []dayView
	Policy   []policyView
}

type Renderer struct {
	siteName string
	tpl      *template.Template
}

func New(siteName string) *Renderer {
	return &Renderer{
		siteName: siteName,
		tpl:      template.Must(template.New("brief").Parse(bodyTemplate)),
	}
}

// Render builds the daily brief for the given forecast and date.
func (r *Renderer) Render(forecast *service.Forecast, today time.Time) service.Email {
	date := today.Format("2006-01-02")

	peakHeat := placeholder
	warning := warningNone
	active := -1

	if forecast.ApparentMax != nil {
		peak := int(math.Round(*forecast.ApparentMax))
		peakHeat = strconv.Itoa(peak)

		for i, band := range policy {
			if band.Lo <= peak && peak <= band.Hi {
				warning = band.Warning
				active = i
				break
			}
		}
	}

	data := bodyData{
		Title:    r.siteName + " Weather",
		Today:    date,
		PeakHeat: peakHeat,
		Warning:  warning,
		Days:     make([]dayView, 0, len(forecast.Days)),
		Policy:   make([]policyView, 0, len(policy)),
	}

	for _, day := range forecast.Days {
		data.Days = append(data.Days, dayView{
			Date:   day.Date,
			High:   tempCell(day.High),
			Low:    tempCell(day.Low),
			Cond:   condCell(day.WeatherCode),
			Precip: precipCell(day.PrecipChance),
		})
	}

	for i, band := range policy {
		view := policyView{
			Warning:   band.Warning,
			Range:     bandRange(band),
			WorkMax:   band.WorkMax,
			Hydration: band.Hydration,
			WorkRest:  band.WorkRest,
			Checks:    band.Checks,
		}
		if i == active {
			view.Style = "background:#ffcc66"
		}
		data.Policy = append(data.Policy, view)
	}

	var buf bytes.Buffer
	// data is plain strings, execution cannot fail
	_ = r.tpl.Execute(&buf, data)

	return service.Email{
		Subject: fmt.Sprintf("%s Weather Brief — %s", r.siteName, date),
		HTML:    buf.String(),
	}
}

func bandRange(band policyBand) string {
	if band.Hi >= 999 {
		return fmt.Sprintf("%d-＋°", band.Lo)
	}

	return fmt.Sprintf("%d-%d°", band.Lo, band.Hi)
}

func tempCell(v *float64) string {
	if v == nil {
		return placeholder
	}

	return strconv.Itoa(int(*v)) + "°"
}

func precipCell(v *int) string {
	if v == nil {
		return placeholder
	}

	return strconv.Itoa(*v) + "%"
}

func condCell(code *int) string {
	if code == nil {
		return placeholder
	}

	return emoji[*code]
}
