package openweather

import (
	"sort"
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Forecast is the wire response from the 5-day forecast endpoint,
// delivered as 3-hourly samples
type Forecast struct {
	Samples []Sample `json:"list"`
	City    struct {
		Name     string `json:"name"`
		Country  string `json:"country,omitempty"`
		Timezone int    `json:"timezone"` // Offset from UTC, in seconds
	} `json:"city"`
}

// Sample is one 3-hourly forecast observation
type Sample struct {
	Timestamp  int64       `json:"dt"`
	Metrics    Metrics     `json:"main"`
	Conditions []Condition `json:"weather"`
}

// ForecastDay is an aggregated daily summary
type ForecastDay struct {
	Date          string  `json:"date"` // YYYY-MM-DD in the city's local time
	Description   string  `json:"description"`
	MinCelsius    float64 `json:"min_celsius"`
	MaxCelsius    float64 `json:"max_celsius"`
	MinFahrenheit float64 `json:"min_fahrenheit"`
	MaxFahrenheit float64 `json:"max_fahrenheit"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Forecast) String() string {
	return types.Stringify(f)
}

func (d ForecastDay) String() string {
	return types.Stringify(d)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Days aggregates the 3-hourly samples into at most max daily summaries,
// in chronological order. Samples are grouped by calendar date in the
// city's local timezone. The description for a day is taken from the
// sample nearest local noon; when two samples are equally near, the
// earlier one wins.
func (f *Forecast) Days(max int) ([]ForecastDay, error) {
	if len(f.Samples) == 0 {
		return nil, weather.ErrInvalidResponse.With("missing forecast samples")
	}

	// The provider reports the city's offset from UTC in seconds
	location := time.FixedZone("local", f.City.Timezone)

	// Group samples by local calendar date
	days := map[string]*dayAccumulator{}
	for _, sample := range f.Samples {
		local := time.Unix(sample.Timestamp, 0).In(location)
		date := local.Format(time.DateOnly)
		acc, exists := days[date]
		if !exists {
			acc = newDayAccumulator(date)
			days[date] = acc
		}
		acc.add(local, sample)
	}

	// Order dates ascending and truncate
	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if max > 0 && len(dates) > max {
		dates = dates[:max]
	}

	// Collapse each day into a summary
	result := make([]ForecastDay, 0, len(dates))
	for _, date := range dates {
		result = append(result, days[date].summary())
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

type dayAccumulator struct {
	date        string
	min, max    float64
	description string
	noonOffset  time.Duration
	described   bool
	empty       bool
}

func newDayAccumulator(date string) *dayAccumulator {
	return &dayAccumulator{date: date, empty: true}
}

func (acc *dayAccumulator) add(local time.Time, sample Sample) {
	// Track the temperature envelope across running samples
	if acc.empty || sample.Metrics.TempMin < acc.min {
		acc.min = sample.Metrics.TempMin
	}
	if acc.empty || sample.Metrics.TempMax > acc.max {
		acc.max = sample.Metrics.TempMax
	}

	// Keep the description from the sample nearest local noon. Samples
	// arrive in chronological order, so a strict comparison keeps the
	// earlier sample on a tie. Samples without conditions do not advance
	// the offset, so a farther sample can still contribute a description.
	if len(sample.Conditions) > 0 {
		noon := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, local.Location())
		offset := local.Sub(noon).Abs()
		if !acc.described || offset < acc.noonOffset {
			acc.description = sample.Conditions[0].Description
			acc.noonOffset = offset
			acc.described = true
		}
	}
	acc.empty = false
}

func (acc *dayAccumulator) summary() ForecastDay {
	return ForecastDay{
		Date:          acc.date,
		Description:   acc.description,
		MinCelsius:    acc.min,
		MaxCelsius:    acc.max,
		MinFahrenheit: fahrenheit(acc.min),
		MaxFahrenheit: fahrenheit(acc.max),
	}
}
