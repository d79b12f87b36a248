package openweather

import (
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CurrentWeather is the wire response from the current weather endpoint
type CurrentWeather struct {
	Name       string      `json:"name"`
	Conditions []Condition `json:"weather"`
	Metrics    Metrics     `json:"main"`
	Timestamp  int64       `json:"dt"`
	Timezone   int         `json:"timezone"`
	Sys        struct {
		Country string `json:"country,omitempty"`
	} `json:"sys"`
}

// Condition is a textual description of the sky
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Metrics carries the numeric observations, in metric units
type Metrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like,omitempty"`
	TempMin   float64 `json:"temp_min,omitempty"`
	TempMax   float64 `json:"temp_max,omitempty"`
	Pressure  float64 `json:"pressure,omitempty"`
	Humidity  float64 `json:"humidity"`
}

// Location is a geocoding result
type Location struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country,omitempty"`
	State   string  `json:"state,omitempty"`
}

// Reading is the normalized current weather result returned to callers
type Reading struct {
	City        string    `json:"city"`
	Description string    `json:"description"`
	Celsius     float64   `json:"temperature_celsius"`
	Fahrenheit  float64   `json:"temperature_fahrenheit"`
	Humidity    float64   `json:"humidity_percent"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (w CurrentWeather) String() string {
	return types.Stringify(w)
}

func (r Reading) String() string {
	return types.Stringify(r)
}

func (l Location) String() string {
	return types.Stringify(l)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Reading converts the wire response into a normalized reading, with the
// temperature reported on both scales
func (w *CurrentWeather) Reading() (*Reading, error) {
	if len(w.Conditions) == 0 {
		return nil, weather.ErrInvalidResponse.With("missing weather conditions")
	}
	return &Reading{
		City:        w.Name,
		Description: w.Conditions[0].Description,
		Celsius:     w.Metrics.Temp,
		Fahrenheit:  fahrenheit(w.Metrics.Temp),
		Humidity:    w.Metrics.Humidity,
		RetrievedAt: time.Unix(w.Timestamp, 0).UTC(),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func fahrenheit(celsius float64) float64 {
	return celsius*9.0/5.0 + 32.0
}
