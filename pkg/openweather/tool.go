package openweather

import (
	"context"
	"encoding/json"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type currentWeather struct {
	client *Client
}

type forecastWeather struct {
	client *Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// The forecast endpoint covers five days of 3-hourly samples
const forecastDays = 5

var (
	_ tool.Tool = (*currentWeather)(nil)
	_ tool.Tool = (*forecastWeather)(nil)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the weather lookup tools backed by a shared client
func NewTools(apiKey string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	client, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return []tool.Tool{
		&currentWeather{client: client},
		&forecastWeather{client: client},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CURRENT WEATHER

func (*currentWeather) Name() string {
	return "current_weather"
}

func (*currentWeather) Description() string {
	return "Return the current weather conditions for a city, including temperature and humidity"
}

func (*currentWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CurrentRequest](nil)
}

func (t *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CurrentRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, weather.ErrBadParameter.With(err)
	}
	req.City = strings.TrimSpace(req.City)

	// Fetch and normalize
	response, err := t.client.Current(ctx, &req)
	if err != nil {
		return nil, err
	}
	return response.Reading()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - FORECAST

func (*forecastWeather) Name() string {
	return "forecast_weather"
}

func (*forecastWeather) Description() string {
	return "Return a five day weather forecast for a city, with daily minimum and maximum temperatures"
}

func (*forecastWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ForecastRequest](nil)
}

func (t *forecastWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ForecastRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, weather.ErrBadParameter.With(err)
	}
	req.City = strings.TrimSpace(req.City)

	// Fetch and aggregate into daily summaries
	response, err := t.client.Forecast(ctx, &req)
	if err != nil {
		return nil, err
	}
	return response.Days(forecastDays)
}
