/*
openweather implements an API client for OpenWeatherMap
https://openweathermap.org/api
*/
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.openweathermap.org"

	// Every upstream call is bounded so a slow provider fails the
	// conversational turn instead of hanging it
	defaultTimeout = 8 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client. The API key is required; options are applied
// after the defaults so tests can override the endpoint.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if apiKey == "" {
		return nil, weather.ErrMissingCredentials.With("OPENWEATHER_API_KEY")
	}

	// Create client
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptTimeout(defaultTimeout),
	}, opts...)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    apiKey,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current returns the current weather conditions for a city
func (c *Client) Current(ctx context.Context, req *CurrentRequest) (*CurrentWeather, error) {
	if err := c.validate(req.City); err != nil {
		return nil, err
	}

	// Request -> Response
	var response CurrentWeather
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("data", "2.5", "weather"), client.OptQuery(req.Values(c.key))); err != nil {
		return nil, classify(err)
	}

	return &response, nil
}

// Forecast returns the 5-day forecast for a city, as 3-hourly samples
func (c *Client) Forecast(ctx context.Context, req *ForecastRequest) (*Forecast, error) {
	if err := c.validate(req.City); err != nil {
		return nil, err
	}

	// Request -> Response
	var response Forecast
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("data", "2.5", "forecast"), client.OptQuery(req.Values(c.key))); err != nil {
		return nil, classify(err)
	}

	return &response, nil
}

// Geocode resolves a city name to geographic coordinates. Returns
// ErrCityNotFound when the provider does not recognize the city.
func (c *Client) Geocode(ctx context.Context, req *GeocodeRequest) (*Location, error) {
	if err := c.validate(req.City); err != nil {
		return nil, err
	}

	// Request -> Response
	var response []Location
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("geo", "1.0", "direct"), client.OptQuery(req.Values(c.key))); err != nil {
		return nil, classify(err)
	}

	// An empty result set is how the geocoding endpoint reports an
	// unrecognized city
	if len(response) == 0 {
		return nil, weather.ErrCityNotFound.Withf("city %q", req.City)
	}

	return &response[0], nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// validate checks credentials and input before any network call is made
func (c *Client) validate(city string) error {
	if c.key == "" {
		return weather.ErrMissingCredentials.With("OPENWEATHER_API_KEY")
	}
	if city == "" {
		return weather.ErrBadParameter.With("city is required")
	}
	return nil
}

// classify maps transport and HTTP status failures onto the lookup
// failure taxonomy
func classify(err error) error {
	var httpErr httpresponse.Err
	if errors.As(err, &httpErr) {
		switch int(httpErr) {
		case http.StatusNotFound:
			return weather.ErrCityNotFound.With(err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return weather.ErrMissingCredentials.With(err)
		default:
			return weather.ErrUpstreamUnavailable.With(err)
		}
	}

	// Decode failures on a 2xx response indicate a malformed body. A
	// truncated body surfaces as an unexpected EOF rather than a syntax
	// error.
	var jsonErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &jsonErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return weather.ErrInvalidResponse.With(err)
	}

	// Network failure, timeout or other transport error
	return weather.ErrUpstreamUnavailable.With(err)
}
