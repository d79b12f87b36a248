/*
timezonedb implements an API client for TimeZoneDB
https://timezonedb.com/api
*/
package timezonedb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
}

// Zone is the wire response from the get-time-zone endpoint
type Zone struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	CountryName string `json:"countryName,omitempty"`
	ZoneName    string `json:"zoneName"`
	GmtOffset   int    `json:"gmtOffset"`
	Formatted   string `json:"formatted"` // Local wall-clock time, YYYY-MM-DD hh:mm:ss
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint       = "http://api.timezonedb.com/v2.1"
	defaultTimeout = 8 * time.Second
	statusOK       = "OK"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client. The API key is required; options are applied
// after the defaults so tests can override the endpoint.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if apiKey == "" {
		return nil, weather.ErrMissingCredentials.With("TIMEZONEDB_API_KEY")
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
// STRINGIFY

func (z Zone) String() string {
	return types.Stringify(z)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Zone returns the timezone and current local time at a coordinate
func (c *Client) Zone(ctx context.Context, req *ZoneRequest) (*Zone, error) {
	if c.key == "" {
		return nil, weather.ErrMissingCredentials.With("TIMEZONEDB_API_KEY")
	}

	// Request -> Response
	var response Zone
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("get-time-zone"), client.OptQuery(req.Values(c.key))); err != nil {
		return nil, classify(err)
	}

	// The provider reports failures inside a 200 response
	if response.Status != statusOK {
		return nil, statusErr(response.Message)
	}
	if response.ZoneName == "" || response.Formatted == "" {
		return nil, weather.ErrInvalidResponse.With("missing zone name or local time")
	}

	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func classify(err error) error {
	var httpErr httpresponse.Err
	if errors.As(err, &httpErr) {
		return weather.ErrUpstreamUnavailable.With(err)
	}
	// A truncated body surfaces as an unexpected EOF rather than a
	// syntax error
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return weather.ErrInvalidResponse.With(err)
	}
	return weather.ErrUpstreamUnavailable.With(err)
}

// statusErr maps a FAILED status message onto the failure taxonomy
func statusErr(message string) error {
	if strings.Contains(strings.ToLower(message), "api key") {
		return weather.ErrMissingCredentials.With(message)
	}
	return weather.ErrUpstreamUnavailable.With(message)
}
