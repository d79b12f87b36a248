/*
google implements an API client for the Google Gemini REST API.
https://ai.google.dev/gemini-api/docs
*/
package google

import (
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	modelcache "github.com/mutablelogic/go-weather/pkg/modelcache"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	*modelcache.ModelCache
}

var _ weather.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint    = "https://generativelanguage.googleapis.com/v1beta"
	defaultName = "gemini"

	// DefaultModel is used when no model is named on the command line
	// or in the agent profile
	DefaultModel = "gemini-2.5-flash"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Google Gemini API client with the given API key
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, weather.ErrMissingCredentials.With("GEMINI_API_KEY")
	}
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptHeader("x-goog-api-key", apiKey),
	}, opts...)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c, modelcache.NewModelCache(time.Hour, 40)}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return defaultName
}
