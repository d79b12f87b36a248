/*
citytime reports the current local time for a city, by resolving the
city to coordinates and then looking up the timezone at that position.
*/
package citytime

import (
	"context"
	"encoding/json"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
	openweather "github.com/mutablelogic/go-weather/pkg/openweather"
	timezonedb "github.com/mutablelogic/go-weather/pkg/timezonedb"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type currentTime struct {
	geocoder *openweather.Client
	zones    *timezonedb.Client
}

// TimeRequest queries the current local time in a named city
type TimeRequest struct {
	City string `json:"city" jsonschema:"City name, for example Madrid or London"`
}

// TimeReading is the normalized local time result returned to callers
type TimeReading struct {
	City     string `json:"city"`
	Timezone string `json:"timezone"`
	Local    string `json:"local_datetime"` // As reported by the provider
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var _ tool.Tool = (*currentTime)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTool returns the local time tool, composed from a geocoding client
// and a timezone client
func NewTool(geocoder *openweather.Client, zones *timezonedb.Client) tool.Tool {
	return &currentTime{
		geocoder: geocoder,
		zones:    zones,
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r TimeReading) String() string {
	return types.Stringify(r)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*currentTime) Name() string {
	return "current_time"
}

func (*currentTime) Description() string {
	return "Return the current local date and time for a city"
}

func (*currentTime) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[TimeRequest](nil)
}

func (t *currentTime) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req TimeRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, weather.ErrBadParameter.With(err)
	}
	req.City = strings.TrimSpace(req.City)

	// First stage resolves the city to coordinates; a failure here
	// short-circuits the timezone lookup
	location, err := t.geocoder.Geocode(ctx, &openweather.GeocodeRequest{City: req.City})
	if err != nil {
		return nil, err
	}

	// Second stage resolves the coordinates to a timezone and the
	// current wall-clock time there
	zone, err := t.zones.Zone(ctx, &timezonedb.ZoneRequest{Lat: location.Lat, Lng: location.Lon})
	if err != nil {
		return nil, err
	}

	return &TimeReading{
		City:     location.Name,
		Timezone: zone.ZoneName,
		Local:    zone.Formatted,
	}, nil
}
