package openweather

import (
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CurrentRequest queries current conditions for a named city
type CurrentRequest struct {
	City string `json:"city" jsonschema:"City name, for example Madrid or London"`
}

// ForecastRequest queries the 5-day forecast for a named city
type ForecastRequest struct {
	City string `json:"city" jsonschema:"City name, for example Madrid or London"`
}

// GeocodeRequest resolves a city name to coordinates
type GeocodeRequest struct {
	City  string `json:"city"`
	Limit uint   `json:"limit,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (req *CurrentRequest) Values(key string) url.Values {
	result := url.Values{}
	result.Set("appid", key)
	result.Set("units", "metric")
	result.Set("q", req.City)
	return result
}

func (req *ForecastRequest) Values(key string) url.Values {
	result := url.Values{}
	result.Set("appid", key)
	result.Set("units", "metric")
	result.Set("q", req.City)
	return result
}

func (req *GeocodeRequest) Values(key string) url.Values {
	result := url.Values{}
	result.Set("appid", key)
	result.Set("q", req.City)
	if req.Limit > 0 {
		result.Set("limit", strconv.FormatUint(uint64(req.Limit), 10))
	} else {
		result.Set("limit", "1")
	}
	return result
}
