package timezonedb

import (
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ZoneRequest queries the timezone at a geographic coordinate
type ZoneRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (req *ZoneRequest) Values(key string) url.Values {
	result := url.Values{}
	result.Set("key", key)
	result.Set("format", "json")
	result.Set("by", "position")
	result.Set("lat", strconv.FormatFloat(req.Lat, 'f', -1, 64))
	result.Set("lng", strconv.FormatFloat(req.Lng, 'f', -1, 64))
	return result
}
