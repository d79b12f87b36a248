package timezonedb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	timezonedb "github.com/mutablelogic/go-weather/pkg/timezonedb"
	assert "github.com/stretchr/testify/assert"
)

func Test_client_001(t *testing.T) {
	assert := assert.New(t)

	_, err := timezonedb.New("")
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrMissingCredentials)
	}
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/get-time-zone", r.URL.Path)
		assert.Equal("testkey", r.URL.Query().Get("key"))
		assert.Equal("position", r.URL.Query().Get("by"))
		assert.Equal("51.5073", r.URL.Query().Get("lat"))
		assert.Equal("-0.1276", r.URL.Query().Get("lng"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"countryName": "United Kingdom",
			"zoneName": "Europe/London",
			"gmtOffset": 3600,
			"formatted": "2026-08-31 14:05:00"
		}`))
	}))
	defer server.Close()

	c, err := timezonedb.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	zone, err := c.Zone(context.TODO(), &timezonedb.ZoneRequest{Lat: 51.5073, Lng: -0.1276})
	if assert.NoError(err) {
		assert.Equal("Europe/London", zone.ZoneName)
		assert.Equal("2026-08-31 14:05:00", zone.Formatted)
		assert.Equal(3600, zone.GmtOffset)
	}
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)

	// The provider reports failures inside a 200 response
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "FAILED", "message": "Invalid API key."}`))
	}))
	defer server.Close()

	c, err := timezonedb.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	_, err = c.Zone(context.TODO(), &timezonedb.ZoneRequest{Lat: 0, Lng: 0})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrMissingCredentials)
	}
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)

	// A FAILED status which is not about credentials is an upstream fault
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "FAILED", "message": "Rate limit exceeded."}`))
	}))
	defer server.Close()

	c, err := timezonedb.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	_, err = c.Zone(context.TODO(), &timezonedb.ZoneRequest{Lat: 0, Lng: 0})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrUpstreamUnavailable)
	}
}

func Test_client_005(t *testing.T) {
	assert := assert.New(t)

	// An OK status with missing fields is a malformed response
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "OK"}`))
	}))
	defer server.Close()

	c, err := timezonedb.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	_, err = c.Zone(context.TODO(), &timezonedb.ZoneRequest{Lat: 0, Lng: 0})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrInvalidResponse)
	}
}

func Test_client_006(t *testing.T) {
	assert := assert.New(t)

	// A 200 response with a truncated JSON body is a malformed
	// response, not an upstream fault
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "OK", "zoneName": "Europe/`))
	}))
	defer server.Close()

	c, err := timezonedb.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	_, err = c.Zone(context.TODO(), &timezonedb.ZoneRequest{Lat: 0, Lng: 0})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrInvalidResponse)
	}
}
