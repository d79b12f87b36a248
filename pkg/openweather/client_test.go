package openweather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	openweather "github.com/mutablelogic/go-weather/pkg/openweather"
	assert "github.com/stretchr/testify/assert"
)

const currentPayload = `{
	"name": "London",
	"dt": 1756600000,
	"timezone": 3600,
	"weather": [{"main": "Clouds", "description": "broken clouds"}],
	"main": {"temp": 15.0, "humidity": 80},
	"sys": {"country": "GB"}
}`

func Test_client_001(t *testing.T) {
	assert := assert.New(t)

	// A missing API key is rejected before any client is constructed
	_, err := openweather.New("")
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrMissingCredentials)
	}

	_, err = openweather.NewTools("")
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrMissingCredentials)
	}
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal("/data/2.5/weather", r.URL.Path)
		assert.Equal("London", r.URL.Query().Get("q"))
		assert.Equal("metric", r.URL.Query().Get("units"))
		assert.Equal("testkey", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(currentPayload))
	}))
	defer server.Close()

	c, err := openweather.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	response, err := c.Current(context.TODO(), &openweather.CurrentRequest{City: "London"})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(1, calls)

	reading, err := response.Reading()
	if assert.NoError(err) {
		assert.Equal("London", reading.City)
		assert.Equal("broken clouds", reading.Description)
		assert.Equal(15.0, reading.Celsius)
		assert.Equal(59.0, reading.Fahrenheit)
		assert.Equal(80.0, reading.Humidity)
		assert.False(reading.RetrievedAt.IsZero())
	}
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)

	// The geocoding endpoint reports an unknown city as an empty array
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/geo/1.0/direct", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c, err := openweather.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	_, err = c.Geocode(context.TODO(), &openweather.GeocodeRequest{City: "Atlantis"})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrCityNotFound)
	}
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)

	// An empty city fails before any network call
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	c, err := openweather.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	_, err = c.Current(context.TODO(), &openweather.CurrentRequest{City: ""})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrBadParameter)
	}
	_, err = c.Forecast(context.TODO(), &openweather.ForecastRequest{City: ""})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrBadParameter)
	}
	_, err = c.Geocode(context.TODO(), &openweather.GeocodeRequest{City: ""})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrBadParameter)
	}
	assert.Equal(0, calls)
}

func Test_client_005(t *testing.T) {
	assert := assert.New(t)

	// A geocode hit returns the first candidate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name": "Madrid", "lat": 40.4168, "lon": -3.7038, "country": "ES"}]`))
	}))
	defer server.Close()

	c, err := openweather.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	location, err := c.Geocode(context.TODO(), &openweather.GeocodeRequest{City: "Madrid"})
	if assert.NoError(err) {
		assert.Equal("Madrid", location.Name)
		assert.Equal(40.4168, location.Lat)
		assert.Equal(-3.7038, location.Lon)
	}
}

func Test_client_006(t *testing.T) {
	assert := assert.New(t)

	// A 200 response with a truncated JSON body is a malformed
	// response, not an upstream fault
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "London", "main": {`))
	}))
	defer server.Close()

	c, err := openweather.New("testkey", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	_, err = c.Current(context.TODO(), &openweather.CurrentRequest{City: "London"})
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrInvalidResponse)
	}
}
