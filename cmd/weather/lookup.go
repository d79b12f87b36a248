package main

import (
	// Packages
	citytime "github.com/mutablelogic/go-weather/pkg/citytime"
	openweather "github.com/mutablelogic/go-weather/pkg/openweather"
	timezonedb "github.com/mutablelogic/go-weather/pkg/timezonedb"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type WeatherCmd struct {
	City string `arg:"" help:"City name"`
}

type ForecastCmd struct {
	City string `arg:"" help:"City name"`
}

type TimeCmd struct {
	City string `arg:"" help:"City name"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *WeatherCmd) Run(globals *Globals) error {
	client, err := openweather.New(globals.OpenWeatherKey, globals.ClientOpts()...)
	if err != nil {
		return err
	}

	response, err := client.Current(globals.ctx, &openweather.CurrentRequest{City: cmd.City})
	if err != nil {
		return err
	}
	reading, err := response.Reading()
	if err != nil {
		return err
	}

	globals.term.Printf("%s: %s, %.1f°C (%.1f°F), humidity %.0f%%\n",
		reading.City, reading.Description, reading.Celsius, reading.Fahrenheit, reading.Humidity)
	return nil
}

func (cmd *ForecastCmd) Run(globals *Globals) error {
	client, err := openweather.New(globals.OpenWeatherKey, globals.ClientOpts()...)
	if err != nil {
		return err
	}

	response, err := client.Forecast(globals.ctx, &openweather.ForecastRequest{City: cmd.City})
	if err != nil {
		return err
	}
	days, err := response.Days(5)
	if err != nil {
		return err
	}

	for _, day := range days {
		globals.term.Printf("%s  %5.1f°C to %5.1f°C  %s\n",
			day.Date, day.MinCelsius, day.MaxCelsius, day.Description)
	}
	return nil
}

func (cmd *TimeCmd) Run(globals *Globals) error {
	geocoder, err := openweather.New(globals.OpenWeatherKey, globals.ClientOpts()...)
	if err != nil {
		return err
	}
	zones, err := timezonedb.New(globals.TimeZoneDBKey, globals.ClientOpts()...)
	if err != nil {
		return err
	}

	location, err := geocoder.Geocode(globals.ctx, &openweather.GeocodeRequest{City: cmd.City})
	if err != nil {
		return err
	}
	zone, err := zones.Zone(globals.ctx, &timezonedb.ZoneRequest{Lat: location.Lat, Lng: location.Lon})
	if err != nil {
		return err
	}

	reading := citytime.TimeReading{
		City:     location.Name,
		Timezone: zone.ZoneName,
		Local:    zone.Formatted,
	}
	globals.term.Printf("%s (%s): %s\n", reading.City, reading.Timezone, reading.Local)
	return nil
}
