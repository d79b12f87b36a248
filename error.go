/*
weather provides a conversational agent which answers questions about
current weather, the 5-day forecast and local time for named cities,
backed by the OpenWeatherMap and TimeZoneDB REST APIs and a Gemini
model for intent routing and response generation.
*/
package weather

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrInternalServerError
	ErrCityNotFound
	ErrUpstreamUnavailable
	ErrInvalidResponse
	ErrMissingCredentials
	ErrMaxTokens
	ErrRefusal
	ErrMaxIterations
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrInternalServerError:
		return "internal server error"
	case ErrCityNotFound:
		return "city not found"
	case ErrUpstreamUnavailable:
		return "upstream unavailable"
	case ErrInvalidResponse:
		return "invalid response"
	case ErrMissingCredentials:
		return "missing credentials"
	case ErrMaxTokens:
		return "response truncated: max tokens reached"
	case ErrRefusal:
		return "model refused to respond"
	case ErrMaxIterations:
		return "tool call iteration limit reached"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
