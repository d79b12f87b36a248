package opt

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a generation request
type Opt func(*Options) error

// Options is the set of applied options
type Options struct {
	values map[string]any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SystemPromptKey = "system_prompt"
	TemperatureKey  = "temperature"
	MaxTokensKey    = "max_tokens"
	ToolkitKey      = "toolkit"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*Options, error) {
	options := &Options{values: make(map[string]any)}
	for _, opt := range o {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Has returns true if the key has been set
func (o *Options) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Get returns the raw value for key, or nil if not set
func (o *Options) Get(key string) any {
	return o.values[key]
}

// GetString returns the trimmed string value for key, or empty string if not set
func (o *Options) GetString(key string) string {
	if v, ok := o.values[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// GetFloat64 returns the float64 value for key, or 0 if not set
func (o *Options) GetFloat64(key string) float64 {
	if v, ok := o.values[key].(float64); ok {
		return v
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set
func (o *Options) GetUint(key string) uint {
	if v, ok := o.values[key].(uint); ok {
		return v
	}
	return 0
}

// GetToolkit returns the toolkit value, or nil if not set
func (o *Options) GetToolkit() any {
	return o.values[ToolkitKey]
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *Options) error {
		return err
	}
}

// WithSystemPrompt sets the system instruction for the generation
func WithSystemPrompt(v string) Opt {
	return func(o *Options) error {
		o.values[SystemPromptKey] = v
		return nil
	}
}

// WithTemperature sets the sampling temperature
func WithTemperature(v float64) Opt {
	return func(o *Options) error {
		o.values[TemperatureKey] = v
		return nil
	}
}

// WithMaxTokens sets the maximum number of output tokens
func WithMaxTokens(v uint) Opt {
	return func(o *Options) error {
		o.values[MaxTokensKey] = v
		return nil
	}
}

// WithToolkit sets the toolkit whose tools are declared to the model
func WithToolkit(v any) Opt {
	return func(o *Options) error {
		o.values[ToolkitKey] = v
		return nil
	}
}
