package chat

import (
	"fmt"
	"os"
	"strings"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Profile describes the persona and fixed response language of the agent,
// loaded from a YAML file
type Profile struct {
	Name        string  `yaml:"name"`
	Model       string  `yaml:"model,omitempty"`
	Language    string  `yaml:"language"`
	Persona     string  `yaml:"persona"`
	Temperature float64 `yaml:"temperature,omitempty"`
	MaxTokens   uint    `yaml:"max_tokens,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultPersona = `You are a friendly weather assistant. Use the tools to answer
questions about the current weather, the forecast and the local time in
cities around the world. When a city cannot be found, say so plainly and
ask for a correction. Do not invent weather data.`
	defaultLanguage = "English"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultProfile returns the built-in profile, used when no profile file
// is given
func DefaultProfile() *Profile {
	return &Profile{
		Name:     "weather",
		Language: defaultLanguage,
		Persona:  defaultPersona,
	}
}

// LoadProfile reads a profile from a YAML file, filling in defaults for
// missing fields
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, weather.ErrBadParameter.With(err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, weather.ErrBadParameter.Withf("%s: %v", path, err)
	}
	if strings.TrimSpace(profile.Persona) == "" {
		profile.Persona = defaultPersona
	}
	if strings.TrimSpace(profile.Language) == "" {
		profile.Language = defaultLanguage
	}

	return profile, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SystemPrompt composes the persona with the fixed response language.
// The language instruction always wins over the language of the question.
func (p *Profile) SystemPrompt() string {
	prompt := strings.TrimSpace(p.Persona)
	return fmt.Sprintf("%s\n\nAlways respond in %s, regardless of the language the question was asked in.", prompt, p.Language)
}
