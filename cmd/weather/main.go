package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	chat "github.com/mutablelogic/go-weather/pkg/chat"
	citytime "github.com/mutablelogic/go-weather/pkg/citytime"
	openweather "github.com/mutablelogic/go-weather/pkg/openweather"
	google "github.com/mutablelogic/go-weather/pkg/provider/google"
	timezonedb "github.com/mutablelogic/go-weather/pkg/timezonedb"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Credentials
	OpenWeather `embed:"" help:"OpenWeatherMap configuration"`
	TimeZoneDB  `embed:"" help:"TimeZoneDB configuration"`
	Gemini      `embed:"" help:"Gemini configuration"`

	// Agent profile
	Profile string `name:"profile" help:"Agent profile YAML file" optional:""`
	Model   string `name:"model" help:"Override the generation model" optional:""`

	// Context
	ctx     context.Context
	term    *Term
	toolkit *tool.Toolkit
}

type OpenWeather struct {
	OpenWeatherKey string `env:"OPENWEATHER_API_KEY" help:"OpenWeatherMap API Key"`
}

type TimeZoneDB struct {
	TimeZoneDBKey string `env:"TIMEZONEDB_API_KEY" help:"TimeZoneDB API Key"`
}

type Gemini struct {
	GeminiKey string `env:"GEMINI_API_KEY" help:"Gemini API Key"`
}

type CLI struct {
	Globals

	// Lookups
	Weather  WeatherCmd  `cmd:"" help:"Return the current weather for a city"`
	Forecast ForecastCmd `cmd:"" help:"Return the 5-day forecast for a city"`
	Time     TimeCmd     `cmd:"" help:"Return the current local time for a city"`

	// Agent
	Chat   ChatCmd       `cmd:"" help:"Start a chat session with the weather agent"`
	Models ListModelsCmd `cmd:"" help:"Return a list of generation models"`
	Tools  ListToolsCmd  `cmd:"" help:"Return a list of tools"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load credentials from a .env file, when present
	godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Conversational weather agent command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Create a terminal
	term, err := NewTerm(os.Stdout)
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	cli.Globals.term = term

	// Report missing credentials at startup so a misconfigured
	// environment fails loudly rather than mid-conversation
	if cli.OpenWeatherKey == "" {
		log.Println("OPENWEATHER_API_KEY is not set: weather and forecast tools are disabled")
	}
	if cli.TimeZoneDBKey == "" {
		log.Println("TIMEZONEDB_API_KEY is not set: the local time tool is disabled")
	}
	if cli.GeminiKey == "" {
		log.Println("GEMINI_API_KEY is not set: chat and models commands are disabled")
	}

	// Make a toolkit from the available credentials
	toolkit, err := cli.Globals.newToolkit()
	cmd.FatalIfErrorf(err)
	cli.Globals.toolkit = toolkit

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// ClientOpts returns the transport options shared by all API clients
func (g *Globals) ClientOpts() []client.ClientOpt {
	result := []client.ClientOpt{}
	if g.Debug {
		result = append(result, client.OptTrace(os.Stderr, g.Verbose))
	}
	return result
}

// newToolkit registers the lookup tools which have credentials
func (g *Globals) newToolkit() (*tool.Toolkit, error) {
	toolkit, err := tool.NewToolkit()
	if err != nil {
		return nil, err
	}

	// Weather and forecast tools
	if g.OpenWeatherKey != "" {
		tools, err := openweather.NewTools(g.OpenWeatherKey, g.ClientOpts()...)
		if err != nil {
			return nil, err
		}
		if err := toolkit.Register(tools...); err != nil {
			return nil, err
		}
	}

	// Local time tool needs both providers
	if g.OpenWeatherKey != "" && g.TimeZoneDBKey != "" {
		geocoder, err := openweather.New(g.OpenWeatherKey, g.ClientOpts()...)
		if err != nil {
			return nil, err
		}
		zones, err := timezonedb.New(g.TimeZoneDBKey, g.ClientOpts()...)
		if err != nil {
			return nil, err
		}
		if err := toolkit.Register(citytime.NewTool(geocoder, zones)); err != nil {
			return nil, err
		}
	}

	return toolkit, nil
}

// Generator returns the Gemini client
func (g *Globals) Generator() (weather.Generator, error) {
	return google.New(g.GeminiKey, g.ClientOpts()...)
}

// Agent composes the generator, toolkit and profile into a chat agent
func (g *Globals) Agent() (*chat.Agent, error) {
	generator, err := g.Generator()
	if err != nil {
		return nil, err
	}

	// Load the profile
	profile := chat.DefaultProfile()
	if g.Profile != "" {
		if profile, err = chat.LoadProfile(g.Profile); err != nil {
			return nil, err
		}
	}

	// Resolve the model
	model := g.Model
	if model == "" && profile.Model != "" {
		model = profile.Model
	}
	if model == "" {
		model = google.DefaultModel
	}

	return chat.New(generator, g.toolkit, profile, model)
}
