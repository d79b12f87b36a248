/*
chat runs a conversation between the user, a generator and the weather
lookup tools, until the generator produces a final text response.
*/
package chat

import (
	"context"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Agent struct {
	generator weather.Generator
	toolkit   *tool.Toolkit
	profile   *Profile
	model     schema.Model
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultMaxIterations bounds the tool-calling loop for a single turn
const DefaultMaxIterations = 10

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an agent from a generator, a toolkit and a profile. The
// model name comes from the profile unless overridden.
func New(generator weather.Generator, toolkit *tool.Toolkit, profile *Profile, model string) (*Agent, error) {
	if generator == nil {
		return nil, weather.ErrBadParameter.With("generator is required")
	}
	if profile == nil {
		profile = DefaultProfile()
	}
	if model == "" {
		model = profile.Model
	}
	if model == "" {
		return nil, weather.ErrBadParameter.With("model is required")
	}
	if toolkit == nil {
		var err error
		if toolkit, err = tool.NewToolkit(); err != nil {
			return nil, err
		}
	}
	return &Agent{
		generator: generator,
		toolkit:   toolkit,
		profile:   profile,
		model:     schema.Model{Name: model},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Model returns the model the agent generates with
func (a *Agent) Model() string {
	return a.model.Name
}

// Profile returns the agent profile
func (a *Agent) Profile() *Profile {
	return a.profile
}

// Chat processes one user turn within a session, running any tool calls
// the generator requests until it produces a final response or the
// iteration limit is reached
func (a *Agent) Chat(ctx context.Context, session *schema.Conversation, text string) (*schema.Message, *schema.Usage, error) {
	if session == nil {
		return nil, nil, weather.ErrBadParameter.With("session is required")
	}

	opts := a.opts()

	// Snapshot the conversation length so the whole turn can be rolled
	// back when tool iterations are exhausted
	snapshot := len(*session)

	// Send the user message within the session
	result, usage, err := a.generator.WithSession(ctx, a.model, session, schema.NewMessage(schema.RoleUser, text), opts...)
	if err != nil {
		return nil, nil, err
	}

	// Tool-calling loop: if the model requests tool calls, execute them
	// and feed results back until we get a final response or hit the
	// limit
	for i := 0; i < DefaultMaxIterations && result.Result == schema.ResultToolCall; i++ {
		toolCalls := result.ToolCalls()
		if len(toolCalls) == 0 {
			break
		}

		// Execute each tool call and collect result blocks. A failed
		// lookup is reported back to the model as a tool error, not
		// surfaced to the caller, so the model can explain it.
		var toolResults []schema.ContentBlock
		for _, call := range toolCalls {
			output, err := a.toolkit.Run(ctx, call.Name, call.Input)
			if err != nil {
				toolResults = append(toolResults, schema.NewToolError(call.ID, call.Name, err))
			} else {
				toolResults = append(toolResults, schema.NewToolResult(call.ID, call.Name, output))
			}
		}

		// Build a tool-result message and send it back
		toolMessage := types.Ptr(schema.Message{
			Role:    schema.RoleUser,
			Content: toolResults,
		})
		var u *schema.Usage
		result, u, err = a.generator.WithSession(ctx, a.model, session, toolMessage, opts...)
		if err != nil {
			return nil, nil, err
		}

		// Accumulate usage
		if u != nil {
			if usage == nil {
				usage = u
			} else {
				usage.InputTokens += u.InputTokens
				usage.OutputTokens += u.OutputTokens
			}
		}
	}

	// If the iteration limit was exhausted while the model still wants
	// tool calls, roll back the conversation and report the condition
	if result.Result == schema.ResultToolCall {
		*session = (*session)[:snapshot]
		result.Result = schema.ResultMaxIterations
		return result, usage, weather.ErrMaxIterations.Withf("after %d iterations", DefaultMaxIterations)
	}

	return result, usage, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// opts builds the generation options from the profile and toolkit
func (a *Agent) opts() []opt.Opt {
	opts := []opt.Opt{
		opt.WithSystemPrompt(a.profile.SystemPrompt()),
	}
	if a.profile.Temperature > 0 {
		opts = append(opts, opt.WithTemperature(a.profile.Temperature))
	}
	if a.profile.MaxTokens > 0 {
		opts = append(opts, opt.WithMaxTokens(a.profile.MaxTokens))
	}
	if a.toolkit != nil && len(a.toolkit.Tools()) > 0 {
		opts = append(opts, opt.WithToolkit(a.toolkit))
	}
	return opts
}
