package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST TOOL

type echoRequest struct {
	City string `json:"city" jsonschema:"City name"`
}

type echoTool struct {
	name  string
	calls int
}

func (t *echoTool) Name() string {
	return t.name
}

func (t *echoTool) Description() string {
	return "Echo the city name back"
}

func (t *echoTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[echoRequest](nil)
}

func (t *echoTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	t.calls++
	var req echoRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, weather.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	return req.City, nil
}

var _ tool.Tool = (*echoTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_toolkit_001(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(&echoTool{name: "echo_city"})
	assert.NoError(err)
	assert.NotNil(toolkit)
	assert.Len(toolkit.Tools(), 1)
	assert.NotNil(toolkit.Lookup("echo_city"))
	assert.Nil(toolkit.Lookup("missing"))
}

func Test_toolkit_002(t *testing.T) {
	assert := assert.New(t)

	// Invalid names are rejected
	_, err := tool.NewToolkit(&echoTool{name: "has spaces"})
	assert.ErrorIs(err, weather.ErrBadParameter)

	// Duplicate names are rejected
	_, err = tool.NewToolkit(&echoTool{name: "echo_city"}, &echoTool{name: "echo_city"})
	assert.ErrorIs(err, weather.ErrBadParameter)
}

func Test_toolkit_003(t *testing.T) {
	assert := assert.New(t)

	echo := &echoTool{name: "echo_city"}
	toolkit, err := tool.NewToolkit(echo)
	assert.NoError(err)

	// Valid input is dispatched
	result, err := toolkit.Run(context.Background(), "echo_city", json.RawMessage(`{"city":"London"}`))
	assert.NoError(err)
	assert.Equal("London", result)
	assert.Equal(1, echo.calls)

	// Unknown tools are not found
	_, err = toolkit.Run(context.Background(), "missing", nil)
	assert.ErrorIs(err, weather.ErrNotFound)

	// Malformed JSON fails validation before the tool runs
	_, err = toolkit.Run(context.Background(), "echo_city", json.RawMessage(`{"city":`))
	assert.ErrorIs(err, weather.ErrBadParameter)
	assert.Equal(1, echo.calls)
}

func Test_toolkit_004(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(&echoTool{name: "echo_city"})
	assert.NoError(err)

	// Feedback includes the description when the tool exists
	feedback := toolkit.Feedback(schema.ToolCall{Name: "echo_city"})
	assert.Contains(feedback, "echo_city")
	assert.Contains(feedback, "Echo the city name back")

	// Unknown tools fall back to the name
	assert.Equal("missing", toolkit.Feedback(schema.ToolCall{Name: "missing"}))
}

func Test_toolkit_005(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(&echoTool{name: "echo_city"}, &echoTool{name: "echo_again"})
	assert.NoError(err)

	// Definitions preserve registration order and carry the tool schema
	defs, err := toolkit.Definitions()
	assert.NoError(err)
	if assert.Len(defs, 2) {
		assert.Equal("echo_city", defs[0].Name)
		assert.Equal("echo_again", defs[1].Name)
		assert.Equal("Echo the city name back", defs[0].Description)
		if assert.NotNil(defs[0].InputSchema) {
			assert.Contains(defs[0].InputSchema.Properties, "city")
		}
	}
}
