package google_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	google "github.com/mutablelogic/go-weather/pkg/provider/google"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *google.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := google.New("testkey", client.OptEndpoint(server.URL))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func Test_generator_001(t *testing.T) {
	assert := assert.New(t)

	_, err := google.New("")
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrMissingCredentials)
	}
}

func Test_generator_002(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal("testkey", r.Header.Get("x-goog-api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "It is sunny."}]},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 4}
		}`))
	})

	session := schema.Conversation{}
	message, usage, err := c.WithSession(context.TODO(), schema.Model{Name: google.DefaultModel}, &session, schema.NewMessage(schema.RoleUser, "Weather in London?"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(schema.RoleAssistant, message.Role)
	assert.Equal("It is sunny.", message.Text())
	assert.Equal(schema.ResultStop, message.Result)
	assert.Equal(uint(12), usage.InputTokens)
	assert.Equal(uint(4), usage.OutputTokens)

	// Both the user message and the response are appended to the session
	assert.Len(session, 2)
}

func Test_generator_003(t *testing.T) {
	assert := assert.New(t)

	// A function call from the model surfaces as a tool call with a
	// synthesized identifier
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{
					"functionCall": {"name": "current_weather", "args": {"city": "London"}}
				}]},
				"finishReason": "STOP"
			}]
		}`))
	})

	session := schema.Conversation{}
	message, _, err := c.WithSession(context.TODO(), schema.Model{Name: google.DefaultModel}, &session, schema.NewMessage(schema.RoleUser, "Weather in London?"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(schema.ResultToolCall, message.Result)

	calls := message.ToolCalls()
	if assert.Len(calls, 1) {
		assert.Equal("current_weather", calls[0].Name)
		assert.NotEmpty(calls[0].ID)
		assert.JSONEq(`{"city": "London"}`, string(calls[0].Input))
	}
}

func Test_generator_004(t *testing.T) {
	assert := assert.New(t)

	// Truncated output is reported alongside the partial message
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "It is"}]},
				"finishReason": "MAX_TOKENS"
			}]
		}`))
	})

	session := schema.Conversation{}
	message, _, err := c.WithSession(context.TODO(), schema.Model{Name: google.DefaultModel}, &session, schema.NewMessage(schema.RoleUser, "Weather?"))
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrMaxTokens)
	}
	assert.Equal(schema.ResultMaxTokens, message.Result)
}

func Test_generator_005(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, nil)
	_, _, err := c.WithSession(context.TODO(), schema.Model{Name: google.DefaultModel}, nil, schema.NewMessage(schema.RoleUser, "hello"))
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrBadParameter)
	}

	session := schema.Conversation{}
	_, _, err = c.WithSession(context.TODO(), schema.Model{Name: google.DefaultModel}, &session, nil)
	if assert.Error(err) {
		assert.ErrorIs(err, weather.ErrBadParameter)
	}
}

func Test_generator_006(t *testing.T) {
	assert := assert.New(t)

	// A failed request leaves the session unchanged, so the caller can
	// retry without an unanswered message lingering in the conversation
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "backend error"}}`, http.StatusInternalServerError)
	})

	session := schema.Conversation{}
	message, _, err := c.WithSession(context.TODO(), schema.Model{Name: google.DefaultModel}, &session, schema.NewMessage(schema.RoleUser, "Weather in London?"))
	assert.Error(err)
	assert.Nil(message)
	assert.Len(session, 0)
}
