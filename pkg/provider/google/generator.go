package google

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithoutSession sends a single message and returns the response (stateless)
func (c *Client) WithoutSession(ctx context.Context, model schema.Model, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	if message == nil {
		return nil, nil, weather.ErrBadParameter.With("message is required")
	}
	session := schema.Conversation{message}
	return c.generate(ctx, model.Name, &session, opts...)
}

// WithSession sends a message within a session and returns the response,
// appending both the message and the response to the session
func (c *Client) WithSession(ctx context.Context, model schema.Model, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	if session == nil {
		return nil, nil, weather.ErrBadParameter.With("session is required")
	}
	if message == nil {
		return nil, nil, weather.ErrBadParameter.With("message is required")
	}
	snapshot := len(*session)
	session.Append(*message)
	response, usage, err := c.generate(ctx, model.Name, session, opts...)
	if err != nil && response == nil {
		// The request failed outright, so the message was never answered.
		// Restore the session; partial responses stay appended.
		*session = (*session)[:snapshot]
	}
	return response, usage, err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generate builds a request from the session and options and sends it
func (c *Client) generate(ctx context.Context, model string, session *schema.Conversation, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, nil, err
	}

	// Build request
	request, err := generateRequestFromOpts(session, options)
	if err != nil {
		return nil, nil, err
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, nil, err
	}

	// Request -> Response
	var response geminiGenerateResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("models", model+":generateContent")); err != nil {
		return nil, nil, err
	}

	return c.processResponse(&response, session)
}

// processResponse converts a gemini response to a schema message and
// appends it to the session
func (c *Client) processResponse(response *geminiGenerateResponse, session *schema.Conversation) (*schema.Message, *schema.Usage, error) {
	message, err := messageFromGeminiResponse(response)
	if err != nil {
		return nil, nil, err
	}

	// Append the message to the session with token counts
	var inputTokens, outputTokens uint
	if response.UsageMetadata != nil {
		inputTokens = uint(response.UsageMetadata.PromptTokenCount)
		outputTokens = uint(response.UsageMetadata.CandidatesTokenCount)
	}
	session.AppendWithOutput(*message, inputTokens, outputTokens)

	usage := &schema.Usage{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
	}

	// Return an error for finish reasons that need caller attention
	if len(response.Candidates) > 0 {
		switch response.Candidates[0].FinishReason {
		case geminiFinishReasonMaxTokens:
			return message, usage, weather.ErrMaxTokens
		case geminiFinishReasonSafety:
			return message, usage, weather.ErrRefusal
		}
	}

	return message, usage, nil
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// generateRequestFromOpts builds a geminiGenerateRequest from the session
// and applied options
func generateRequestFromOpts(session *schema.Conversation, options *opt.Options) (*geminiGenerateRequest, error) {
	// Convert session messages to wire contents
	contents, err := geminiContentsFromSession(session)
	if err != nil {
		return nil, err
	}

	request := &geminiGenerateRequest{
		Contents: contents,
	}

	// System instruction
	if systemPrompt := options.GetString(opt.SystemPromptKey); systemPrompt != "" {
		request.SystemInstruction = geminiNewTextContent("", systemPrompt)
	}

	// Generation config
	if options.Has(opt.TemperatureKey) {
		v := options.GetFloat64(opt.TemperatureKey)
		request.GenerationConfig.Temperature = &v
	}
	if options.Has(opt.MaxTokensKey) {
		request.GenerationConfig.MaxOutputTokens = int(options.GetUint(opt.MaxTokensKey))
	}

	// Tools from toolkit, via their provider-agnostic definitions
	if tk, ok := options.GetToolkit().(*tool.Toolkit); ok && tk != nil {
		defs, err := tk.Definitions()
		if err != nil {
			return nil, err
		}
		decls := geminiFunctionDeclsFromDefinitions(defs)
		if len(decls) > 0 {
			request.Tools = []*geminiTool{{
				FunctionDeclarations: decls,
			}}
		}
	}

	return request, nil
}

// GenerateRequest builds a generate request from options without sending
// it, for testing and debugging
func GenerateRequest(session *schema.Conversation, opts ...opt.Opt) (any, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return generateRequestFromOpts(session, options)
}
