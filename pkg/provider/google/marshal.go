package google

import (
	"encoding/json"

	// Packages
	uuid "github.com/google/uuid"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// SESSION / MESSAGE -> GEMINI WIRE FORMAT (OUTBOUND)

// geminiContentsFromSession converts a schema.Conversation into gemini wire
// Content slices. System messages are skipped, they are carried separately
// in SystemInstruction.
func geminiContentsFromSession(session *schema.Conversation) ([]*geminiContent, error) {
	if session == nil {
		return nil, nil
	}

	contents := make([]*geminiContent, 0, len(*session))
	for _, msg := range *session {
		if msg.Role == schema.RoleSystem {
			continue
		}
		// Skip empty assistant messages, which can occur when the model
		// returns a tool call with no text
		if msg.Role == schema.RoleAssistant && len(msg.Content) == 0 {
			continue
		}
		c, err := geminiContentFromMessage(msg)
		if err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, nil
}

// geminiContentFromMessage converts a single schema.Message to gemini wire
// Content, mapping the assistant role to "model"
func geminiContentFromMessage(msg *schema.Message) (*geminiContent, error) {
	parts := make([]*geminiPart, 0, len(msg.Content))
	for i := range msg.Content {
		block := &msg.Content[i]

		// Text content
		if block.Text != nil {
			parts = append(parts, &geminiPart{Text: *block.Text})
			continue
		}

		// Tool call (function call from the model)
		if block.ToolCall != nil {
			args := make(map[string]any)
			if len(block.ToolCall.Input) > 0 {
				if err := json.Unmarshal(block.ToolCall.Input, &args); err != nil {
					return nil, weather.ErrInternalServerError.Withf("unmarshal tool call args: %v", err)
				}
			}
			parts = append(parts, geminiNewFunctionCallPart(block.ToolCall.Name, args))
			continue
		}

		// Tool result (function response from the user)
		if block.ToolResult != nil {
			if p := geminiPartFromToolResult(block.ToolResult); p != nil {
				parts = append(parts, p)
			}
			continue
		}
	}

	role := msg.Role
	if role == schema.RoleAssistant {
		role = "model"
	}

	return &geminiContent{
		Parts: parts,
		Role:  role,
	}, nil
}

// geminiPartFromToolResult converts a schema.ToolResult to a gemini wire
// FunctionResponse Part
func geminiPartFromToolResult(tr *schema.ToolResult) *geminiPart {
	name := tr.Name
	if name == "" {
		name = tr.ID
	}
	if name == "" {
		return nil
	}

	response := make(map[string]any)
	if len(tr.Content) > 0 {
		var content any
		if err := json.Unmarshal(tr.Content, &content); err != nil {
			// If the content is not valid JSON, pass it as a raw string
			response["output"] = string(tr.Content)
		} else {
			response["output"] = content
		}
	}
	if tr.IsError {
		response["error"] = true
	}

	return geminiNewFunctionResponsePart(name, response)
}

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// geminiFunctionDeclsFromDefinitions converts tool definitions to gemini
// wire FunctionDeclaration values, using ParametersJsonSchema
func geminiFunctionDeclsFromDefinitions(defs []schema.ToolDefinition) []*geminiFunctionDeclaration {
	decls := make([]*geminiFunctionDeclaration, 0, len(defs))
	for _, def := range defs {
		decl := &geminiFunctionDeclaration{
			Name:        def.Name,
			Description: def.Description,
		}

		// Convert the jsonschema.Schema to map[string]any via JSON round-trip
		if def.InputSchema != nil {
			if data, err := json.Marshal(def.InputSchema); err == nil {
				var m map[string]any
				if err := json.Unmarshal(data, &m); err == nil {
					decl.ParametersJSONSchema = m
				}
			}
		}

		decls = append(decls, decl)
	}
	return decls
}

///////////////////////////////////////////////////////////////////////////////
// GEMINI WIRE FORMAT -> MESSAGE (INBOUND)

// messageFromGeminiResponse converts a gemini wire GenerateContentResponse
// to a schema.Message. Returns an empty message if the response has no
// candidates.
func messageFromGeminiResponse(response *geminiGenerateResponse) (*schema.Message, error) {
	if response == nil || len(response.Candidates) == 0 {
		return &schema.Message{}, nil
	}

	candidate := response.Candidates[0]
	if candidate.Content == nil {
		return &schema.Message{}, nil
	}

	// Convert parts to content blocks
	content := make([]schema.ContentBlock, 0, len(candidate.Content.Parts))
	for _, part := range candidate.Content.Parts {
		content = append(content, blockFromGeminiPart(part))
	}

	// Role mapping: "model" -> "assistant"
	role := candidate.Content.Role
	if role == "model" {
		role = schema.RoleAssistant
	}

	// Determine result type, upgrading to ResultToolCall when the model
	// requested a function call
	result := resultFromGeminiFinishReason(candidate.FinishReason)
	for _, block := range content {
		if block.ToolCall != nil {
			result = schema.ResultToolCall
			break
		}
	}

	return &schema.Message{
		Role:    role,
		Content: content,
		Result:  result,
	}, nil
}

// blockFromGeminiPart converts a gemini wire Part to a schema.ContentBlock.
// Gemini does not supply function call identifiers, so one is synthesized
// to correlate the call with its result.
func blockFromGeminiPart(part *geminiPart) schema.ContentBlock {
	// Function call -> ToolCall
	if part.FunctionCall != nil {
		var input json.RawMessage
		if part.FunctionCall.Args != nil {
			if data, err := json.Marshal(part.FunctionCall.Args); err == nil {
				input = data
			}
		}
		return schema.ContentBlock{
			ToolCall: &schema.ToolCall{
				ID:    uuid.New().String(),
				Name:  part.FunctionCall.Name,
				Input: input,
			},
		}
	}

	// Function response -> ToolResult
	if part.FunctionResponse != nil {
		raw, err := json.Marshal(part.FunctionResponse.Response)
		if err != nil {
			raw = []byte("{}")
		}
		return schema.ContentBlock{
			ToolResult: &schema.ToolResult{
				ID:      uuid.New().String(),
				Name:    part.FunctionResponse.Name,
				Content: raw,
			},
		}
	}

	// Text, or an unknown part type as empty text
	return schema.ContentBlock{
		Text: &part.Text,
	}
}

///////////////////////////////////////////////////////////////////////////////
// FINISH REASON -> RESULT TYPE

// resultFromGeminiFinishReason maps a Gemini REST API finish reason string
// to a schema.ResultType
func resultFromGeminiFinishReason(reason string) schema.ResultType {
	switch reason {
	case geminiFinishReasonStop:
		return schema.ResultStop
	case geminiFinishReasonMaxTokens:
		return schema.ResultMaxTokens
	case geminiFinishReasonSafety, geminiFinishReasonRecitation,
		geminiFinishReasonBlocklist, geminiFinishReasonProhibitedContent,
		geminiFinishReasonSPII:
		return schema.ResultBlocked
	default:
		return schema.ResultOther
	}
}
