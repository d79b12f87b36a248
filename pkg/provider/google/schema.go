package google

///////////////////////////////////////////////////////////////////////////////
// TYPES - Gemini REST API wire format
//
// Reference: https://ai.google.dev/api/generate-content
//            https://ai.google.dev/api/models

///////////////////////////////////////////////////////////////////////////////
// CONTENT & PARTS

// geminiContent is the base structured datatype containing multi-part content
// of a message turn. Maps to the REST API "Content" resource.
type geminiContent struct {
	Parts []*geminiPart `json:"parts"`
	Role  string        `json:"role,omitempty"`
}

// geminiPart is a single unit within a Content message. Exactly one of the
// fields should be set.
type geminiPart struct {
	Text             string                `json:"text,omitempty"`
	FunctionCall     *geminiFunctionCall   `json:"functionCall,omitempty"`
	FunctionResponse *geminiFunctionResult `json:"functionResponse,omitempty"`
}

// geminiFunctionCall is the model's request to invoke a tool
type geminiFunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// geminiFunctionResult is the client-supplied result of a tool invocation
type geminiFunctionResult struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

///////////////////////////////////////////////////////////////////////////////
// GENERATE CONTENT — REQUEST

// geminiGenerateRequest is the request body for
// POST /v1beta/{model=models/*}:generateContent
type geminiGenerateRequest struct {
	Contents          []*geminiContent       `json:"contents"`
	Tools             []*geminiTool          `json:"tools,omitempty"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig,omitzero"`
}

// geminiGenerationConfig holds the generation parameters
type geminiGenerationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GENERATE CONTENT — RESPONSE

// geminiGenerateResponse is the response from generateContent
type geminiGenerateResponse struct {
	Candidates     []*geminiCandidate    `json:"candidates,omitempty"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *geminiUsageMetadata  `json:"usageMetadata,omitempty"`
	ModelVersion   string                `json:"modelVersion,omitempty"`
	ResponseID     string                `json:"responseId,omitempty"`
}

// geminiCandidate is a single response candidate
type geminiCandidate struct {
	Content      *geminiContent `json:"content,omitempty"`
	FinishReason string         `json:"finishReason,omitempty"`
	Index        int            `json:"index,omitempty"`
}

// geminiPromptFeedback reports whether the prompt was blocked
type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// geminiUsageMetadata reports token counts for a generation request
type geminiUsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount,omitempty"`
	CandidatesTokenCount int `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount      int `json:"totalTokenCount,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// TOOLS & FUNCTION CALLING

// geminiTool is a set of function declarations the model may use
type geminiTool struct {
	FunctionDeclarations []*geminiFunctionDeclaration `json:"functionDeclarations,omitempty"`
}

// geminiFunctionDeclaration describes a callable function
type geminiFunctionDeclaration struct {
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	ParametersJSONSchema map[string]any `json:"parametersJsonSchema,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// FINISH REASON CONSTANTS

const (
	geminiFinishReasonStop                  = "STOP"
	geminiFinishReasonMaxTokens             = "MAX_TOKENS"
	geminiFinishReasonSafety                = "SAFETY"
	geminiFinishReasonRecitation            = "RECITATION"
	geminiFinishReasonBlocklist             = "BLOCKLIST"
	geminiFinishReasonProhibitedContent     = "PROHIBITED_CONTENT"
	geminiFinishReasonSPII                  = "SPII"
	geminiFinishReasonMalformedFunctionCall = "MALFORMED_FUNCTION_CALL"
)

///////////////////////////////////////////////////////////////////////////////
// MODELS — GET & LIST

// geminiModel is the "Model" resource returned by GET /v1beta/models/{model}
// and in the list response.
type geminiModel struct {
	Name                       string   `json:"name"` // "models/{model}"
	Version                    string   `json:"version,omitempty"`
	DisplayName                string   `json:"displayName,omitempty"`
	Description                string   `json:"description,omitempty"`
	InputTokenLimit            int      `json:"inputTokenLimit,omitempty"`
	OutputTokenLimit           int      `json:"outputTokenLimit,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty"`
}

// geminiListModelsResponse is returned by GET /v1beta/models
type geminiListModelsResponse struct {
	Models        []*geminiModel `json:"models"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// geminiNewTextContent creates a Content with a single text Part
func geminiNewTextContent(role, text string) *geminiContent {
	return &geminiContent{
		Role: role,
		Parts: []*geminiPart{
			{Text: text},
		},
	}
}

// geminiNewFunctionCallPart creates a Part for a function call
func geminiNewFunctionCallPart(name string, args map[string]any) *geminiPart {
	return &geminiPart{
		FunctionCall: &geminiFunctionCall{
			Name: name,
			Args: args,
		},
	}
}

// geminiNewFunctionResponsePart creates a Part for a function response
func geminiNewFunctionResponsePart(name string, response map[string]any) *geminiPart {
	return &geminiPart{
		FunctionResponse: &geminiFunctionResult{
			Name:     name,
			Response: response,
		},
	}
}
