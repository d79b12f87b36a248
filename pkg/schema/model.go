package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Represents an LLM model
type Model struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	OwnedBy     string         `json:"owned_by,omitempty"`
	Meta        map[string]any `json:"meta,omitzero"` // Provider-specific metadata
}

// Usage represents token usage for a generation
type Usage struct {
	InputTokens  uint `json:"input_tokens"`
	OutputTokens uint `json:"output_tokens"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return types.Stringify(m)
}

func (u Usage) String() string {
	return types.Stringify(u)
}
