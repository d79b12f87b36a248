package weather

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACES

// Generator is a provider which can generate conversational responses,
// optionally calling declared tools along the way
type Generator interface {
	// Name returns the provider name
	Name() string

	// WithoutSession sends a single message and returns the response
	WithoutSession(ctx context.Context, model schema.Model, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error)

	// WithSession sends a message within a session, appending both the
	// message and the response to the session
	WithSession(ctx context.Context, model schema.Model, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error)

	// ListModels returns the models offered by the provider
	ListModels(ctx context.Context, opts ...opt.Opt) ([]schema.Model, error)

	// GetModel returns a model by name
	GetModel(ctx context.Context, name string, opts ...opt.Opt) (*schema.Model, error)
}
