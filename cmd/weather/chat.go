package main

import (
	"errors"
	"io"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	chat "github.com/mutablelogic/go-weather/pkg/chat"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Text string `arg:"" optional:"" help:"Ask a single question instead of starting an interactive session"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCmd) Run(globals *Globals) error {
	agent, err := globals.Agent()
	if err != nil {
		return err
	}

	session := schema.Conversation{}

	// One-shot question
	if cmd.Text != "" {
		return chatTurn(globals, agent, &session, cmd.Text)
	}

	// Interactive session, until end of input
	for {
		input, err := globals.term.ReadLine(agent.Profile().Name + "> ")
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if input == "" {
			continue
		}
		if err := chatTurn(globals, agent, &session, input); err != nil {
			return err
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func chatTurn(globals *Globals, agent *chat.Agent, session *schema.Conversation, text string) error {
	result, usage, err := agent.Chat(globals.ctx, session, text)
	switch {
	case errors.Is(err, weather.ErrMaxIterations):
		globals.term.Println("Giving up after too many tool calls. Try rephrasing the question.")
		return nil
	case err != nil:
		return err
	}

	globals.term.RenderMarkdown(result.Text())
	if globals.Verbose && usage != nil {
		globals.term.Printf("tokens: %d in, %d out\n", usage.InputTokens, usage.OutputTokens)
	}
	return nil
}
