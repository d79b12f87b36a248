package main

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListModelsCmd struct{}

type ListToolsCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListModelsCmd) Run(globals *Globals) error {
	generator, err := globals.Generator()
	if err != nil {
		return err
	}

	models, err := generator.ListModels(globals.ctx)
	if err != nil {
		return err
	}
	for _, model := range models {
		globals.term.Printf("%-40s %s\n", model.Name, model.Description)
	}
	return nil
}

func (cmd *ListToolsCmd) Run(globals *Globals) error {
	for _, t := range globals.toolkit.Tools() {
		globals.term.Printf("%-20s %s\n", t.Name(), t.Description())
	}
	return nil
}
