package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/movies"
)

// runInteractive asks for two names, resolves them and prints the chain.
func (a *app) runInteractive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	st := a.data.Stats()
	fmt.Fprintf(out, "Data loaded. Nodes: %d people, %d movies\n", st.People, st.Movies)

	p := newPrompter(cmd.InOrStdin(), out)
	sourceID, err := a.promptPerson(p, "source")
	if err != nil {
		return err
	}
	targetID, err := a.promptPerson(p, "target")
	if err != nil {
		return err
	}

	chain, err := a.finder.Connect(cmd.Context(), sourceID, targetID)
	if err != nil {
		return err
	}
	return render(out, "text", chain)
}

// promptPerson reads the name for role and resolves it, asking which person
// is meant when the name is shared. A closed input is returned as errNoInput.
func (a *app) promptPerson(p *prompter, role string) (string, error) {
	name, err := p.ask(fmt.Sprintf("Name of %s actor: ", role))
	if err != nil {
		return "", err
	}
	id, err := a.data.Resolve(name, p.choose)
	if errors.Is(err, errNoInput) {
		return "", fmt.Errorf("%w: no choice made for %q", movies.ErrAmbiguousName, name)
	}
	if err != nil {
		return "", fmt.Errorf("%s person not found: %w", role, err)
	}
	return id, nil
}
