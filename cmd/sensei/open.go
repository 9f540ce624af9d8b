package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/sensei"
	"github.com/fwojciec/sensei/navigate"
)

// Run executes the open command.
func (c *OpenCmd) Run(deps *Dependencies) error {
	version := c.Version
	if c.Manifest {
		// Manifest failures only cost the version; the lookup goes on without it.
		v, err := deps.Versions.ReadVersion(sensei.NormalizeName(c.Name))
		switch {
		case err != nil:
			fmt.Fprintf(deps.Stderr, "warning: %s\n", sensei.ErrorMessage(err))
		case v != "":
			version = v
		}
	}

	q := sensei.NewQuery(sensei.Intent{
		Name:    c.Name,
		Version: version,
		Search:  c.Query,
		Local:   c.Local,
	})

	_, err := deps.Navigator.Navigate(deps.Ctx, q, func(event navigate.ProgressEvent) {
		switch event.Type {
		case navigate.ProgressBuilding:
			fmt.Fprintf(deps.Stderr, "Documentation for %s is not built yet, building it...\n", q.Source.Name)
		case navigate.ProgressRetrying:
			fmt.Fprintf(deps.Stderr, "Opening %s\n", event.URL)
		}
	})
	if err != nil {
		switch sensei.ErrorCode(err) {
		case sensei.EOPEN:
			fmt.Fprintln(deps.Stderr, "Seems like you've lost your way, 学生, try again.")
		case sensei.ENOTFOUND:
			if q.Source.Kind == sensei.SourceLocal {
				fmt.Fprintln(deps.Stderr, "The crate is not available locally.")
			}
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", sensei.ErrorMessage(err))
		return err
	}

	style := lipgloss.NewRenderer(deps.Stdout).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("2"))
	fmt.Fprintf(deps.Stdout, "\n%s\n", style.Render(deps.Banner.Render(q)))
	return nil
}
