package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/paleosky/paleosky/internal/sim"
	"github.com/paleosky/paleosky/internal/ui"
)

// newSkyCmd creates the sky command: the interactive TUI view.
func newSkyCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "sky",
		Short: "Open the interactive terminal sky view",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.load(c)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			scene := sim.NewScene(cfg.SiteInfo(), cat, timeSpec(cfg))
			model := ui.New(scene)

			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
