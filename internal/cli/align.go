package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paleosky/paleosky/internal/astro"
	"github.com/paleosky/paleosky/internal/sim"
)

// newAlignCmd creates the align command: the epoch descent search for one
// of the site's sight-lines.
func newAlignCmd(opts *rootOpts) *cobra.Command {
	var (
		minYear      int
		maxYear      int
		stepYears    int
		thresholdDeg float64
	)

	cmd := &cobra.Command{
		Use:   "align <sight-line>",
		Short: "Search calendar time for the year a sight-line points at its star",
		Long: `Search calendar time for the year in which a site's sight-line most
nearly points at its associated star. The search walks years in fixed
steps from the configured start year, following whichever neighbor
reduces the pointing error at that year's best transit time.

Examples:
  paleosky align queens-south --site giza --year -2500
  paleosky align kings-north --min-year -4000 --max-year 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.load(c)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			if minYear > maxYear {
				return fmt.Errorf("--min-year %d exceeds --max-year %d", minYear, maxYear)
			}

			searchOpts := astro.DefaultSearchOptions(cfg.Year, minYear, maxYear)
			if stepYears > 0 {
				searchOpts.StepYears = stepYears
			}
			if thresholdDeg > 0 {
				searchOpts.ThresholdDeg = thresholdDeg
			}

			scene := sim.NewScene(cfg.SiteInfo(), cat, timeSpec(cfg))
			prog := newProgress(loggerFromContext(c.Context()))
			res, err := scene.SearchAlignment(c.Context(), args[0], searchOpts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Searched %d candidate epochs", res.Iterations+1))

			fmt.Fprintf(c.OutOrStdout(),
				"%s at %s best aligns in year %d (error %.3f°, %d iterations)\n",
				args[0], cfg.SiteInfo().Name, res.Year, res.ErrorDeg, res.Iterations)
			return nil
		},
	}

	cmd.Flags().IntVar(&minYear, "min-year", -15000, "lower bound of the search range")
	cmd.Flags().IntVar(&maxYear, "max-year", 5000, "upper bound of the search range")
	cmd.Flags().IntVar(&stepYears, "step", 0, "search step in years (default 100)")
	cmd.Flags().Float64Var(&thresholdDeg, "threshold", 0, "stop early at this error in degrees (default 0.5)")
	return cmd
}
