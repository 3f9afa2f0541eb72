package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/paleosky/paleosky/internal/astro"
)

// newDawnCmd creates the dawn command: the civil dawn hour for the
// configured day and site.
func newDawnCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "dawn",
		Short: "Compute the civil dawn hour for the configured day",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.load(c)
			if err != nil {
				return err
			}

			info := cfg.SiteInfo()
			hour := astro.CivilDawnHour(cfg.Year, cfg.Day, info.Latitude, info.Longitude)
			month, day := astro.MonthDayFromDayOfYear(cfg.Year, cfg.Day)

			h := int(hour)
			m := int(math.Round((hour - float64(h)) * 60))
			if m == 60 {
				h, m = h+1, 0
			}
			fmt.Fprintf(c.OutOrStdout(),
				"civil dawn at %s, year %d, %02d-%02d: %02d:%02d UTC (sun at %.1f°)\n",
				info.Name, cfg.Year, month, day, h, m, astro.CivilDawnAltDeg)
			return nil
		},
	}
}
