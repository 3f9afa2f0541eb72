package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/paleosky/paleosky/internal/astro"
)

// newTransitCmd creates the transit command: the midnight-nearest meridian
// crossing of a target in the configured year.
func newTransitCmd(opts *rootOpts) *cobra.Command {
	var raDeg, decDeg string

	cmd := &cobra.Command{
		Use:   "transit [star]",
		Short: "Find when a star transits the meridian closest to local midnight",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.load(c)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			target, name, err := resolveTarget(cat, raDeg, decDeg, args)
			if err != nil {
				return err
			}

			info := cfg.SiteInfo()
			prog := newProgress(loggerFromContext(c.Context()))
			doy, hour := astro.BestTransitTime(target, cfg.Year, info.Longitude*math.Pi/180)
			prog.done(fmt.Sprintf("Scanned year %d", cfg.Year))

			month, day := astro.MonthDayFromDayOfYear(cfg.Year, doy)
			fmt.Fprintf(c.OutOrStdout(),
				"%s transits nearest local midnight at %s on day %d (%02d-%02d), %05.2fh UTC, year %d\n",
				name, info.Name, doy, month, day, hour, cfg.Year)
			return nil
		},
	}

	cmd.Flags().StringVar(&raDeg, "ra", "", "J2000 right ascension in degrees")
	cmd.Flags().StringVar(&decDeg, "dec", "", "J2000 declination in degrees")
	return cmd
}
