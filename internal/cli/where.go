package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paleosky/paleosky/internal/astro"
	"github.com/paleosky/paleosky/internal/catalog"
)

// resolveTarget maps a star name or an explicit "ra,dec" degree pair to a
// J2000 target.
func resolveTarget(cat *catalog.Catalog, raDeg, decDeg string, args []string) (astro.Target, string, error) {
	if len(args) == 1 {
		star, ok := cat.StarByName(args[0])
		if !ok {
			return astro.Target{}, "", fmt.Errorf("unknown star %q", args[0])
		}
		return astro.Target{RARad: star.RARad, DecRad: star.DecRad}, star.Name, nil
	}

	if raDeg == "" || decDeg == "" {
		return astro.Target{}, "", fmt.Errorf("a star name or --ra and --dec are required")
	}
	ra, err := strconv.ParseFloat(raDeg, 64)
	if err != nil {
		return astro.Target{}, "", fmt.Errorf("invalid --ra: %w", err)
	}
	dec, err := strconv.ParseFloat(decDeg, 64)
	if err != nil {
		return astro.Target{}, "", fmt.Errorf("invalid --dec: %w", err)
	}
	if dec < -90 || dec > 90 {
		return astro.Target{}, "", fmt.Errorf("--dec %v out of range [-90, 90]", dec)
	}

	t := astro.Target{
		RARad:  ra * math.Pi / 180,
		DecRad: dec * math.Pi / 180,
	}
	return t, fmt.Sprintf("ra=%s dec=%s", raDeg, decDeg), nil
}

// newWhereCmd creates the where command: one target reduced to horizontal
// coordinates at the configured site and time.
func newWhereCmd(opts *rootOpts) *cobra.Command {
	var raDeg, decDeg string

	cmd := &cobra.Command{
		Use:   "where [star]",
		Short: "Show where a star stands in the sky at the configured moment",
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
			ts := timeSpec(cfg)
			jd := ts.JulianDate()
			hd := astro.ToHorizontalJ2000(target, jd, astro.JulianEpoch(jd),
				info.Latitude*math.Pi/180, info.Longitude*math.Pi/180)

			month, day := astro.MonthDayFromDayOfYear(ts.Year, ts.DayOfYear)
			fmt.Fprintf(c.OutOrStdout(),
				"%s at %s, year %d, %02d-%02d, %05.2fh UTC:\n  azimuth  %8.3f°\n  altitude %8.3f°\n",
				name, info.Name, ts.Year, month, day, ts.HourUTC, hd.AzDeg(), hd.AltDeg())
			return nil
		},
	}

	cmd.Flags().StringVar(&raDeg, "ra", "", "J2000 right ascension in degrees")
	cmd.Flags().StringVar(&decDeg, "dec", "", "J2000 declination in degrees")
	return cmd
}
