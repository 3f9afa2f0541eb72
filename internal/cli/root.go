// Package cli implements the paleosky command-line interface.
//
// Commands cover the interactive TUI sky view, the HTTP API server, and
// one-shot queries for star positions, transits, civil dawn, and alignment
// epoch searches. Logging uses charmbracelet/log and is passed through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/paleosky/paleosky/internal/astro"
	"github.com/paleosky/paleosky/internal/catalog"
	"github.com/paleosky/paleosky/internal/config"
	"github.com/paleosky/paleosky/internal/version"
)

var (
	commit string // git commit SHA
	date   string // build timestamp
)

// SetBuildInfo sets the build information displayed by --version. Called by
// the main package with values injected via ldflags.
func SetBuildInfo(c, d string) {
	commit = c
	date = d
}

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	configPath string
	site       string
	year       int
	day        int
	hour       float64
	stars      string
	segments   string
	verbose    bool
}

// load resolves the effective configuration: file values first, then any
// flag the user set explicitly on top.
func (o *rootOpts) load(cmd *cobra.Command) (config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if o.site != "" {
		cfg.Site = o.site
	}
	if cmd.Flags().Changed("year") {
		cfg.Year = o.year
	}
	if cmd.Flags().Changed("day") {
		cfg.Day = o.day
	}
	if cmd.Flags().Changed("hour") {
		cfg.Hour = o.hour
	}
	if o.stars != "" {
		cfg.Catalog.StarsPath = o.stars
	}
	if o.segments != "" {
		cfg.Catalog.SegmentsPath = o.segments
	}
	return cfg, nil
}

// loadCatalog builds the star catalog from the configured paths, or the
// embedded default when none are set.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.StarsPath == "" && cfg.Catalog.SegmentsPath == "" {
		return catalog.Default(), nil
	}

	cat := &catalog.Catalog{}
	def := catalog.Default()
	cat.Stars = def.Stars
	cat.Segments = def.Segments

	if cfg.Catalog.StarsPath != "" {
		data, err := os.ReadFile(cfg.Catalog.StarsPath)
		if err != nil {
			return nil, fmt.Errorf("read stars: %w", err)
		}
		stars, err := catalog.ParseStars(data)
		if err != nil {
			return nil, fmt.Errorf("parse stars: %w", err)
		}
		cat.Stars = stars
	}
	if cfg.Catalog.SegmentsPath != "" {
		data, err := os.ReadFile(cfg.Catalog.SegmentsPath)
		if err != nil {
			return nil, fmt.Errorf("read constellations: %w", err)
		}
		segments, err := catalog.ParseSegments(data)
		if err != nil {
			return nil, fmt.Errorf("parse constellations: %w", err)
		}
		cat.Segments = segments
	}
	return cat, nil
}

func timeSpec(cfg config.Config) astro.TimeSpec {
	return astro.TimeSpec{Year: cfg.Year, DayOfYear: cfg.Day, HourUTC: cfg.Hour}
}

// Execute runs the paleosky CLI and returns an error if any command fails.
func Execute() error {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "paleosky",
		Short:        "Paleosky renders ancient skies and searches for monument alignments",
		Long:         `Paleosky computes where the stars stood for any observer site at any point in the last tens of millennia, using long-term precession. It renders the sky in the terminal, serves it over HTTP, and searches calendar time for the epochs when monument sight-lines pointed at their stars.`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("paleosky %s\ncommit: %s\nbuilt: %s\n", version.Version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default: user config dir)")
	pf.StringVar(&opts.site, "site", "", "observer site: giza, stonehenge, karnak")
	pf.IntVar(&opts.year, "year", -2500, "astronomical year (0 = 1 BCE, -2500 = 2501 BCE)")
	pf.IntVar(&opts.day, "day", 100, "day of year, 1-366")
	pf.Float64Var(&opts.hour, "hour", 22, "UTC hour, [0, 24)")
	pf.StringVar(&opts.stars, "stars", "", "star catalog file (JSON), overrides embedded")
	pf.StringVar(&opts.segments, "constellations", "", "constellation segment file (JSON), overrides embedded")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSkyCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newWhereCmd(opts))
	root.AddCommand(newDawnCmd(opts))
	root.AddCommand(newTransitCmd(opts))
	root.AddCommand(newAlignCmd(opts))

	return root.ExecuteContext(context.Background())
}
