package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/paleosky/paleosky/internal/catalog"
	"github.com/paleosky/paleosky/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"bogus", log.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerContextRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), l)
	if got := loggerFromContext(ctx); got != l {
		t.Error("logger not recovered from context")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("missing logger should fall back to default")
	}

	loggerFromContext(ctx).Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q, want debug message", buf.String())
	}
}

func TestResolveTargetByName(t *testing.T) {
	cat := catalog.Default()

	target, name, err := resolveTarget(cat, "", "", []string{"Sirius"})
	if err != nil {
		t.Fatalf("resolveTarget: %v", err)
	}
	if name != "Sirius" {
		t.Errorf("name = %q, want Sirius", name)
	}
	if target.DecRad >= 0 {
		t.Errorf("Sirius declination = %v, want negative", target.DecRad)
	}

	if _, _, err := resolveTarget(cat, "", "", []string{"Nibiru"}); err == nil {
		t.Error("unknown star should error")
	}
}

func TestResolveTargetByCoordinates(t *testing.T) {
	cat := catalog.Default()

	if _, _, err := resolveTarget(cat, "", "", nil); err == nil {
		t.Error("missing target should error")
	}
	if _, _, err := resolveTarget(cat, "abc", "0", nil); err == nil {
		t.Error("bad ra should error")
	}
	if _, _, err := resolveTarget(cat, "0", "95", nil); err == nil {
		t.Error("out-of-range dec should error")
	}

	target, _, err := resolveTarget(cat, "180", "-45", nil)
	if err != nil {
		t.Fatalf("resolveTarget: %v", err)
	}
	if target.RARad <= 3.14 || target.RARad >= 3.15 {
		t.Errorf("ra = %v rad, want about pi", target.RARad)
	}
}

func TestLoadCatalogExternalFiles(t *testing.T) {
	dir := t.TempDir()
	starsPath := filepath.Join(dir, "stars.json")
	if err := os.WriteFile(starsPath, []byte(`[[10, 20, 1.0]]`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Catalog.StarsPath = starsPath

	cat, err := loadCatalog(cfg)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if len(cat.Stars) != 1 {
		t.Errorf("got %d stars, want 1 from external file", len(cat.Stars))
	}
	// Segments stay embedded when only the stars path is set.
	if len(cat.Segments) == 0 {
		t.Error("embedded segments lost")
	}
}

func TestLoadCatalogDefault(t *testing.T) {
	cat, err := loadCatalog(config.Default())
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat != catalog.Default() {
		t.Error("empty paths should return the shared embedded catalog")
	}
}

func TestRootOptsFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("site = \"karnak\"\nyear = -3000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &rootOpts{configPath: path}
	cmd := &cobra.Command{}
	cmd.Flags().IntVar(&opts.year, "year", -2500, "")

	// Config only: file values win over built-in defaults.
	cfg, err := opts.load(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Site != "karnak" || cfg.Year != -3000 {
		t.Errorf("config not applied: %+v", cfg)
	}

	// Explicit flag wins over the file.
	if err := cmd.Flags().Set("year", "-1500"); err != nil {
		t.Fatal(err)
	}
	cfg, err = opts.load(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Year != -1500 {
		t.Errorf("flag override lost: year = %d, want -1500", cfg.Year)
	}
	if cfg.Site != "karnak" {
		t.Errorf("unrelated config value lost: site = %q", cfg.Site)
	}
}
