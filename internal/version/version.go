// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - HTTP API, config file, alignment search over sight-lines
// 0.2.0 - Long-term precession, catalog reprojection, transit and dawn solvers
// 0.1.0 - Initial release: TUI sky view, proleptic calendar, sidereal time
