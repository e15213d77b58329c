// Package cli constructs the devscripts command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives shared by every subcommand.
package cli
