// Package cli provides shared helpers for the agie command-line
// interface: step reporting for long-running runs, output formatting,
// signal handling, and mapping of domain errors to actionable hints.
package cli
