// Package logging configures structured logging for AGIE.
//
// The application logs through log/slog. This package builds the slog
// handler from configuration (level, format, source annotation) and
// installs it as the process-wide default, so every package can log
// with the plain slog top-level functions.
package logging
