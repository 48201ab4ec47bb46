// Package logging assembles the slog loggers used by collviz.
//
// It owns the console and JSON handlers, output routing to stdout, stderr and
// files, and the mapping from the plugin's numeric logLevel option onto slog
// levels. Shared attribute keys live here so every component emits the same
// field names.
package logging
