// Package preflight reports whether the settings file can be found and read
// before anything depends on it.
//
// The CLI "collviz check" command prints each Result; the checks stop short
// of changing anything on disk.
package preflight
