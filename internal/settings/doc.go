// Package settings loads the collision visualiser's INI settings file into a
// typed Options value.
//
// The file lives under the host's runtime directory at
// Data/SKSE/Plugins/collviz_vr.ini and carries a single [Settings] section.
// Options are read in a fixed order and the load stops at the first option
// that is missing or malformed; callers either get a fully populated Options
// or an *Error describing the failing option and why it failed. Nothing is
// ever published half-read.
//
// Long-running callers hold options through a Holder, which reloads on
// demand or when the file changes and keeps the previous value when a reload
// fails.
package settings
