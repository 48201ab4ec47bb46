// Package main hosts the collviz CLI entrypoint and command graph.
//
// The Cobra command tree lets an operator locate, scaffold, validate and
// inspect the plugin's settings file, run readiness checks against the game
// directory, and watch the file while edits are applied. Settings path
// resolution and loading happen once per invocation in the command context
// and are handed to subcommands from there.
package main
