// Package main hosts the audioswitch CLI entrypoint and command graph.
//
// The root command runs one batch: it resolves the audio track (explicit
// file, selection from the audio directory, or a freshly combined track) and
// replaces the audio of every video in the video directory with it.
// Subcommands cover configuration scaffolding, dependency checks, the local
// run history, and a watch mode that processes videos as they arrive.
//
// Flags that were explicitly set override the configuration file; everything
// else comes from the file or the built-in defaults.
package main
