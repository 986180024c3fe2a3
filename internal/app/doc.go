// Package app wires application dependencies for the CLI.
//
// It builds the random source and password generator from Config and
// exposes them via App for commands to use.
package app
