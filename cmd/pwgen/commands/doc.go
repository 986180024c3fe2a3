// Package commands defines the pwgen CLI.
//
// Flags
//
//   - -l, --length   password length (default 9, minimum 3)
//   - -c, --count    number of passwords, one per line
//   - --seed         phrase for reproducible output
//   - -v, --verbose  debug logging to stderr
//
// # Implementation
//
// The root command collects flags into app.Config and builds the app before
// running, so the handler only generates and prints. Errors are returned to
// Execute and reported by cobra; main turns them into exit status 1.
package commands
