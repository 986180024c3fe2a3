// Package random provides the uniform-random capability used by the password
// generator.
//
// Contents
//
//   - Source, the "pick one of N" and "shuffle" contract
//   - Default, the process-wide source backed by math/rand/v2
//   - NewSeeded and SeedFromPhrase, for reproducible ChaCha8 sources
//   - Locked, a mutex wrapper for sharing one source across goroutines
//
// # Notes
//
// None of these sources are suitable for security-grade secrets. Seeded
// sources exist so that output can be reproduced in tests and demos.
package random
