package app

// Config holds runtime options collected from the command line.
type Config struct {
	Length  int    // password length
	Count   int    // passwords to emit; values below 1 mean 1
	Seed    string // optional phrase for reproducible output
	Verbose bool
}
