package app

import (
	"github.com/sirupsen/logrus"

	"pwgen/internal/password"
	"pwgen/internal/random"
	"pwgen/internal/util/memzero"
)

// App bundles the generator and logger for the CLI.
type App struct {
	Config    Config
	Generator *password.Generator
	Log       *logrus.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config, log *logrus.Logger) *App {
	if log == nil {
		log = logrus.New()
	}

	var src random.Source
	if cfg.Seed != "" {
		seed := random.SeedFromPhrase(cfg.Seed)
		src = random.Locked(random.NewSeeded(seed))
		memzero.ZeroSeed(&seed)
		log.Warn("using seeded source; output is reproducible and must not be used as a credential")
	} else {
		src = random.Default()
	}

	return &App{
		Config:    cfg,
		Generator: password.New(src),
		Log:       log,
	}
}

// Passwords generates cfg.Count passwords of cfg.Length characters.
func (a *App) Passwords() ([]string, error) {
	count := a.Config.Count
	if count < 1 {
		count = 1
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := a.Generator.Generate(a.Config.Length)
		if err != nil {
			return nil, err
		}
		if a.Config.Verbose {
			if err := password.Validate(pw); err != nil {
				return nil, err
			}
		}
		a.Log.WithFields(logrus.Fields{"index": i, "length": len(pw)}).Debug("generated password")
		out = append(out, pw)
	}
	return out, nil
}
