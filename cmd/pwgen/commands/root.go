package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pwgen/internal/app"
	"pwgen/internal/password"
)

// NewRootCmd returns the pwgen command with its own flag state.
func NewRootCmd() *cobra.Command {
	var (
		cfg    app.Config
		appCtx *app.App
	)

	root := &cobra.Command{
		Use:           "pwgen",
		Short:         "Random Password Generator",
		Long:          "Random Password Generator\n\nPrints passwords containing one digit, one special character and uppercase letters.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			log.SetLevel(logrus.WarnLevel)
			if cfg.Verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			appCtx = app.New(cfg, log)
			log.WithFields(logrus.Fields{"length": cfg.Length, "count": cfg.Count}).Debug("starting")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pws, err := appCtx.Passwords()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, pw := range pws {
				if _, err := fmt.Fprintln(out, pw); err != nil {
					return fmt.Errorf("writing password: %w", err)
				}
			}
			return nil
		},
	}

	f := root.Flags()
	f.IntVarP(&cfg.Length, "length", "l", password.DefaultLength, "the integer length of the password")
	f.IntVarP(&cfg.Count, "count", "c", 1, "number of passwords to generate")
	f.StringVar(&cfg.Seed, "seed", "", "phrase for reproducible output (testing only)")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging to stderr")

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
