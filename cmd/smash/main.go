// Package main is the entry point of the smash interpreter. It parses the
// process flags, loads the configuration and runs the interactive loop.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"smash/internal/builtin"
	"smash/internal/config"
	"smash/internal/log"
	"smash/internal/smash"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the smash command. Flags only configure the
// process; interpreter commands are read from standard input.
func newRootCommand() *cobra.Command {

	v := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:          "smash",
		Short:        "A minimal interactive command interpreter",
		Long:         "smash reads one command per line: help, quit, copy, list and run.",
		Version:      builtin.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {

			cfg, err := config.Load(v, configPath)
			log.Setup(cfg.Log.Level, os.Stderr)
			if err != nil {
				log.Warn("using default configuration", "error", err)
			}

			shell, err := smash.New(smash.Options{Config: cfg})
			if err != nil {
				return err
			}

			return shell.Run()

		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file (default: ./smash.* or ~/.config/smash/smash.*)")
	cmd.Flags().String("log-level", "warn", "diagnostic log level: debug, info, warn or error")
	bindFlags(v, cmd.Flags())

	return cmd

}

// bindFlags makes flag values override the matching config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
}
