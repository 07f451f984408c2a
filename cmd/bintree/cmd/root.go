// Package cmd implements the bintree command line.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Flags can also be set with environment variables named
	// BINTREE_<FLAG>, with dashes replaced by underscores.
	envPrefix = "BINTREE"

	flagNameLogLevel  = "log-level"
	flagNameLogFormat = "log-format"
)

type bintreeApp struct {
	baseCmd *cobra.Command
	logger  zerolog.Logger
}

// New creates the bintree application with all of its subcommands.
func New() *bintreeApp {
	a := &bintreeApp{logger: zerolog.Nop()}

	a.baseCmd = &cobra.Command{
		Use:           "bintree",
		Short:         "Build, print and check binary trees",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd, newViper()); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			if err := a.initLogger(cmd); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
	}
	a.baseCmd.PersistentFlags().String(flagNameLogLevel, "info", "logging level, one of: debug, info, warn, error")
	a.baseCmd.PersistentFlags().String(flagNameLogFormat, "console", "log format, one of: console, json")

	a.baseCmd.AddCommand(newRandomCmd(a))
	a.baseCmd.AddCommand(newBuildCmd(a))
	a.baseCmd.AddCommand(newCheckCmd(a))

	return a
}

// Execute runs the application.
func (a *bintreeApp) Execute(ctx context.Context) error {
	return a.baseCmd.ExecuteContext(ctx)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// bindFlags applies environment values to every flag of cmd that was
// not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindFlagErr != nil {
			return
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to BINTREE_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = fmt.Errorf("binding env to flag %q: %w", f.Name, err)
				return
			}
		}

		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindFlagErr = fmt.Errorf("setting flag %q value: %w", f.Name, err)
				return
			}
		}
	})

	return bindFlagErr
}

func (a *bintreeApp) initLogger(cmd *cobra.Command) error {
	levelName, err := cmd.Flags().GetString(flagNameLogLevel)
	if err != nil {
		return err
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString(flagNameLogFormat)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "console":
		a.logger = zerolog.New(zerolog.ConsoleWriter{
			Out:     cmd.ErrOrStderr(),
			NoColor: true,
		})
	case "json":
		a.logger = zerolog.New(cmd.ErrOrStderr())
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	a.logger = a.logger.Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()
	return nil
}
