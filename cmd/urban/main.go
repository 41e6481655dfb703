// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the urban CLI, which looks up a term
// on Urban Dictionary and prints the top definitions.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/urban-define/internal/lookup"
	"github.com/pdiddy/urban-define/internal/render"
	"github.com/pdiddy/urban-define/internal/urbandict"
	"github.com/pdiddy/urban-define/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the urban command. Configuration is read into v from
// the config file and URBAN_* environment variables; flags take precedence.
func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urban [flags] <search_term>",
		Short: "Get the definition of a word from Urban Dictionary",
		Long: `urban looks up a term on Urban Dictionary and prints the top definitions.

By default one definition is shown. Use --max_results/-M to show up to 10,
or --all/-A to show every definition the service returns. The two options
cannot be combined.`,
		Version:       version,
		Args:          exactTerm,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, v, args[0])
		},
	}
	cmd.SetVersionTemplate("urban {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	cmd.Flags().BoolP("all", "A", false, "Show all results.")
	cmd.Flags().IntP("max_results", "M", 0, "Show up to the max specified number of results (up to 10).")
	cmd.Flags().String("format", string(types.OutputText), "output format: text, json, or yaml")
	cmd.Flags().Bool("no-color", false, "disable colored status messages")
	cmd.Flags().String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.Flags().String("config", "", "config file (default: ./urban.yaml or ~/.config/urban/urban.yaml)")

	v.SetDefault("base_url", urbandict.DefaultBaseURL)
	v.SetDefault("timeout", 0)
	v.SetDefault("user_agent", "urban/"+version)
	_ = v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = v.BindPFlag("no_color", cmd.Flags().Lookup("no-color"))
	_ = v.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))

	return cmd
}

func exactTerm(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &usageError{msg: "expected exactly one search term: " + err.Error()}
	}
	return nil
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("urban")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "urban"))
		}
	}

	v.SetEnvPrefix("URBAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	render.SetColor(!v.GetBool("no_color"))
	NewLogger(v.GetString("log_level"), cmd.ErrOrStderr())
	return nil
}

// loadConfig assembles the lookup configuration from v and the display flags.
func loadConfig(cmd *cobra.Command, v *viper.Viper) types.LookupConfig {
	showAll, _ := cmd.Flags().GetBool("all")
	maxResults, _ := cmd.Flags().GetInt("max_results")

	return types.LookupConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration("timeout"),
			UserAgent: v.GetString("user_agent"),
		},
		BaseURL: v.GetString("base_url"),
		Display: types.DisplayOptions{
			ShowAll:    showAll,
			MaxResults: maxResults,
		},
		Format:   types.OutputFormat(strings.ToLower(v.GetString("format"))),
		NoColor:  v.GetBool("no_color"),
		LogLevel: v.GetString("log_level"),
	}
}

func runLookup(cmd *cobra.Command, v *viper.Viper, term string) error {
	cfg := loadConfig(cmd, v)

	if m := cfg.Display.MaxResults; m < 0 || m > types.MaxResultsLimit {
		return &usageError{msg: fmt.Sprintf("invalid value for --max_results/-M: %d is not in the range 0<=x<=%d", m, types.MaxResultsLimit)}
	}
	switch cfg.Format {
	case types.OutputText, types.OutputJSON, types.OutputYAML:
	default:
		return &usageError{msg: fmt.Sprintf("invalid value for --format: %q (want text, json, or yaml)", cfg.Format)}
	}

	client := urbandict.NewClient(cfg, nil)
	_, err := lookup.Run(cmd.Context(), client, lookup.Request{
		Term:    term,
		Display: cfg.Display,
		Format:  cfg.Format,
	}, cmd.OutOrStdout())
	return err
}

// execute runs the command with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(viper.New())
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		reportError(stderr, err)
		return exitCode(err)
	}
	return exitCodeSuccess
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
