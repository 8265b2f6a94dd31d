package cli

import (
	"fmt"

	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
	"github.com/AntonioJCosta/drills/internal/core/ports"
	"github.com/spf13/cobra"
)

// Options carries the resolved settings a DrillService is built from.
type Options struct {
	Method      drill.Method
	RecordsFile string
	LogLevel    string
}

// ServiceFactory builds the drill service once flags and settings are resolved.
type ServiceFactory func(opts Options) (ports.DrillService, error)

// app holds the service shared by every subcommand of one invocation.
type app struct {
	service ports.DrillService
}

func NewRootCommand(
	version string,
	settingsProvider ports.SettingsProvider,
	newService ServiceFactory,
) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "drills",
		Short: "drills runs small array and record exercises.",
		Long: `drills runs a set of small array and record exercises from the terminal:
linear search, second largest, accumulate, pair sum, digit search,
boomerang counting and record grouping.

Pass negative numbers after "--" so they are not read as flags,
for example: drills boomerang -- 2 -2 2`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if newService == nil {
				return fmt.Errorf("drill service factory not initialized for command %s", cmd.Name())
			}
			opts, err := resolveOptions(cmd, settingsProvider)
			if err != nil {
				return err
			}
			svc, err := newService(opts)
			if err != nil {
				return fmt.Errorf("could not initialize drill service: %w", err)
			}
			a.service = svc
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("method", "m", "", `Implementation variant: "fast" or "reference" (default from settings, else fast).`)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")

	rootCmd.AddCommand(NewFindCommand(a))
	rootCmd.AddCommand(NewSecondCommand(a))
	rootCmd.AddCommand(NewSumCommand(a))
	rootCmd.AddCommand(NewPairSumCommand(a))
	rootCmd.AddCommand(NewDigitCommand(a))
	rootCmd.AddCommand(NewBoomerangCommand(a))
	rootCmd.AddCommand(NewGroupCommand(a))
	rootCmd.AddCommand(NewDemoCommand(a))

	return rootCmd
}

// resolveOptions merges settings file values with command flags.
// Flags win over the file whenever they are set to a non-zero value.
func resolveOptions(cmd *cobra.Command, settingsProvider ports.SettingsProvider) (Options, error) {
	var s ports.Settings
	if settingsProvider != nil {
		loaded, err := settingsProvider.GetSettings()
		if err != nil {
			return Options{}, fmt.Errorf("could not load settings: %w", err)
		}
		s = loaded
	}

	methodStr := s.Method
	if flagMethod, _ := cmd.Flags().GetString("method"); flagMethod != "" {
		methodStr = flagMethod
	}
	method, err := drill.ParseMethod(methodStr)
	if err != nil {
		return Options{}, err
	}

	logLevel := s.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}

	recordsFile := s.RecordsFile
	if cmd.Flags().Lookup("file") != nil {
		if flagFile, _ := cmd.Flags().GetString("file"); flagFile != "" {
			recordsFile = flagFile
		}
	}

	return Options{Method: method, RecordsFile: recordsFile, LogLevel: logLevel}, nil
}
