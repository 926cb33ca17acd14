// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/lsdir/internal/config"
	"github.com/temirov/lsdir/internal/listing"
	"github.com/temirov/lsdir/internal/output"
	"github.com/temirov/lsdir/internal/types"
	"github.com/temirov/lsdir/internal/utils"
)

const (
	allFlagName          = "all"
	allFlagShorthand     = "a"
	formatFlagName       = "format"
	configFlagName       = "config"
	versionFlagName      = "version"
	versionTemplate      = utils.ApplicationName + " version: %s\n"
	rootUse              = utils.ApplicationName + " [-a|--all] [directory]"
	rootShortDescription = "list the entries of a directory"
	rootLongDescription  = `lsdir prints the names of the immediate children of a directory, one per line.
Entries whose name starts with a dot are hidden unless --all is given.
The directory defaults to the current directory.`
	rootUsageExample = `  # List the current directory
  lsdir

  # Include hidden entries of /etc
  lsdir -a /etc

  # Emit a JSON array instead of plain lines
  lsdir --format json ./cmd`

	allFlagDescription     = "include entries whose name starts with a dot"
	formatFlagDescription  = "output format (raw, json, xml)"
	configFlagDescription  = "configuration file with show_all and format defaults"
	versionFlagDescription = "display application version"

	maximumPositionalArguments = 1

	tooManyArgumentsFormat  = "too many arguments: expected at most %d directory, got %d"
	invalidFormatMessage    = "invalid format value '%s'"
	emptyPathMessage        = "directory argument is empty"
	loadConfigurationFormat = "loading configuration: %w"
	writeOutputFormat       = "writing output: %w"

	skippedEntryMessage = "Error reading entry"
	directoryFieldName  = "directory"
	entryFieldName      = "entry"
)

// Configuration is the result of parsing one invocation. It is built once and not modified afterwards.
type Configuration struct {
	Path    string
	ShowAll bool
	Format  string
}

// ArgumentError reports command line arguments that could not be parsed.
// No directory is accessed once it has been returned.
type ArgumentError struct {
	Err error
}

func (argumentError *ArgumentError) Error() string {
	return argumentError.Err.Error()
}

func (argumentError *ArgumentError) Unwrap() error {
	return argumentError.Err
}

// Environment carries the process state the command depends on.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
	// WorkingDirectory resolves relative directories and a relative --config path.
	WorkingDirectory string
}

func (environment Environment) logger() *zap.Logger {
	if environment.Logger == nil {
		return zap.NewNop()
	}
	return environment.Logger
}

// Execute parses arguments and lists the selected directory.
func Execute(arguments []string, environment Environment) error {
	rootCommand := createRootCommand(environment, func(configuration Configuration) error {
		return runList(configuration, environment)
	})
	return executeCommand(rootCommand, arguments, environment)
}

// ErrNothingToList is returned by ParseArguments when the arguments only request help or version output.
var ErrNothingToList = errors.New("no directory to list")

// ParseArguments builds the Configuration for arguments without touching the listed directory.
// Informational flags such as --version or --help are answered on the environment writers and yield ErrNothingToList.
func ParseArguments(arguments []string, environment Environment) (Configuration, error) {
	var parsed Configuration
	listingRequested := false
	rootCommand := createRootCommand(environment, func(configuration Configuration) error {
		parsed = configuration
		listingRequested = true
		return nil
	})
	if err := executeCommand(rootCommand, arguments, environment); err != nil {
		return Configuration{}, err
	}
	if !listingRequested {
		return Configuration{}, ErrNothingToList
	}
	return parsed, nil
}

func executeCommand(rootCommand *cobra.Command, arguments []string, environment Environment) error {
	if arguments == nil {
		arguments = []string{}
	}
	rootCommand.SetArgs(arguments)
	if environment.Stdout != nil {
		rootCommand.SetOut(environment.Stdout)
	}
	if environment.Stderr != nil {
		rootCommand.SetErr(environment.Stderr)
	}
	executionError := rootCommand.Execute()
	var argumentError *ArgumentError
	if errors.As(executionError, &argumentError) {
		fmt.Fprint(rootCommand.ErrOrStderr(), rootCommand.UsageString())
	}
	return executionError
}

// createRootCommand builds the root Cobra command. run receives the parsed configuration.
func createRootCommand(environment Environment, run func(Configuration) error) *cobra.Command {
	var showAll bool
	var outputFormat string = types.FormatRaw
	var configurationPath string
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          validatePositionalArguments,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			flagFormat := ""
			if command.Flags().Changed(formatFlagName) {
				flagFormat = strings.ToLower(strings.TrimSpace(outputFormat))
				if !types.IsSupportedFormat(flagFormat) {
					return &ArgumentError{Err: fmt.Errorf(invalidFormatMessage, outputFormat)}
				}
			}

			applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: environment.WorkingDirectory,
				ExplicitFilePath: configurationPath,
			})
			if loadError != nil {
				return fmt.Errorf(loadConfigurationFormat, loadError)
			}

			configuration := Configuration{
				Path:    types.DefaultPath,
				ShowAll: applicationConfiguration.ShowAllOrDefault(false),
				Format:  applicationConfiguration.FormatOrDefault(types.FormatRaw),
			}
			if len(arguments) == maximumPositionalArguments {
				configuration.Path = arguments[0]
			}
			if command.Flags().Changed(allFlagName) {
				configuration.ShowAll = showAll
			}
			if flagFormat != "" {
				configuration.Format = flagFormat
			}
			return run(configuration)
		},
		// Subcommand names would shadow directories of the same name.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	rootCommand.SetFlagErrorFunc(func(command *cobra.Command, flagError error) error {
		return &ArgumentError{Err: flagError}
	})

	registerBooleanFlag(rootCommand.Flags(), &showAll, allFlagName, allFlagShorthand, false, allFlagDescription)
	rootCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatRaw, formatFlagDescription)
	rootCommand.Flags().StringVar(&configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	return rootCommand
}

// validatePositionalArguments accepts at most one non-empty directory argument.
func validatePositionalArguments(command *cobra.Command, arguments []string) error {
	if len(arguments) > maximumPositionalArguments {
		return &ArgumentError{Err: fmt.Errorf(tooManyArgumentsFormat, maximumPositionalArguments, len(arguments))}
	}
	if len(arguments) == maximumPositionalArguments && arguments[0] == "" {
		return &ArgumentError{Err: errors.New(emptyPathMessage)}
	}
	return nil
}

// runList streams the visible entries of configuration.Path through the selected renderer.
// Skipped entries are logged and do not fail the listing.
func runList(configuration Configuration, environment Environment) error {
	renderer, rendererError := output.NewStreamRenderer(configuration.Format, environment.Stdout)
	if rendererError != nil {
		return rendererError
	}
	logger := environment.logger()

	directoryListing, openError := listing.Open(resolvePath(configuration.Path, environment.WorkingDirectory), listing.Options{
		ShowAll: configuration.ShowAll,
		Warn: func(entryError *listing.EntryReadError) {
			logger.Warn(skippedEntryMessage,
				zap.String(directoryFieldName, entryError.Directory),
				zap.String(entryFieldName, entryError.Name),
				zap.Error(entryError.Err),
			)
		},
	})
	if openError != nil {
		return openError
	}
	defer directoryListing.Close()

	for directoryListing.Next() {
		if handleError := renderer.Handle(directoryListing.Name()); handleError != nil {
			return fmt.Errorf(writeOutputFormat, handleError)
		}
	}
	if flushError := renderer.Flush(); flushError != nil {
		return fmt.Errorf(writeOutputFormat, flushError)
	}
	return directoryListing.Err()
}

func resolvePath(path string, workingDirectory string) string {
	if workingDirectory == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workingDirectory, path)
}
