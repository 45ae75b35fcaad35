package scan

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repostatus/internal/execshell"
	"github.com/temirov/repostatus/internal/gitrepo"
	"github.com/temirov/repostatus/internal/ui"
	"github.com/temirov/repostatus/internal/utils"
	"github.com/temirov/repostatus/internal/utils/flags"
	pathutils "github.com/temirov/repostatus/internal/utils/path"
)

const (
	commandUseConstant                        = "scan [roots]"
	commandShortDescriptionConstant           = "Report the status of repositories under the given directories"
	commandLongDescriptionConstant            = "scan lists the immediate subdirectories of each root, classifies every one as a clean repository, a dirty repository, or a plain folder, and prints a per-directory report in directory order."
	commandExecutionErrorTemplateConstant     = "scan failed: %w"
	flagPathNameConstant                      = "path"
	flagPathDescriptionConstant               = "Directory whose subdirectories are scanned (repeatable)"
	flagIncludeHiddenNameConstant             = "include-hidden"
	flagIncludeHiddenDescriptionConstant      = "Include subdirectories whose names start with a dot"
	flagIgnoreNameConstant                    = "ignore"
	flagIgnoreDescriptionConstant             = "Subdirectory name to skip (repeatable)"
	flagMaxWorkersNameConstant                = "max-workers"
	flagMaxWorkersDescriptionConstant         = "Maximum number of concurrent repository inspections (0 uses the CPU count)"
	flagTimeoutNameConstant                   = "timeout"
	flagTimeoutDescriptionConstant            = "Per-directory inspection timeout (0 disables the limit)"
	flagUntrackedNameConstant                 = "untracked"
	flagUntrackedDescriptionConstant          = "Count untracked files as dirty"
	flagRemotesNameConstant                   = "remotes"
	flagRemotesDescriptionConstant            = "Show the origin remote and the tracked upstream for each repository"
	flagNoColorNameConstant                   = "no-color"
	flagNoColorDescriptionConstant            = "Disable colored output"
	repositoryManagerErrorTemplateConstant    = "unable to construct repository manager: %w"
	repositoryInspectorErrorTemplateConstant  = "unable to construct repository inspector: %w"
	shellExecutorCreationTemplateConstant     = "unable to construct shell executor: %w"
	scanUsingConfigurationMessageConstant     = "using configuration file"
	logFieldConfigurationFileConstant         = "config_file"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current scan configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the Cobra command for repository scanning.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	GitExecutor           gitrepo.GitExecutor
	Lister                *DirectoryLister
	Inspector             CandidateInspector
}

// Build constructs the scan command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().StringArray(flagPathNameConstant, nil, flagPathDescriptionConstant)
	command.Flags().Bool(flagIncludeHiddenNameConstant, false, flagIncludeHiddenDescriptionConstant)
	command.Flags().StringArray(flagIgnoreNameConstant, nil, flagIgnoreDescriptionConstant)
	command.Flags().Int(flagMaxWorkersNameConstant, 0, flagMaxWorkersDescriptionConstant)
	command.Flags().Duration(flagTimeoutNameConstant, DefaultCommandConfiguration().Timeout, flagTimeoutDescriptionConstant)
	flags.AddToggleFlag(command.Flags(), nil, flagUntrackedNameConstant, "", DefaultCommandConfiguration().Untracked, flagUntrackedDescriptionConstant)
	command.Flags().Bool(flagRemotesNameConstant, false, flagRemotesDescriptionConstant)
	command.Flags().Bool(flagNoColorNameConstant, false, flagNoColorDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	logger := builder.resolveLogger()

	contextAccessor := utils.NewCommandContextAccessor()
	if configurationFilePath, configurationFileAvailable := contextAccessor.ConfigurationFilePath(command.Context()); configurationFileAvailable && len(configurationFilePath) > 0 {
		logger.Debug(scanUsingConfigurationMessageConstant, zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}

	pathValues, _ := command.Flags().GetStringArray(flagPathNameConstant)
	explicitRoots := append(append([]string{}, pathValues...), arguments...)
	roots := configuration.Roots
	if len(explicitRoots) > 0 {
		roots = explicitRoots
	}

	rootSanitizer := pathutils.NewScanRootSanitizerWithConfiguration(nil, pathutils.ScanRootSanitizerConfiguration{PruneNestedRoots: true})
	sanitizedRoots := rootSanitizer.Sanitize(roots)

	includeHidden := configuration.IncludeHidden
	if command.Flags().Changed(flagIncludeHiddenNameConstant) {
		includeHidden, _ = command.Flags().GetBool(flagIncludeHiddenNameConstant)
	}

	ignoredNames := configuration.IgnoredNames
	if command.Flags().Changed(flagIgnoreNameConstant) {
		ignoredNames, _ = command.Flags().GetStringArray(flagIgnoreNameConstant)
	}

	maxWorkers := configuration.MaxWorkers
	if command.Flags().Changed(flagMaxWorkersNameConstant) {
		maxWorkers, _ = command.Flags().GetInt(flagMaxWorkersNameConstant)
	}

	timeout := configuration.Timeout
	if command.Flags().Changed(flagTimeoutNameConstant) {
		timeout, _ = command.Flags().GetDuration(flagTimeoutNameConstant)
	}

	includeUntracked := configuration.Untracked
	if command.Flags().Changed(flagUntrackedNameConstant) {
		includeUntracked = flags.ToggleValue(command.Flags(), flagUntrackedNameConstant, includeUntracked)
	}

	showRemoteDetails := configuration.Remotes
	if command.Flags().Changed(flagRemotesNameConstant) {
		showRemoteDetails, _ = command.Flags().GetBool(flagRemotesNameConstant)
	}

	noColor := configuration.NoColor
	if command.Flags().Changed(flagNoColorNameConstant) {
		noColor, _ = command.Flags().GetBool(flagNoColorNameConstant)
	}

	colorEnabled := !noColor && writerIsTerminal(command.OutOrStdout())

	inspector, inspectorError := builder.resolveInspector(logger, InspectorOptions{
		Timeout:              timeout,
		IncludeUntracked:     includeUntracked,
		CollectRemoteDetails: showRemoteDetails,
	})
	if inspectorError != nil {
		return inspectorError
	}

	service := NewService(builder.resolveLister(), inspector, NewScheduler(maxWorkers), logger)

	runOptions := RunOptions{
		Roots:             sanitizedRoots,
		IncludeHidden:     includeHidden,
		IgnoredNames:      ignoredNames,
		ColorEnabled:      colorEnabled,
		LiveOutput:        colorEnabled,
		ShowRemoteDetails: showRemoteDetails,
	}

	if runError := service.Run(command.Context(), runOptions, command.OutOrStdout()); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}

	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveLister() *DirectoryLister {
	if builder.Lister != nil {
		return builder.Lister
	}
	return NewDirectoryLister()
}

func (builder *CommandBuilder) resolveInspector(logger *zap.Logger, options InspectorOptions) (CandidateInspector, error) {
	if builder.Inspector != nil {
		return builder.Inspector, nil
	}

	gitExecutor := builder.GitExecutor
	if gitExecutor == nil {
		shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
		if executorError != nil {
			return nil, fmt.Errorf(shellExecutorCreationTemplateConstant, executorError)
		}
		shellExecutor.SetCommandEventObserver(ui.NewLoggingCommandObserver(logger))
		gitExecutor = shellExecutor
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(gitExecutor)
	if managerError != nil {
		return nil, fmt.Errorf(repositoryManagerErrorTemplateConstant, managerError)
	}

	inspector, inspectorError := NewRepositoryInspector(repositoryManager, options)
	if inspectorError != nil {
		return nil, fmt.Errorf(repositoryInspectorErrorTemplateConstant, inspectorError)
	}

	return inspector, nil
}

func writerIsTerminal(output any) bool {
	file, isFile := output.(*os.File)
	if !isFile {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
