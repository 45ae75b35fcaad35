package execshell

// CommandEventObserver is notified as git invocations start and finish.
type CommandEventObserver interface {
	// CommandStarted fires immediately before the command runs.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires once the command produced an execution result.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the command failed before producing a result.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// discardingCommandEventObserver ignores every command event.
type discardingCommandEventObserver struct{}

func (discardingCommandEventObserver) CommandStarted(ShellCommand) {}

func (discardingCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (discardingCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
