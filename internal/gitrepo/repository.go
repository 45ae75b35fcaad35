package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/repostatus/internal/execshell"
)

const (
	gitRevParseSubcommandConstant        = "rev-parse"
	gitInsideWorkTreeFlagConstant        = "--is-inside-work-tree"
	gitAbbreviatedReferenceFlagConstant  = "--abbrev-ref"
	gitSymbolicFullNameFlagConstant      = "--symbolic-full-name"
	gitHeadReferenceConstant             = "HEAD"
	gitUpstreamReferenceConstant         = "@{u}"
	gitStatusSubcommandConstant          = "status"
	gitStatusPorcelainFlagConstant       = "--porcelain"
	gitStatusNoUntrackedFlagConstant     = "--untracked-files=no"
	gitRemoteSubcommandConstant          = "remote"
	gitRemoteGetURLSubcommandConstant    = "get-url"
	gitWorkTreeAffirmativeOutputConstant = "true"
	executorNotConfiguredMessageConstant = "git executor not configured"
	noCommitsMessageConstant             = "repository has no commits"
	detachedHeadBranchOutputConstant     = gitHeadReferenceConstant
)

// Errors surfaced by RepositoryManager.
var (
	ErrExecutorNotConfigured  = errors.New(executorNotConfiguredMessageConstant)
	ErrRepositoryHasNoCommits = errors.New(noCommitsMessageConstant)
)

// GitExecutor exposes the subset of shell execution used by repository operations.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs git interrogation for a single repository path.
//
// The manager holds no per-repository state and is safe for concurrent use
// across distinct paths.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager validates dependencies and constructs a RepositoryManager.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// IsWorkingTree reports whether the directory is inside a git working tree.
//
// A non-zero git exit is a normal classification outcome, not an error.
func (manager *RepositoryManager) IsWorkingTree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitInsideWorkTreeFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		if isCommandFailure(executionError) {
			return false, nil
		}
		return false, executionError
	}

	return strings.TrimSpace(executionResult.StandardOutput) == gitWorkTreeAffirmativeOutputConstant, nil
}

// GetCurrentBranch resolves the abbreviated branch reference for HEAD.
//
// Detached HEAD states surface as the literal "HEAD" output. Repositories
// without any commit cause rev-parse to fail; that case is reported as
// ErrRepositoryHasNoCommits so callers can classify unborn branches.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbbreviatedReferenceFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		if isCommandFailure(executionError) {
			return "", ErrRepositoryHasNoCommits
		}
		return "", executionError
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// IsDetachedHeadBranch reports whether a branch value names a detached HEAD state.
func IsDetachedHeadBranch(branchName string) bool {
	return branchName == detachedHeadBranchOutputConstant
}

// CheckCleanWorktree reports whether the working tree has no uncommitted changes.
//
// When includeUntracked is false, untracked files are excluded from the
// cleanliness verdict.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string, includeUntracked bool) (bool, error) {
	statusArguments := []string{gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant}
	if !includeUntracked {
		statusArguments = append(statusArguments, gitStatusNoUntrackedFlagConstant)
	}

	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        statusArguments,
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return false, executionError
	}

	return len(strings.TrimSpace(executionResult.StandardOutput)) == 0, nil
}

// GetUpstreamBranch resolves the upstream tracking reference for HEAD.
//
// A missing upstream configuration yields an empty reference without error.
func (manager *RepositoryManager) GetUpstreamBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbbreviatedReferenceFlagConstant, gitSymbolicFullNameFlagConstant, gitUpstreamReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		if isCommandFailure(executionError) {
			return "", nil
		}
		return "", executionError
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// GetRemoteURL resolves the URL configured for the named remote.
//
// A missing remote yields an empty URL without error.
func (manager *RepositoryManager) GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteGetURLSubcommandConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		if isCommandFailure(executionError) {
			return "", nil
		}
		return "", executionError
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

func isCommandFailure(executionError error) bool {
	commandFailure := execshell.CommandFailedError{}
	return errors.As(executionError, &commandFailure)
}
