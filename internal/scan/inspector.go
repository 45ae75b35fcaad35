package scan

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/temirov/repostatus/internal/gitrepo"
)

const (
	timeoutFailureReason      = "timeout"
	cancelledFailureReason    = "cancelled"
	missingGitFailureReason   = "git executable not found"
	detachedHeadBranchLabel   = "detached"
	originRemoteNameConstant  = "origin"
	upstreamLookupPlaceholder = ""
)

// RepositoryManager captures the repository queries the inspector issues.
type RepositoryManager interface {
	IsWorkingTree(executionContext context.Context, repositoryPath string) (bool, error)
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	CheckCleanWorktree(executionContext context.Context, repositoryPath string, includeUntracked bool) (bool, error)
	GetUpstreamBranch(executionContext context.Context, repositoryPath string) (string, error)
	GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
}

// CandidateInspector classifies a single candidate directory.
type CandidateInspector interface {
	Inspect(executionContext context.Context, candidate CandidatePath) InspectionOutcome
}

// InspectorOptions tunes per-candidate inspection behavior.
type InspectorOptions struct {
	// Timeout bounds the inspection of a single candidate. Zero disables
	// the per-candidate deadline.
	Timeout time.Duration
	// IncludeUntracked counts untracked files toward worktree dirtiness.
	IncludeUntracked bool
	// CollectRemoteDetails additionally resolves the upstream reference and
	// the origin remote.
	CollectRemoteDetails bool
}

// RepositoryInspector inspects candidates through a RepositoryManager.
type RepositoryInspector struct {
	repositoryManager RepositoryManager
	options           InspectorOptions
}

// NewRepositoryInspector validates dependencies and builds a RepositoryInspector.
func NewRepositoryInspector(repositoryManager RepositoryManager, options InspectorOptions) (*RepositoryInspector, error) {
	if repositoryManager == nil {
		return nil, gitrepo.ErrExecutorNotConfigured
	}
	return &RepositoryInspector{repositoryManager: repositoryManager, options: options}, nil
}

// Inspect classifies one candidate directory. The returned outcome is never
// pending: every inspection resolves to repo, not-a-repo, or failed.
func (inspector *RepositoryInspector) Inspect(executionContext context.Context, candidate CandidatePath) InspectionOutcome {
	if inspector.options.Timeout > 0 {
		var cancelInspection context.CancelFunc
		executionContext, cancelInspection = context.WithTimeout(executionContext, inspector.options.Timeout)
		defer cancelInspection()
	}

	insideWorkTree, workTreeError := inspector.repositoryManager.IsWorkingTree(executionContext, candidate.Path)
	if workTreeError != nil {
		return FailedOutcome(classifyFailure(workTreeError))
	}
	if !insideWorkTree {
		return NotRepoOutcome()
	}

	branchName, branchError := inspector.repositoryManager.GetCurrentBranch(executionContext, candidate.Path)
	switch {
	case errors.Is(branchError, gitrepo.ErrRepositoryHasNoCommits):
		branchName = BranchNoCommitsLabel
	case branchError != nil:
		return FailedOutcome(classifyFailure(branchError))
	case gitrepo.IsDetachedHeadBranch(branchName):
		branchName = detachedHeadBranchLabel
	}

	cleanWorktree, cleanError := inspector.repositoryManager.CheckCleanWorktree(executionContext, candidate.Path, inspector.options.IncludeUntracked)
	if cleanError != nil {
		return FailedOutcome(classifyFailure(cleanError))
	}

	upstreamReference := upstreamLookupPlaceholder
	originOwnerRepo := ""
	if inspector.options.CollectRemoteDetails {
		upstreamReference, originOwnerRepo = inspector.collectRemoteDetails(executionContext, candidate.Path)
	}

	return RepoOutcome(branchName, !cleanWorktree, upstreamReference, originOwnerRepo)
}

func (inspector *RepositoryInspector) collectRemoteDetails(executionContext context.Context, repositoryPath string) (string, string) {
	upstreamReference, upstreamError := inspector.repositoryManager.GetUpstreamBranch(executionContext, repositoryPath)
	if upstreamError != nil {
		upstreamReference = ""
	}

	remoteURL, remoteError := inspector.repositoryManager.GetRemoteURL(executionContext, repositoryPath, originRemoteNameConstant)
	if remoteError != nil || strings.TrimSpace(remoteURL) == "" {
		return upstreamReference, ""
	}
	parsedRemote, parseError := gitrepo.ParseRemoteURL(remoteURL)
	if parseError != nil {
		return upstreamReference, strings.TrimSpace(remoteURL)
	}
	return upstreamReference, parsedRemote.OwnerRepository()
}

func classifyFailure(inspectionError error) string {
	switch {
	case errors.Is(inspectionError, context.DeadlineExceeded):
		return timeoutFailureReason
	case errors.Is(inspectionError, context.Canceled):
		return cancelledFailureReason
	case errors.Is(inspectionError, exec.ErrNotFound):
		return missingGitFailureReason
	default:
		return inspectionError.Error()
	}
}
