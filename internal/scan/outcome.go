package scan

const (
	// BranchNoCommitsLabel is reported for repositories whose HEAD is unborn.
	BranchNoCommitsLabel = "no commits"
)

// OutcomeKind discriminates the variants of an InspectionOutcome.
type OutcomeKind int

// Outcome variants. The zero value marks a slot whose inspection has not
// completed yet.
const (
	OutcomePending OutcomeKind = iota
	OutcomeRepo
	OutcomeNotRepo
	OutcomeFailed
)

// InspectionOutcome is the tagged result of inspecting one candidate directory.
//
// Exactly one outcome is produced per candidate and it is immutable once
// recorded. Branch, Dirty, Upstream, and OriginOwnerRepo are meaningful only
// for OutcomeRepo; FailureReason only for OutcomeFailed.
type InspectionOutcome struct {
	Kind            OutcomeKind
	Branch          string
	Dirty           bool
	Upstream        string
	OriginOwnerRepo string
	FailureReason   string
}

// RepoOutcome builds the outcome for a directory under version control.
func RepoOutcome(branchName string, dirtyWorktree bool, upstreamReference string, originOwnerRepo string) InspectionOutcome {
	return InspectionOutcome{
		Kind:            OutcomeRepo,
		Branch:          branchName,
		Dirty:           dirtyWorktree,
		Upstream:        upstreamReference,
		OriginOwnerRepo: originOwnerRepo,
	}
}

// NotRepoOutcome builds the outcome for a directory outside version control.
func NotRepoOutcome() InspectionOutcome {
	return InspectionOutcome{Kind: OutcomeNotRepo}
}

// FailedOutcome builds the outcome for an inspection that could not complete.
func FailedOutcome(failureReason string) InspectionOutcome {
	return InspectionOutcome{Kind: OutcomeFailed, FailureReason: failureReason}
}

// ResultRecord pairs a candidate with its recorded outcome.
type ResultRecord struct {
	Candidate CandidatePath
	Outcome   InspectionOutcome
}
