package scan_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repostatus/internal/scan"
)

func scanTestCandidates(names ...string) []scan.CandidatePath {
	candidates := make([]scan.CandidatePath, 0, len(names))
	for candidateIndex, candidateName := range names {
		candidates = append(candidates, scan.CandidatePath{
			Name:  candidateName,
			Path:  "/tmp/" + candidateName,
			Index: candidateIndex,
		})
	}
	return candidates
}

func TestResultAggregatorRecordsEachSlotOnce(testInstance *testing.T) {
	aggregator := scan.NewResultAggregator(scanTestCandidates("alpha", "beta"))

	require.NoError(testInstance, aggregator.Record(0, scan.NotRepoOutcome()))
	require.ErrorIs(testInstance, aggregator.Record(0, scan.NotRepoOutcome()), scan.ErrDuplicateRecord)
	require.ErrorIs(testInstance, aggregator.Record(-1, scan.NotRepoOutcome()), scan.ErrIndexOutOfRange)
	require.ErrorIs(testInstance, aggregator.Record(2, scan.NotRepoOutcome()), scan.ErrIndexOutOfRange)
	require.Equal(testInstance, 1, aggregator.CompletedCount())
}

func TestResultAggregatorSnapshotTracksCompleteness(testInstance *testing.T) {
	aggregator := scan.NewResultAggregator(scanTestCandidates("alpha", "beta"))

	records, complete := aggregator.Snapshot()
	require.False(testInstance, complete)
	require.Len(testInstance, records, 2)
	require.Equal(testInstance, scan.OutcomePending, records[0].Outcome.Kind)
	require.Equal(testInstance, "alpha", records[0].Candidate.Name)

	require.NoError(testInstance, aggregator.Record(1, scan.RepoOutcome("main", true, "", "")))
	records, complete = aggregator.Snapshot()
	require.False(testInstance, complete)
	require.Equal(testInstance, scan.OutcomePending, records[0].Outcome.Kind)
	require.Equal(testInstance, scan.OutcomeRepo, records[1].Outcome.Kind)
	require.True(testInstance, records[1].Outcome.Dirty)

	require.NoError(testInstance, aggregator.Record(0, scan.FailedOutcome("timeout")))
	records, complete = aggregator.Snapshot()
	require.True(testInstance, complete)
	require.Equal(testInstance, scan.OutcomeFailed, records[0].Outcome.Kind)
	require.Equal(testInstance, "timeout", records[0].Outcome.FailureReason)
}

func TestResultAggregatorHandlesConcurrentRecorders(testInstance *testing.T) {
	candidateNames := make([]string, 64)
	for candidateIndex := range candidateNames {
		candidateNames[candidateIndex] = string(rune('a' + candidateIndex%26))
	}
	aggregator := scan.NewResultAggregator(scanTestCandidates(candidateNames...))

	var recorderGroup sync.WaitGroup
	for candidateIndex := range candidateNames {
		recorderGroup.Add(1)
		go func(recordIndex int) {
			defer recorderGroup.Done()
			require.NoError(testInstance, aggregator.Record(recordIndex, scan.RepoOutcome("main", recordIndex%2 == 0, "", "")))
		}(candidateIndex)
	}
	recorderGroup.Wait()

	records, complete := aggregator.Snapshot()
	require.True(testInstance, complete)
	require.Equal(testInstance, len(candidateNames), aggregator.CompletedCount())
	for recordIndex, record := range records {
		require.Equal(testInstance, recordIndex, record.Candidate.Index)
		require.Equal(testInstance, scan.OutcomeRepo, record.Outcome.Kind)
	}
}
