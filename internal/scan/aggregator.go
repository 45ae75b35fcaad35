package scan

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrIndexOutOfRange reports a record for an index outside the seeded range.
	ErrIndexOutOfRange = errors.New("result index out of range")
	// ErrDuplicateRecord reports a second record for an already filled index.
	ErrDuplicateRecord = errors.New("result already recorded for index")
)

// ResultAggregator collects inspection outcomes keyed by candidate index.
//
// Each slot is written at most once. A per-slot flag uses release/acquire
// ordering so the record write happens-before any snapshot read; the write
// path takes no lock.
type ResultAggregator struct {
	records        []ResultRecord
	recorded       []atomic.Bool
	completedCount atomic.Int64
}

// NewResultAggregator seeds one pending slot per candidate, preserving
// candidate order.
func NewResultAggregator(candidates []CandidatePath) *ResultAggregator {
	aggregator := &ResultAggregator{
		records:  make([]ResultRecord, len(candidates)),
		recorded: make([]atomic.Bool, len(candidates)),
	}
	for candidateIndex, candidate := range candidates {
		aggregator.records[candidateIndex] = ResultRecord{Candidate: candidate}
	}
	return aggregator
}

// Record stores the outcome for the given candidate index exactly once.
// Distinct indices may be recorded concurrently; concurrent calls for the
// same index are not supported.
func (aggregator *ResultAggregator) Record(candidateIndex int, outcome InspectionOutcome) error {
	if candidateIndex < 0 || candidateIndex >= len(aggregator.records) {
		return ErrIndexOutOfRange
	}
	if aggregator.recorded[candidateIndex].Load() {
		return ErrDuplicateRecord
	}
	aggregator.records[candidateIndex].Outcome = outcome
	aggregator.recorded[candidateIndex].Store(true)
	aggregator.completedCount.Add(1)
	return nil
}

// CompletedCount reports how many outcomes have been recorded so far.
func (aggregator *ResultAggregator) CompletedCount() int {
	return int(aggregator.completedCount.Load())
}

// Snapshot returns the records in candidate order plus whether every slot has
// been filled. Unfilled slots carry a pending outcome.
func (aggregator *ResultAggregator) Snapshot() ([]ResultRecord, bool) {
	snapshot := make([]ResultRecord, len(aggregator.records))
	complete := true
	for recordIndex := range aggregator.records {
		if aggregator.recorded[recordIndex].Load() {
			snapshot[recordIndex] = aggregator.records[recordIndex]
			continue
		}
		complete = false
		snapshot[recordIndex] = ResultRecord{Candidate: aggregator.records[recordIndex].Candidate}
	}
	return snapshot, complete
}
