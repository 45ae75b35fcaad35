package scan

import (
	"context"
	"runtime"
	"sync"
)

// indexedOutcome carries a finished inspection back to the collector.
type indexedOutcome struct {
	candidateIndex int
	outcome        InspectionOutcome
}

// ProgressObserver is notified after each outcome is recorded. completedCount
// counts recorded outcomes including the one just delivered. Notifications
// arrive from a single collector goroutine.
type ProgressObserver func(completedCount int, totalCount int)

// Scheduler fans candidates out to a bounded pool of inspection workers and
// funnels outcomes into an aggregator through one collector goroutine.
type Scheduler struct {
	workerCount int
}

// NewScheduler builds a Scheduler running at most workerCount concurrent
// inspections. Non-positive counts fall back to the number of CPUs.
func NewScheduler(workerCount int) *Scheduler {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	return &Scheduler{workerCount: workerCount}
}

// Run inspects every candidate and records each outcome in the aggregator.
// Results are keyed by candidate index, so completion order does not affect
// the aggregated ordering. Run returns the context error when cancellation
// prevented dispatching every candidate, leaving undispatched slots pending.
func (scheduler *Scheduler) Run(executionContext context.Context, candidates []CandidatePath, inspector CandidateInspector, aggregator *ResultAggregator, observer ProgressObserver) error {
	if len(candidates) == 0 {
		return nil
	}

	workerCount := scheduler.workerCount
	if workerCount > len(candidates) {
		workerCount = len(candidates)
	}

	jobs := make(chan CandidatePath)
	results := make(chan indexedOutcome)

	var workerGroup sync.WaitGroup
	workerGroup.Add(workerCount)
	for workerIndex := 0; workerIndex < workerCount; workerIndex++ {
		go func() {
			defer workerGroup.Done()
			for candidate := range jobs {
				results <- indexedOutcome{
					candidateIndex: candidate.Index,
					outcome:        inspector.Inspect(executionContext, candidate),
				}
			}
		}()
	}

	var dispatchError error
	go func() {
		defer close(jobs)
		for _, candidate := range candidates {
			select {
			case jobs <- candidate:
			case <-executionContext.Done():
				dispatchError = executionContext.Err()
				return
			}
		}
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	totalCount := len(candidates)
	for result := range results {
		if recordError := aggregator.Record(result.candidateIndex, result.outcome); recordError != nil {
			continue
		}
		if observer != nil {
			observer(aggregator.CompletedCount(), totalCount)
		}
	}
	return dispatchError
}
