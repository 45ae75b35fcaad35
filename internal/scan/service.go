package scan

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// RunOptions configures a single scan run.
type RunOptions struct {
	Roots             []string
	IncludeHidden     bool
	IgnoredNames      []string
	ColorEnabled      bool
	LiveOutput        bool
	ShowRemoteDetails bool
}

// Service wires the lister, the scheduler, and the renderer into one scan run.
type Service struct {
	directoryLister *DirectoryLister
	inspector       CandidateInspector
	scheduler       *Scheduler
	logger          *zap.Logger
}

// NewService builds a Service from its collaborators.
func NewService(directoryLister *DirectoryLister, inspector CandidateInspector, scheduler *Scheduler, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{directoryLister: directoryLister, inspector: inspector, scheduler: scheduler, logger: logger}
}

// Run scans every root, inspects candidates concurrently, and writes the
// report to output in candidate order. Candidates that were never dispatched
// because of cancellation render as pending and Run returns the context error.
func (service *Service) Run(executionContext context.Context, options RunOptions, output io.Writer) error {
	candidates, listError := service.directoryLister.ListCandidates(options.Roots, ListOptions{
		IncludeHidden: options.IncludeHidden,
		IgnoredNames:  options.IgnoredNames,
	})
	if listError != nil {
		return listError
	}
	if len(candidates) == 0 {
		fmt.Fprintln(output, noSubfoldersMessage)
		return nil
	}

	aggregator := NewResultAggregator(candidates)
	renderer := NewRenderer(options.ColorEnabled, options.ShowRemoteDetails)

	var progressObserver ProgressObserver
	var liveRenderer *LiveRenderer
	if options.LiveOutput {
		liveRenderer = NewLiveRenderer(output, renderer)
		snapshot, _ := aggregator.Snapshot()
		liveRenderer.Render(snapshot)
		progressObserver = func(completedCount int, totalCount int) {
			snapshot, _ := aggregator.Snapshot()
			liveRenderer.Render(snapshot)
		}
	}

	runError := service.scheduler.Run(executionContext, candidates, service.inspector, aggregator, progressObserver)

	records, complete := aggregator.Snapshot()
	if !options.LiveOutput {
		for _, line := range renderer.RenderLines(records) {
			fmt.Fprintln(output, line)
		}
	}

	service.logger.Debug("scan completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("recorded", aggregator.CompletedCount()),
		zap.Bool("complete", complete),
	)
	return runError
}
