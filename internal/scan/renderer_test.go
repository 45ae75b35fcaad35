package scan_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/temirov/repostatus/internal/scan"
)

func TestRendererFormatsPlainLines(testInstance *testing.T) {
	records := []scan.ResultRecord{
		{Candidate: scan.CandidatePath{Name: "api", Index: 0}, Outcome: scan.RepoOutcome("main", false, "", "")},
		{Candidate: scan.CandidatePath{Name: "website", Index: 1}, Outcome: scan.RepoOutcome("develop", true, "", "")},
		{Candidate: scan.CandidatePath{Name: "notes", Index: 2}, Outcome: scan.NotRepoOutcome()},
		{Candidate: scan.CandidatePath{Name: "broken", Index: 3}, Outcome: scan.FailedOutcome("timeout")},
		{Candidate: scan.CandidatePath{Name: "queued", Index: 4}},
	}

	lines := scan.NewRenderer(false, false).RenderLines(records)

	require.Equal(testInstance, []string{
		"api      [main] clean",
		"website  [develop] dirty",
		"notes    not a git repo",
		"broken   timeout",
		"queued   pending",
	}, lines)
}

func TestRendererAlignsMultibyteNamesByDisplayWidth(testInstance *testing.T) {
	records := []scan.ResultRecord{
		{Candidate: scan.CandidatePath{Name: "api", Index: 0}, Outcome: scan.RepoOutcome("main", false, "", "")},
		{Candidate: scan.CandidatePath{Name: "日記", Index: 1}, Outcome: scan.NotRepoOutcome()},
		{Candidate: scan.CandidatePath{Name: "café", Index: 2}, Outcome: scan.RepoOutcome("main", true, "", "")},
	}

	lines := scan.NewRenderer(false, false).RenderLines(records)

	require.Equal(testInstance, []string{
		"api   [main] clean",
		"日記  not a git repo",
		"café  [main] dirty",
	}, lines)
}

func TestRendererIncludesRemoteDetails(testInstance *testing.T) {
	records := []scan.ResultRecord{
		{Candidate: scan.CandidatePath{Name: "api"}, Outcome: scan.RepoOutcome("main", false, "origin/main", "acme/api")},
		{Candidate: scan.CandidatePath{Name: "lab"}, Outcome: scan.RepoOutcome("main", false, "", "")},
	}

	lines := scan.NewRenderer(false, true).RenderLines(records)

	require.Equal(testInstance, "api  [main] clean  (acme/api, tracks origin/main)", lines[0])
	require.Equal(testInstance, "lab  [main] clean", lines[1])
}

func TestRendererEmitsEscapeSequencesWhenColorEnabled(testInstance *testing.T) {
	previousProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(previousProfile)

	records := []scan.ResultRecord{
		{Candidate: scan.CandidatePath{Name: "api"}, Outcome: scan.RepoOutcome("main", true, "", "")},
	}

	coloredLines := scan.NewRenderer(true, false).RenderLines(records)
	plainLines := scan.NewRenderer(false, false).RenderLines(records)

	require.Contains(testInstance, coloredLines[0], "\x1b[")
	require.NotContains(testInstance, plainLines[0], "\x1b[")
}

func TestLiveRendererRepaintsInPlace(testInstance *testing.T) {
	records := []scan.ResultRecord{
		{Candidate: scan.CandidatePath{Name: "api"}},
		{Candidate: scan.CandidatePath{Name: "web"}},
	}

	output := &strings.Builder{}
	liveRenderer := scan.NewLiveRenderer(output, scan.NewRenderer(false, false))

	liveRenderer.Render(records)
	firstPass := output.String()
	require.NotContains(testInstance, firstPass, "\x1b[2A")
	require.Contains(testInstance, firstPass, "api  pending")

	records[0].Outcome = scan.RepoOutcome("main", false, "", "")
	liveRenderer.Render(records)
	secondPass := strings.TrimPrefix(output.String(), firstPass)
	require.True(testInstance, strings.HasPrefix(secondPass, "\x1b[2A"))
	require.Contains(testInstance, secondPass, "\x1b[2K")
	require.Contains(testInstance, secondPass, "api  [main] clean")
}
