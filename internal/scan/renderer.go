package scan

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	pendingStatusLabel   = "pending"
	notRepoStatusLabel   = "not a git repo"
	cleanStatusLabel     = "clean"
	dirtyStatusLabel     = "dirty"
	noSubfoldersMessage  = "No subfolders found."
	cursorUpTemplate     = "\x1b[%dA"
	eraseLineSequence    = "\x1b[2K"
	carriageReturnString = "\r"
)

var (
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	cleanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dirtyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	notRepoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Faint(true)
	remoteStyle  = lipgloss.NewStyle().Faint(true)
)

// Renderer formats result records as aligned report lines.
type Renderer struct {
	colorEnabled      bool
	showRemoteDetails bool
}

// NewRenderer builds a Renderer. When colorEnabled is false every line is
// plain text with no escape sequences.
func NewRenderer(colorEnabled bool, showRemoteDetails bool) *Renderer {
	return &Renderer{colorEnabled: colorEnabled, showRemoteDetails: showRemoteDetails}
}

// RenderLines formats one line per record, in record order.
func (renderer *Renderer) RenderLines(records []ResultRecord) []string {
	nameWidth := 0
	for _, record := range records {
		if nameDisplayWidth := runewidth.StringWidth(record.Candidate.Name); nameDisplayWidth > nameWidth {
			nameWidth = nameDisplayWidth
		}
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, renderer.renderLine(record, nameWidth))
	}
	return lines
}

func (renderer *Renderer) renderLine(record ResultRecord, nameWidth int) string {
	paddedName := runewidth.FillRight(record.Candidate.Name, nameWidth)
	switch record.Outcome.Kind {
	case OutcomeRepo:
		return renderer.renderRepoLine(paddedName, record.Outcome)
	case OutcomeNotRepo:
		return fmt.Sprintf("%s  %s", paddedName, renderer.styled(notRepoStyle, notRepoStatusLabel))
	case OutcomeFailed:
		return fmt.Sprintf("%s  %s", paddedName, renderer.styled(failedStyle, record.Outcome.FailureReason))
	default:
		return fmt.Sprintf("%s  %s", paddedName, renderer.styled(pendingStyle, pendingStatusLabel))
	}
}

func (renderer *Renderer) renderRepoLine(paddedName string, outcome InspectionOutcome) string {
	statusLabel := renderer.styled(cleanStyle, cleanStatusLabel)
	if outcome.Dirty {
		statusLabel = renderer.styled(dirtyStyle, dirtyStatusLabel)
	}
	lineBuilder := strings.Builder{}
	lineBuilder.WriteString(fmt.Sprintf("%s  [%s] %s", paddedName, renderer.styled(branchStyle, outcome.Branch), statusLabel))
	if renderer.showRemoteDetails {
		lineBuilder.WriteString(renderer.renderRemoteDetails(outcome))
	}
	return lineBuilder.String()
}

func (renderer *Renderer) renderRemoteDetails(outcome InspectionOutcome) string {
	details := make([]string, 0, 2)
	if outcome.OriginOwnerRepo != "" {
		details = append(details, outcome.OriginOwnerRepo)
	}
	if outcome.Upstream != "" {
		details = append(details, "tracks "+outcome.Upstream)
	}
	if len(details) == 0 {
		return ""
	}
	return "  " + renderer.styled(remoteStyle, "("+strings.Join(details, ", ")+")")
}

func (renderer *Renderer) styled(style lipgloss.Style, text string) string {
	if !renderer.colorEnabled {
		return text
	}
	return style.Render(text)
}

// LiveRenderer repaints a block of report lines in place on a terminal.
type LiveRenderer struct {
	output       io.Writer
	renderer     *Renderer
	printedLines int
}

// NewLiveRenderer builds a LiveRenderer writing to output.
func NewLiveRenderer(output io.Writer, renderer *Renderer) *LiveRenderer {
	return &LiveRenderer{output: output, renderer: renderer}
}

// Render erases the previously printed block and prints the current records.
func (liveRenderer *LiveRenderer) Render(records []ResultRecord) {
	blockBuilder := strings.Builder{}
	if liveRenderer.printedLines > 0 {
		blockBuilder.WriteString(fmt.Sprintf(cursorUpTemplate, liveRenderer.printedLines))
	}
	lines := liveRenderer.renderer.RenderLines(records)
	for _, line := range lines {
		blockBuilder.WriteString(carriageReturnString)
		blockBuilder.WriteString(eraseLineSequence)
		blockBuilder.WriteString(line)
		blockBuilder.WriteString("\n")
	}
	fmt.Fprint(liveRenderer.output, blockBuilder.String())
	liveRenderer.printedLines = len(lines)
}
