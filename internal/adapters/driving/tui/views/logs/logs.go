// Package logs provides the question log table for the dashboard. It
// renders historical queries with their grounding and answerability
// metadata, newest first as delivered by the backend.
package logs

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/messages"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/styles"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driving"
)

// emDash is the placeholder for an empty citation list. The cell is
// never rendered blank.
const emDash = "—"

// emptyStateMessage is the single full-width row shown when there are
// no log entries, whether from an empty result or a failed fetch.
const emptyStateMessage = "No questions asked yet. Run `raglab ask` to generate activity."

// Column layout. QUESTION absorbs remaining width at render time.
const (
	timeWidth        = 16
	modeWidth        = 8
	docsWidth        = 20
	groundedWidth    = 10
	answerWidth      = 13
	minQuestionWidth = 20
)

// View is the question log table.
type View struct {
	styles     *styles.Styles
	logService driving.LogService

	entries      []domain.QueryLog
	seq          int
	loading      bool
	scrollOffset int
	width        int
	height       int
}

// NewView creates a new log table.
func NewView(s *styles.Styles, logService driving.LogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		logService: logService,
		entries:    []domain.QueryLog{},
		width:      100,
	}
}

// Init triggers the initial log fetch.
func (v *View) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh starts a new log fetch, superseding any in-flight one.
func (v *View) Refresh() tea.Cmd {
	v.seq++
	v.loading = true
	seq := v.seq
	svc := v.logService
	return func() tea.Msg {
		if svc == nil {
			return messages.LogsLoaded{Seq: seq, Err: fmt.Errorf("log service not available")}
		}
		entries, err := svc.List(context.Background())
		return messages.LogsLoaded{Seq: seq, Logs: entries, Err: err}
	}
}

// Update handles messages for the log table.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.scrollOffset > 0 {
				v.scrollOffset--
			}
		case "down", "j":
			if v.scrollOffset < len(v.entries)-v.visibleRowCount() {
				v.scrollOffset++
			}
		}
		return v, nil

	case messages.LogsLoaded:
		if msg.Seq != v.seq {
			return v, nil
		}
		v.loading = false
		v.scrollOffset = 0
		if msg.Err != nil {
			// Failure degrades to the empty state.
			v.entries = []domain.QueryLog{}
			return v, nil
		}
		if msg.Logs == nil {
			v.entries = []domain.QueryLog{}
		} else {
			// Backend order is preserved, no client-side sort.
			v.entries = msg.Logs
		}
		return v, nil
	}

	return v, nil
}

// View renders the log table.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Question log (%d)", len(v.entries))))
	b.WriteString("\n")
	b.WriteString(v.renderHeader())
	b.WriteString("\n")

	if len(v.entries) == 0 {
		b.WriteString(v.renderEmptyRow())
		return v.styles.Panel.Render(b.String())
	}

	visible := v.visibleRowCount()
	for i := v.scrollOffset; i < len(v.entries) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.renderRow(&v.entries[i]))
		if i < len(v.entries)-1 && i < v.scrollOffset+visible-1 {
			b.WriteString("\n")
		}
	}

	if len(v.entries) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("[%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visible, len(v.entries)),
			len(v.entries))))
	}

	return v.styles.Panel.Render(b.String())
}

// renderHeader renders the six column headers.
func (v *View) renderHeader() string {
	return v.styles.TableHeader.Render(fmt.Sprintf(
		"%-*s %-*s %-*s %-*s %-*s %-*s",
		timeWidth, "TIME",
		v.questionWidth(), "QUESTION",
		modeWidth, "MODE",
		docsWidth, "DOCS",
		groundedWidth, "GROUNDED",
		answerWidth, "ANSWERABILITY",
	))
}

// renderEmptyRow renders the single informational row spanning the
// full table width.
func (v *View) renderEmptyRow() string {
	return v.styles.Muted.Width(v.tableWidth()).Render(emptyStateMessage)
}

// renderRow renders one log entry.
func (v *View) renderRow(entry *domain.QueryLog) string {
	ts := entry.Timestamp.Local().Format("2006-01-02 15:04")

	question := truncate(entry.Question, v.questionWidth())
	docs := truncate(DocsCell(entry.UsedDocs), docsWidth)

	grounded := v.styles.BadgeNegative.Render("✗ no")
	if entry.Grounded {
		grounded = v.styles.BadgePositive.Render("✓ yes")
	}

	return fmt.Sprintf("%s %s %s %s %s %s",
		padCell(ts, timeWidth),
		padCell(question, v.questionWidth()),
		padCell(strings.ToUpper(entry.Mode), modeWidth),
		padCell(docs, docsWidth),
		padBadge(grounded, groundedWidth),
		v.styles.BadgeNeutral.Render(entry.Answerability),
	)
}

// DocsCell formats a citation list for display. The underlying data is
// never modified, only the rendering.
func DocsCell(usedDocs []string) string {
	if len(usedDocs) == 0 {
		return emDash
	}
	return strings.Join(usedDocs, ", ")
}

// truncate shortens s to fit width display cells.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// padCell pads a plain cell to width in runes. fmt's %-*s pads by bytes,
// which misaligns cells holding multibyte text such as the em-dash.
func padCell(s string, width int) string {
	visible := len([]rune(s))
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// padBadge pads a styled cell to width based on its visible length.
func padBadge(s string, width int) string {
	visible := len([]rune(stripANSI(s)))
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// stripANSI removes CSI escape sequences for width accounting.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// questionWidth returns the display width of the question column.
func (v *View) questionWidth() int {
	fixed := timeWidth + modeWidth + docsWidth + groundedWidth + answerWidth + 9
	w := v.width - fixed
	if w < minQuestionWidth {
		w = minQuestionWidth
	}
	return w
}

// tableWidth returns the total rendered width of the table body.
func (v *View) tableWidth() int {
	return timeWidth + v.questionWidth() + modeWidth + docsWidth + groundedWidth + answerWidth + 5
}

// visibleRowCount returns how many entries fit in the viewport.
func (v *View) visibleRowCount() int {
	// Reserve lines for the title, header, scroll indicator, and the
	// surrounding panels.
	reserved := 16
	available := v.height - reserved
	if available < 5 {
		available = 5
	}
	return available
}

// SetDimensions sets the table dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Entries returns the currently loaded log entries.
func (v *View) Entries() []domain.QueryLog {
	return v.entries
}

// ScrollOffset returns the current scroll position.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Loading reports whether a fetch is outstanding.
func (v *View) Loading() bool {
	return v.loading
}
