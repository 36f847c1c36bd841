// Package overview provides the summary statistics panel for the dashboard.
// It renders four scalar stat cards, a sample activity sparkline, and a
// categorical breakdown of retrieval modes.
package overview

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/messages"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/styles"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driving"
)

// sampleSeries is the placeholder activity series for the sparkline
// panel. There is no time-series endpoint, so the panel is decorative
// and deliberately not wired to live data.
var sampleSeries = []int{2, 5, 3, 8, 6, 9, 4, 7, 10, 6, 8, 12}

// sparkRunes are the bar glyphs used by the sparkline, lowest to highest.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// emptyModesMessage is shown in place of the mode chart when there is
// no query activity to break down.
const emptyModesMessage = "No queries yet. Ask a question to populate this chart."

// View is the overview statistics panel.
type View struct {
	styles          *styles.Styles
	overviewService driving.OverviewService

	summary *domain.SummaryStatistics
	seq     int
	loading bool
	width   int
	height  int
}

// NewView creates a new overview panel.
func NewView(s *styles.Styles, overviewService driving.OverviewService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		overviewService: overviewService,
	}
}

// Init triggers the initial summary fetch.
func (v *View) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh starts a new summary fetch, superseding any in-flight one.
func (v *View) Refresh() tea.Cmd {
	v.seq++
	v.loading = true
	seq := v.seq
	svc := v.overviewService
	return func() tea.Msg {
		if svc == nil {
			return messages.OverviewLoaded{Seq: seq, Err: fmt.Errorf("overview service not available")}
		}
		stats, err := svc.Overview(context.Background())
		return messages.OverviewLoaded{Seq: seq, Stats: stats, Err: err}
	}
}

// Update handles messages for the overview panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.OverviewLoaded:
		if msg.Seq != v.seq {
			// Stale result from a superseded fetch.
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			// Failure degrades to the placeholder state, it is never
			// surfaced as an error banner.
			v.summary = nil
			return v, nil
		}
		v.summary = msg.Stats
		return v, nil
	}

	return v, nil
}

// View renders the overview panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.renderCards())
	b.WriteString("\n")

	charts := lipgloss.JoinHorizontal(
		lipgloss.Top,
		v.renderSparkline(),
		" ",
		v.renderModes(),
	)
	b.WriteString(charts)

	return b.String()
}

// renderCards renders the four scalar stat cards.
func (v *View) renderCards() string {
	numDocs, numChunks, numQuestions, groundedPct := 0, 0, 0, 0
	if v.summary != nil {
		numDocs = v.summary.NumDocuments
		numChunks = v.summary.NumChunks
		numQuestions = v.summary.NumQuestions
		groundedPct = v.summary.GroundedPercent()
	}

	cards := []struct {
		label string
		value string
	}{
		{"Documents", fmt.Sprintf("%d", numDocs)},
		{"Chunks", fmt.Sprintf("%d", numChunks)},
		{"Questions", fmt.Sprintf("%d", numQuestions)},
		{"Grounded", fmt.Sprintf("%d%%", groundedPct)},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		content := v.styles.CardValue.Render(c.value) + "\n" +
			v.styles.CardLabel.Render(c.label)
		rendered = append(rendered, v.styles.Card.Render(content))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderSparkline renders the sample activity sparkline panel.
func (v *View) renderSparkline() string {
	maxVal := 0
	for _, n := range sampleSeries {
		if n > maxVal {
			maxVal = n
		}
	}

	var line strings.Builder
	for _, n := range sampleSeries {
		idx := 0
		if maxVal > 0 {
			idx = n * (len(sparkRunes) - 1) / maxVal
		}
		line.WriteRune(sparkRunes[idx])
	}

	content := v.styles.Subtitle.Render("Activity") + "\n" +
		v.styles.Normal.Render(line.String()) + "\n" +
		v.styles.Muted.Render("sample data")

	return v.styles.Panel.Render(content)
}

// renderModes renders the categorical retrieval mode breakdown. Keys
// are sorted before palette colours are assigned by position so that
// identical data always renders identically.
func (v *View) renderModes() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Retrieval modes"))
	b.WriteString("\n")

	if v.summary == nil || len(v.summary.ModeCounts) == 0 {
		b.WriteString(v.styles.Muted.Render(emptyModesMessage))
		return v.styles.Panel.Render(b.String())
	}

	modes := make([]string, 0, len(v.summary.ModeCounts))
	for mode := range v.summary.ModeCounts {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	maxCount := 0
	for _, mode := range modes {
		if c := v.summary.ModeCounts[mode]; c > maxCount {
			maxCount = c
		}
	}

	labelWidth := 0
	for _, mode := range modes {
		if len(mode) > labelWidth {
			labelWidth = len(mode)
		}
	}

	for i, mode := range modes {
		count := v.summary.ModeCounts[mode]
		barStyle := lipgloss.NewStyle().Foreground(v.styles.ChartColor(i))
		b.WriteString(fmt.Sprintf("%-*s %s %d",
			labelWidth,
			strings.ToUpper(mode),
			barStyle.Render(bar(count, maxCount)),
			count,
		))
		if i < len(modes)-1 {
			b.WriteString("\n")
		}
	}

	return v.styles.Panel.Render(b.String())
}

// barWidth is the width of a full categorical bar in cells.
const barWidth = 16

// bar renders a horizontal bar proportional to count/maxCount.
func bar(count, maxCount int) string {
	if maxCount <= 0 {
		return ""
	}
	n := count * barWidth / maxCount
	if n < 1 && count > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// SetDimensions sets the panel dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Summary returns the currently loaded statistics, or nil when absent.
func (v *View) Summary() *domain.SummaryStatistics {
	return v.summary
}

// Loading reports whether a fetch is outstanding.
func (v *View) Loading() bool {
	return v.loading
}

// ModeLabels returns the uppercase mode labels in render order.
func (v *View) ModeLabels() []string {
	if v.summary == nil {
		return nil
	}
	modes := make([]string, 0, len(v.summary.ModeCounts))
	for mode := range v.summary.ModeCounts {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for i, mode := range modes {
		modes[i] = strings.ToUpper(mode)
	}
	return modes
}
