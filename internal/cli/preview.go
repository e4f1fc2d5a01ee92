package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/heirclark/dayplan/pkg/schedule"
	"github.com/heirclark/dayplan/pkg/schedule/overlap"
)

const (
	slotMinutes  = 30 // one grid row per half hour
	rulerChars   = 7  // "07:00  "
	defaultLanes = 48 // lane width before the first WindowSizeMsg
)

// kindColors maps block kinds to grid cell colors.
var kindColors = map[string]lipgloss.Color{
	schedule.KindWorkout: lipgloss.Color("35"),
	schedule.KindMeal:    lipgloss.Color("220"),
	schedule.KindFast:    lipgloss.Color("75"),
	schedule.KindSleep:   lipgloss.Color("240"),
	schedule.KindCustom:  lipgloss.Color("36"),
}

// previewCommand creates the preview command for the interactive day grid.
func (c *CLI) previewCommand() *cobra.Command {
	var anchor string

	cmd := &cobra.Command{
		Use:   "preview [day.toml]",
		Short: "Interactive terminal preview of the day grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := schedule.Load(args[0])
			if err != nil {
				return err
			}
			if anchor != "" {
				clock, err := schedule.ParseClock(anchor)
				if err != nil {
					return fmt.Errorf("parse anchor: %w", err)
				}
				day.Anchor = clock
			}

			model := newPreviewModel(day)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "", "override the wake anchor (HH:MM)")

	return cmd
}

// =============================================================================
// PreviewModel - Interactive day grid
// =============================================================================

// previewBlock pairs a block with its normalized span and placement.
type previewBlock struct {
	block     schedule.Block
	span      overlap.Span
	placement overlap.Placement
}

// PreviewModel is the bubbletea model for the day grid preview.
type PreviewModel struct {
	day    *schedule.Day
	blocks []previewBlock
	cursor int
	lanes  int
}

// newPreviewModel computes the layout once up front; the model itself
// only navigates the result.
func newPreviewModel(day *schedule.Day) PreviewModel {
	layout := overlap.Compute(day.Blocks, day.Anchor)
	spans := overlap.Normalize(day.Blocks, day.Anchor)

	blocks := make([]previewBlock, 0, len(day.Blocks))
	for i, b := range day.Blocks {
		blocks = append(blocks, previewBlock{
			block:     b,
			span:      spans[i],
			placement: layout[b.ID],
		})
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].span.Start != blocks[j].span.Start {
			return blocks[i].span.Start < blocks[j].span.Start
		}
		return blocks[i].span.End < blocks[j].span.End
	})

	return PreviewModel{day: day, blocks: blocks, lanes: defaultLanes}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.blocks)-1 {
				m.cursor++
			}
		}
	case tea.WindowSizeMsg:
		m.lanes = msg.Width - rulerChars - 2
		if m.lanes < 10 {
			m.lanes = 10
		}
		if m.lanes > 100 {
			m.lanes = 100
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Day Preview"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("wake %s · %d blocks", m.day.Anchor, len(m.blocks))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	first, last := m.extent()
	for slot := first; slot < last; slot += slotMinutes {
		b.WriteString(m.renderRow(slot))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSelection())

	return b.String()
}

// extent returns the grid range in anchor-relative minutes, rounded
// outward to whole hours.
func (m PreviewModel) extent() (int, int) {
	if len(m.blocks) == 0 {
		return 0, 60
	}
	first, last := m.blocks[0].span.Start, m.blocks[0].span.End
	for _, pb := range m.blocks[1:] {
		first = min(first, pb.span.Start)
		last = max(last, pb.span.End)
	}
	first = (first / 60) * 60
	if last%60 != 0 {
		last = (last/60 + 1) * 60
	}
	return first, last
}

// renderRow paints one half-hour slot: a wall-clock label on the hour,
// then one styled cell per lane column.
func (m PreviewModel) renderRow(slot int) string {
	label := strings.Repeat(" ", rulerChars)
	if slot%60 == 0 {
		label = fmt.Sprintf("%-*s", rulerChars, m.wallClock(slot))
	}

	// owner[i] is the block index covering lane column i, or -1.
	owner := make([]int, m.lanes)
	for i := range owner {
		owner[i] = -1
	}
	for idx, pb := range m.blocks {
		if pb.span.Start >= slot+slotMinutes || pb.span.End <= slot {
			continue
		}
		lo := int(pb.placement.Left * float64(m.lanes))
		hi := int((pb.placement.Left + pb.placement.Width) * float64(m.lanes))
		for i := max(lo, 0); i < min(hi, m.lanes); i++ {
			owner[i] = idx
		}
	}

	var row strings.Builder
	row.WriteString(StyleDim.Render(label))
	for i := 0; i < m.lanes; {
		idx := owner[i]
		j := i
		for j < m.lanes && owner[j] == idx {
			j++
		}
		width := j - i
		if idx < 0 {
			row.WriteString(strings.Repeat(" ", width))
		} else {
			row.WriteString(m.cellStyle(idx).Render(strings.Repeat("█", width)))
		}
		i = j
	}
	return row.String()
}

func (m PreviewModel) cellStyle(idx int) lipgloss.Style {
	color, ok := kindColors[m.blocks[idx].block.Kind]
	if !ok {
		color = kindColors[schedule.KindCustom]
	}
	style := lipgloss.NewStyle().Foreground(color)
	if idx == m.cursor {
		style = style.Bold(true)
	} else {
		style = style.Faint(true)
	}
	return style
}

// renderSelection shows details for the highlighted block.
func (m PreviewModel) renderSelection() string {
	if len(m.blocks) == 0 {
		return StyleDim.Render("  (empty schedule)")
	}
	pb := m.blocks[m.cursor]

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(pb.block.DisplayTitle()))
	b.WriteString("\n  ")
	b.WriteString(StyleValue.Render(fmt.Sprintf("%s-%s", pb.block.Start, pb.block.End)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · %dm · lane %.0f%%–%.0f%%",
		pb.block.Kind,
		pb.span.Duration(),
		pb.placement.Left*100,
		(pb.placement.Left+pb.placement.Width)*100)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.blocks))))
	return b.String()
}

// wallClock converts anchor-relative minutes back to a wall-clock label.
func (m PreviewModel) wallClock(rel int) string {
	total := (m.day.Anchor.Minutes() + rel) % schedule.MinutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
