package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/member"
)

var (
	listDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	listSeedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// =============================================================================
// MemberListModel - Interactive infection explorer
// =============================================================================

// memberRow is one line of the explorer table.
type memberRow struct {
	ID       member.ID
	Infected bool
	Version  int
	Parents  int
	Children int
	Badness  int
}

// MemberListModel is the bubbletea model for browsing an infected set.
// Infected members are listed first; pressing b adds the healthy members
// on the boundary.
type MemberListModel struct {
	Graph    *member.Graph
	Infected member.Set
	Seed     member.ID

	Rows         []memberRow
	ShowBoundary bool
	Cursor       int
	Height       int
	Offset       int
}

// NewMemberListModel creates an explorer over infected.
func NewMemberListModel(g *member.Graph, infected member.Set, seed member.ID) MemberListModel {
	m := MemberListModel{
		Graph:    g,
		Infected: infected,
		Seed:     seed,
		Height:   15,
	}
	m.Rows = m.buildRows()
	return m
}

func (m MemberListModel) buildRows() []memberRow {
	ids := m.Infected.Sorted()
	if m.ShowBoundary {
		boundary := member.Set{}
		for _, id := range ids {
			links, _ := m.Graph.Links(id)
			for l := range links {
				if !m.Infected.Has(l) {
					boundary.Add(l)
				}
			}
		}
		ids = append(ids, boundary.Sorted()...)
	}

	rows := make([]memberRow, 0, len(ids))
	for _, id := range ids {
		mem, ok := m.Graph.Member(id)
		if !ok {
			continue
		}
		rows = append(rows, memberRow{
			ID:       id,
			Infected: m.Infected.Has(id),
			Version:  mem.Version,
			Parents:  mem.Parents().Len(),
			Children: mem.Children().Len(),
			Badness:  infection.Badness(mem, m.Infected),
		})
	}
	return rows
}

// Current returns the row under the cursor.
func (m MemberListModel) Current() (memberRow, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Rows) {
		return memberRow{}, false
	}
	return m.Rows[m.Cursor], true
}

func (m MemberListModel) Init() tea.Cmd {
	return nil
}

func (m MemberListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Rows))
		case "end", "G":
			m.move(len(m.Rows))
		case "b":
			m.ShowBoundary = !m.ShowBoundary
			m.Rows = m.buildRows()
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the rows, and scrolls the
// window to keep it visible.
func (m *MemberListModel) move(delta int) {
	if len(m.Rows) == 0 {
		m.Cursor, m.Offset = 0, 0
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Rows)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m MemberListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Infection from member %d", m.Seed)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  b boundary  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  no infected members"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		state := "healthy"
		if r.Infected {
			state = "infected"
		}
		rows = append(rows, []string{
			cursor, r.ID.String(), state, itoa(r.Version), itoa(r.Parents), itoa(r.Children), itoa(r.Badness),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Member", "State", "Version", "Coaches", "Coachees", "Badness").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			r := m.Rows[idx]
			base := lipgloss.NewStyle()
			switch {
			case r.ID == m.Seed:
				base = listSeedStyle
			case r.Infected:
				base = base.Foreground(colorRed)
			default:
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				base = base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if cur, ok := m.Current(); ok {
		b.WriteString(m.linksLine(cur.ID))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// linksLine lists the links of id, marking infected ones.
func (m MemberListModel) linksLine(id member.ID) string {
	links, err := m.Graph.Links(id)
	if err != nil {
		return ""
	}
	parts := make([]string, 0, len(links))
	for _, l := range links.Sorted() {
		if m.Infected.Has(l) {
			parts = append(parts, StyleInfected.Render(l.String()+"*"))
		} else {
			parts = append(parts, l.String())
		}
	}
	if len(parts) == 0 {
		return listDimStyle.Render("  no links")
	}
	return "  " + listDimStyle.Render("links: ") + strings.Join(parts, ", ")
}
