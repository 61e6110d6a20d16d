package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/infection/pkg/member"
)

// chain builds 0 -> 1 -> 2 -> 3 plus an isolated member 4.
func chain(t *testing.T) *member.Graph {
	t.Helper()
	g := member.New()
	for i := 0; i < 5; i++ {
		g.AddMember(member.ID(i))
	}
	for _, e := range [][2]member.ID{{0, 1}, {1, 2}, {2, 3}} {
		if err := g.AddCoaching(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m MemberListModel, keys ...string) MemberListModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(MemberListModel)
	}
	return m
}

func TestMemberListModel_Rows(t *testing.T) {
	m := NewMemberListModel(chain(t), member.NewSet(0, 1), 0)

	if len(m.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(m.Rows))
	}
	r := m.Rows[1]
	if r.ID != 1 || !r.Infected || r.Parents != 1 || r.Children != 1 || r.Badness != 1 {
		t.Errorf("Rows[1] = %+v", r)
	}
}

func TestMemberListModel_Navigation(t *testing.T) {
	m := NewMemberListModel(chain(t), member.NewSet(0, 1, 2), 0)

	tests := []struct {
		keys []string
		want member.ID
	}{
		{nil, 0},
		{[]string{"down"}, 1},
		{[]string{"j", "j"}, 2},
		{[]string{"j", "j", "j", "j"}, 2},
		{[]string{"G", "k"}, 1},
		{[]string{"G", "up", "g"}, 0},
		{[]string{"up"}, 0},
	}
	for _, tt := range tests {
		got := press(m, tt.keys...)
		cur, ok := got.Current()
		if !ok || cur.ID != tt.want {
			t.Errorf("keys %v: current = %d, want %d", tt.keys, cur.ID, tt.want)
		}
	}
}

func TestMemberListModel_Boundary(t *testing.T) {
	m := NewMemberListModel(chain(t), member.NewSet(0, 1), 0)
	m = press(m, "j", "b")

	if !m.ShowBoundary || m.Cursor != 0 {
		t.Fatalf("ShowBoundary = %v, Cursor = %d", m.ShowBoundary, m.Cursor)
	}
	if len(m.Rows) != 3 || m.Rows[2].ID != 2 || m.Rows[2].Infected {
		t.Fatalf("boundary rows = %+v", m.Rows)
	}

	m = press(m, "b")
	if len(m.Rows) != 2 {
		t.Errorf("len(Rows) after second toggle = %d, want 2", len(m.Rows))
	}
}

func TestMemberListModel_Scroll(t *testing.T) {
	g := member.New()
	ids := member.Set{}
	for i := 0; i < 30; i++ {
		g.AddMember(member.ID(i))
		ids.Add(member.ID(i))
	}
	m := NewMemberListModel(g, ids, 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = next.(MemberListModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}

	m = press(m, "j", "j", "j", "j", "j", "j")
	if m.Cursor != 6 || m.Offset != 2 {
		t.Errorf("Cursor, Offset = %d, %d; want 6, 2", m.Cursor, m.Offset)
	}
	m = press(m, "g")
	if m.Offset != 0 {
		t.Errorf("Offset after home = %d, want 0", m.Offset)
	}
}

func TestMemberListModel_Quit(t *testing.T) {
	m := NewMemberListModel(chain(t), member.NewSet(0), 0)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestMemberListModel_View(t *testing.T) {
	m := NewMemberListModel(chain(t), member.NewSet(0, 1), 0)
	m = press(m, "j")

	view := m.View()
	for _, want := range []string{"Infection from member 0", "Member", "infected", "links: ", "0*", "[2/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	empty := NewMemberListModel(chain(t), member.Set{}, 4).View()
	if !strings.Contains(empty, "no infected members") {
		t.Errorf("empty View() = %q", empty)
	}
}
