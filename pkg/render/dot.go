package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/member"
)

// Scope selects which members are drawn.
type Scope int

const (
	// ScopeInfected draws the infected set and its direct neighbours.
	ScopeInfected Scope = iota
	// ScopeAll draws every member of the graph.
	ScopeAll
)

// Options configures DOT generation.
type Options struct {
	// Seed is drawn with a bold outline.
	Seed  member.ID
	Scope Scope
	// Detailed adds the member's version and badness to its label.
	Detailed bool
}

const (
	fillInfected = "#f4a261"
	fillHealthy  = "white"
)

// ToDOT converts g to Graphviz DOT with the infected members highlighted.
// Members and edges are emitted in ID order so the output is stable.
func ToDOT(g *member.Graph, infected member.Set, opts Options) string {
	scope := scopeMembers(g, infected, opts)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	ids := scope.Sorted()
	for _, id := range ids {
		m, _ := g.Member(id)
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(m, infected, opts.Detailed))}
		if infected.Has(id) {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fillInfected))
		} else {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fillHealthy))
		}
		if id == opts.Seed {
			attrs = append(attrs, "penwidth=3")
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, id := range ids {
		m, _ := g.Member(id)
		for _, l := range m.Links().Sorted() {
			if l < id || !scope.Has(l) {
				continue
			}
			if infected.Has(id) != infected.Has(l) {
				fmt.Fprintf(&buf, "  %d -- %d [style=dashed];\n", id, l)
			} else {
				fmt.Fprintf(&buf, "  %d -- %d;\n", id, l)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func scopeMembers(g *member.Graph, infected member.Set, opts Options) member.Set {
	if opts.Scope == ScopeAll {
		return member.NewSet(g.IDs()...)
	}
	scope := member.Set{}
	for id := range infected {
		links, err := g.Links(id)
		if err != nil {
			continue
		}
		scope.Add(id)
		for l := range links {
			scope.Add(l)
		}
	}
	if g.Has(opts.Seed) {
		scope.Add(opts.Seed)
	}
	return scope
}

func fmtLabel(m *member.Member, infected member.Set, detailed bool) string {
	if !detailed {
		return m.ID.String()
	}
	return fmt.Sprintf("%d\nv%d\nbad %d", m.ID, m.Version, infection.Badness(m, infected))
}
