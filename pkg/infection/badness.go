package infection

import (
	"github.com/matzehuels/infection/pkg/member"
)

// Badness scores m against the current infected set: links still outside
// minus links already inside. Lower is better.
func Badness(m *member.Member, infected member.Set) int {
	out, in := 0, 0
	for l := range m.Links() {
		if infected.Has(l) {
			in++
		} else {
			out++
		}
	}
	return out - in
}

// BoundaryEdges counts links with exactly one infected endpoint.
func BoundaryEdges(g *member.Graph, infected member.Set) int {
	n := 0
	for id := range infected {
		links, err := g.Links(id)
		if err != nil {
			continue
		}
		for l := range links {
			if !infected.Has(l) {
				n++
			}
		}
	}
	return n
}

// InternalEdges counts links with both endpoints infected.
func InternalEdges(g *member.Graph, infected member.Set) int {
	n := 0
	for id := range infected {
		links, err := g.Links(id)
		if err != nil {
			continue
		}
		for l := range links {
			if infected.Has(l) {
				n++
			}
		}
	}
	return n / 2
}
