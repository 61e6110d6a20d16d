package infection

import (
	"github.com/matzehuels/infection/pkg/member"
)

// Total returns the connected component containing seed, seed included.
// Returns an *member.UnknownMemberError if seed is not in g.
func Total(g *member.Graph, seed member.ID) (member.Set, error) {
	if !g.Has(seed) {
		return nil, &member.UnknownMemberError{ID: seed}
	}

	infected := member.NewSet(seed)
	queue := []member.ID{seed}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		links, _ := g.Links(id)
		for l := range links {
			if !infected.Has(l) {
				infected.Add(l)
				queue = append(queue, l)
			}
		}
	}
	return infected, nil
}

// Components partitions g into connected components, ordered by their
// smallest member ID.
func Components(g *member.Graph) []member.Set {
	seen := member.Set{}
	var out []member.Set
	for _, id := range g.IDs() {
		if seen.Has(id) {
			continue
		}
		comp, _ := Total(g, id)
		for c := range comp {
			seen.Add(c)
		}
		out = append(out, comp)
	}
	return out
}
