package member

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrDuplicateMember is returned by [Graph.AddMember] when the ID is
	// already present.
	ErrDuplicateMember = errors.New("duplicate member")

	// ErrSelfLoop is returned by [Graph.AddCoaching] when a member would
	// coach itself.
	ErrSelfLoop = errors.New("member cannot coach itself")

	// ErrFrozen is returned by every mutating method once [Graph.Freeze]
	// has been called.
	ErrFrozen = errors.New("graph is frozen")

	// ErrAsymmetricEdge is returned by [Graph.Validate] when an edge is
	// recorded on only one of its endpoints.
	ErrAsymmetricEdge = errors.New("edge recorded on one endpoint only")

	// ErrStaleLinks is returned by [Graph.Validate] when a member's links
	// differ from the union of its parents and children.
	ErrStaleLinks = errors.New("links differ from parents ∪ children")
)

// Adjacency is the graph construction input for a single member: who
// coaches it and whom it coaches.
type Adjacency struct {
	Parents  []ID
	Children []ID
	Version  int
}

// Graph maps member IDs to members. Edges are implied by the members'
// parent and child sets and are always symmetric.
//
// The zero value is not usable - use New or FromAdjacency.
type Graph struct {
	members map[ID]*Member
	edges   int
	frozen  bool
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{members: make(map[ID]*Member)}
}

// FromAdjacency builds a graph from the id → (parents, children) mapping.
//
// Every ID referenced as a parent or child must itself be a key of adj,
// otherwise an *UnknownMemberError is returned. Relationships declared on
// only one side are added to both. The returned graph is not frozen.
func FromAdjacency(adj map[ID]Adjacency) (*Graph, error) {
	g := New()
	ids := slices.Sorted(maps.Keys(adj))
	for _, id := range ids {
		m, _ := g.AddMember(id)
		m.Version = adj[id].Version
	}
	for _, id := range ids {
		a := adj[id]
		for _, p := range a.Parents {
			if err := g.AddCoaching(p, id); err != nil {
				return nil, fmt.Errorf("member %d parent %d: %w", id, p, err)
			}
		}
		for _, c := range a.Children {
			if err := g.AddCoaching(id, c); err != nil {
				return nil, fmt.Errorf("member %d child %d: %w", id, c, err)
			}
		}
	}
	return g, nil
}

// AddMember adds a member with fresh, empty relationship sets.
// Returns ErrDuplicateMember if the ID exists, or ErrFrozen.
func (g *Graph) AddMember(id ID) (*Member, error) {
	if g.frozen {
		return nil, ErrFrozen
	}
	if _, exists := g.members[id]; exists {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateMember, id)
	}
	m := newMember(id)
	g.members[id] = m
	return m, nil
}

// EnsureMember returns the member with the given ID, adding it first if
// needed. A frozen graph only fails when the member would have to be added.
func (g *Graph) EnsureMember(id ID) (*Member, error) {
	if m, ok := g.members[id]; ok {
		return m, nil
	}
	return g.AddMember(id)
}

// AddCoaching records that coach coaches coachee. Both members must exist.
// The coachee joins the coach's children and the coach joins the coachee's
// parents in the same call. Adding an existing edge is a no-op.
func (g *Graph) AddCoaching(coach, coachee ID) error {
	if g.frozen {
		return ErrFrozen
	}
	if coach == coachee {
		return fmt.Errorf("%w: %d", ErrSelfLoop, coach)
	}
	c, ok := g.members[coach]
	if !ok {
		return &UnknownMemberError{ID: coach}
	}
	e, ok := g.members[coachee]
	if !ok {
		return &UnknownMemberError{ID: coachee}
	}
	if c.children.Has(coachee) {
		return nil
	}
	// A reverse edge already links the pair; only the link count stays put.
	if !c.links.Has(coachee) {
		g.edges++
	}
	c.addChild(coachee)
	e.addParent(coach)
	return nil
}

// Member returns the member with the given ID and true, or nil and false.
func (g *Graph) Member(id ID) (*Member, bool) {
	m, ok := g.members[id]
	return m, ok
}

// Links returns the link set of id, or an *UnknownMemberError.
// The returned set must not be modified.
func (g *Graph) Links(id ID) (Set, error) {
	m, ok := g.members[id]
	if !ok {
		return nil, &UnknownMemberError{ID: id}
	}
	return m.links, nil
}

// Has reports whether id is a member of the graph.
func (g *Graph) Has(id ID) bool {
	_, ok := g.members[id]
	return ok
}

// Len returns the number of members.
func (g *Graph) Len() int { return len(g.members) }

// EdgeCount returns the number of distinct undirected links.
func (g *Graph) EdgeCount() int { return g.edges }

// IDs returns all member IDs in ascending order.
func (g *Graph) IDs() []ID {
	return slices.Sorted(maps.Keys(g.members))
}

// Members returns all members ordered by ID. The pointers refer to the
// graph's own members.
func (g *Graph) Members() []*Member {
	out := make([]*Member, 0, len(g.members))
	for _, id := range g.IDs() {
		out = append(out, g.members[id])
	}
	return out
}

// Freeze makes the graph read-only. It is safe to call more than once.
func (g *Graph) Freeze() { g.frozen = true }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// SetVersion assigns version v to every member in ids. It is the one
// mutation allowed on a frozen graph because it never touches edges.
// Returns an *UnknownMemberError before changing anything if an ID is absent.
func (g *Graph) SetVersion(ids Set, v int) error {
	for id := range ids {
		if _, ok := g.members[id]; !ok {
			return &UnknownMemberError{ID: id}
		}
	}
	for id := range ids {
		g.members[id].Version = v
	}
	return nil
}

// Validate checks that every edge is recorded on both endpoints, that
// referenced members exist, and that no member's links are stale.
func (g *Graph) Validate() error {
	for _, id := range g.IDs() {
		m := g.members[id]
		for c := range m.children {
			other, ok := g.members[c]
			if !ok {
				return &UnknownMemberError{ID: c}
			}
			if !other.parents.Has(id) {
				return fmt.Errorf("%w: %d -> %d", ErrAsymmetricEdge, id, c)
			}
		}
		for p := range m.parents {
			other, ok := g.members[p]
			if !ok {
				return &UnknownMemberError{ID: p}
			}
			if !other.children.Has(id) {
				return fmt.Errorf("%w: %d <- %d", ErrAsymmetricEdge, id, p)
			}
		}
		if len(m.links) != len(m.parents)+len(m.children)-overlap(m.parents, m.children) {
			return fmt.Errorf("%w: member %d", ErrStaleLinks, id)
		}
		for l := range m.links {
			if !m.parents.Has(l) && !m.children.Has(l) {
				return fmt.Errorf("%w: member %d", ErrStaleLinks, id)
			}
		}
	}
	return nil
}

func overlap(a, b Set) int {
	n := 0
	for id := range a {
		if b.Has(id) {
			n++
		}
	}
	return n
}
