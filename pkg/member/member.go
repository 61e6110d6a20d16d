package member

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/matzehuels/infection/pkg/errors"
)

// ID identifies a member. IDs are unique within a graph and ordered
// naturally, which algorithms use to break ties deterministically.
type ID int

// String returns the decimal form of the ID.
func (id ID) String() string { return strconv.Itoa(int(id)) }

// Set is an unordered set of member IDs.
type Set map[ID]struct{}

// NewSet returns a set containing ids.
func NewSet(ids ...ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s Set) Add(id ID) { s[id] = struct{}{} }

// Has reports whether id is in the set.
func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of IDs in the set.
func (s Set) Len() int { return len(s) }

// Sorted returns the IDs in ascending order.
func (s Set) Sorted() []ID {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return Set{}
	}
	return maps.Clone(s)
}

// Equal reports whether both sets hold exactly the same IDs.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Member is a node in the coaching graph.
//
// Parents are the members coaching this one, children are the members this
// one coaches. Links is always exactly parents ∪ children. Mutation goes
// through [Graph] so that both endpoints of an edge change together.
type Member struct {
	ID ID
	// Version is the product version the member currently sees.
	Version int

	parents  Set
	children Set
	links    Set
}

func newMember(id ID) *Member {
	return &Member{
		ID:       id,
		parents:  Set{},
		children: Set{},
		links:    Set{},
	}
}

// Parents returns the IDs coaching this member. Read-only view.
func (m *Member) Parents() Set { return m.parents }

// Children returns the IDs coached by this member. Read-only view.
func (m *Member) Children() Set { return m.children }

// Links returns parents ∪ children. Read-only view.
func (m *Member) Links() Set { return m.links }

// Degree returns the number of distinct linked members.
func (m *Member) Degree() int { return len(m.links) }

// HasLink reports whether id is a parent or child of the member.
func (m *Member) HasLink(id ID) bool { return m.links.Has(id) }

func (m *Member) addParent(id ID) {
	m.parents.Add(id)
	m.recomputeLinks()
}

func (m *Member) addChild(id ID) {
	m.children.Add(id)
	m.recomputeLinks()
}

func (m *Member) recomputeLinks() {
	links := make(Set, len(m.parents)+len(m.children))
	for id := range m.parents {
		links.Add(id)
	}
	for id := range m.children {
		links.Add(id)
	}
	m.links = links
}

// UnknownMemberError is returned when an operation references an ID that is
// not present in the graph.
type UnknownMemberError struct {
	ID ID
}

// Error implements the error interface.
func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("unknown member %d", e.ID)
}

// Code returns the error code for this error type.
func (e *UnknownMemberError) Code() errors.Code {
	return errors.ErrCodeUnknownMember
}
