// Package member provides the undirected coaching graph that infection
// algorithms operate on.
//
// # Overview
//
// A [Member] is a user of the product. Members coach other members: the
// coach is a parent of the coachee, and the coachee is a child of the coach.
// A member may have any number of coaches and coachees. For infection
// purposes direction does not matter, so every member also exposes its
// links, the union of its parents and children.
//
// # Basic Usage
//
// Create a graph with [New], add members with [Graph.AddMember], and connect
// them with [Graph.AddCoaching]. Edges are always written to both endpoints
// so the graph never holds a one-sided relationship:
//
//	g := member.New()
//	g.AddMember(1)
//	g.AddMember(2)
//	g.AddCoaching(1, 2) // 1 coaches 2
//
//	links, _ := g.Links(2) // {1}
//
// Graphs can also be built in one step from the adjacency shape produced by
// generators and loaders with [FromAdjacency].
//
// # Links
//
// Each member's link set is recomputed whenever its parents or children
// change, so reading it is a single map lookup. Link sets carry no ordering;
// use [Set.Sorted] when iteration order matters.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Build it from a single
// goroutine, then call [Graph.Freeze]. A frozen graph rejects further writes
// with [ErrFrozen] and may be read from any number of goroutines, which is
// how the infection algorithms expect to receive it.
package member
