// Package infection selects which members of a coaching graph receive a
// change, starting from a single seed member.
//
// # Total Infection
//
// [Total] returns the seed's whole connected component. Anyone who coaches
// or is coached by an infected member is infected as well, so no
// relationship ever crosses the boundary between old and new behaviour.
//
// # Limited Infection
//
// [Limited] grows a connected set from the seed until it reaches a target
// size range [minUsers, maxUsers], preferring members that add few boundary
// edges. Each candidate is scored by its badness: the number of its links
// still outside the infected set minus the number already inside. The
// lowest-badness candidate is added next, ties going to the smaller ID.
//
// Once the set is larger than minUsers every further pick is optional. The
// selector keeps a running sum of the optional picks' badness. While the sum
// stays non-negative those picks are held as a pending tail; as soon as it
// drops below zero the tail is forgiven and the sum restarts. Whatever tail
// is still pending when the loop ends is removed from the result, so a run
// of additions that only made the boundary worse is never returned.
//
// # Concurrency
//
// Both algorithms only read the graph and own all of their working state, so
// any number of calls may run in parallel against the same frozen
// [member.Graph]. [LimitedContext] adds cooperative cancellation for very
// large selections.
package infection
