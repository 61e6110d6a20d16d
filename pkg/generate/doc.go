// Package generate builds random coaching graphs for exercising the
// infection algorithms.
//
// Graphs follow a layered model described by a [Template]. Layer 1 holds
// members who only get coached, each following layer holds their coaches,
// and so on up the hierarchy. Every layer takes a percentage of the graph
// and, unless it is the top layer, a [Distribution] of how many coaches its
// members have. Whether a layer receives parents is an explicit property of
// the layer ([Layer.HasDist]), never a consequence of iteration order.
//
// Templates can be written in TOML and loaded with [LoadTemplate]:
//
//	name = "school"
//
//	[[layers]]
//	pct = 0.9
//	dist = { min = 1, cdf = [0.8, 1.0] }
//
//	[[layers]]
//	pct = 0.1
//
// Generation is deterministic for a given seed:
//
//	g, err := generate.Generate(generate.DefaultTemplate(), 10000, generate.WithSeed(42))
package generate
