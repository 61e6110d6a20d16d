// Package render draws member graphs with an infected set highlighted.
//
// # Overview
//
// [ToDOT] produces Graphviz DOT source for an undirected coaching graph:
//
//   - Infected members are filled
//   - The seed member is drawn with a bold outline
//   - Edges crossing the infection boundary are dashed
//
// [RenderSVG] and [RenderPNG] lay the DOT out in process using
// [github.com/goccy/go-graphviz], so no Graphviz installation is needed.
//
//	dot := render.ToDOT(g, infected, render.Options{Seed: 42})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Scope
//
// Real graphs are far too large to draw whole. By default only the infected
// members and their direct neighbours are included ([ScopeInfected]), which
// is exactly what is needed to see the boundary. [ScopeAll] draws every
// member.
package render
