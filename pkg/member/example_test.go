package member_test

import (
	"fmt"

	"github.com/matzehuels/infection/pkg/member"
)

func ExampleGraph_basic() {
	// A coaches B and C; C coaches D.
	g := member.New()
	for id := member.ID(1); id <= 4; id++ {
		_, _ = g.AddMember(id)
	}
	_ = g.AddCoaching(1, 2)
	_ = g.AddCoaching(1, 3)
	_ = g.AddCoaching(3, 4)
	g.Freeze()

	links, _ := g.Links(3)
	fmt.Println("Members:", g.Len())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Links of 3:", links.Sorted())
	// Output:
	// Members: 4
	// Edges: 3
	// Links of 3: [1 4]
}

func ExampleFromAdjacency() {
	g, err := member.FromAdjacency(map[member.ID]member.Adjacency{
		10: {Children: []member.ID{11, 12}},
		11: {},
		12: {},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	m, _ := g.Member(11)
	fmt.Println("Parents of 11:", m.Parents().Sorted())
	// Output:
	// Parents of 11: [10]
}
