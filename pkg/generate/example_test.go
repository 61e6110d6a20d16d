package generate_test

import (
	"fmt"

	"github.com/matzehuels/infection/pkg/generate"
)

func ExampleGenerate() {
	g, err := generate.Generate(generate.DefaultTemplate(), 10000, generate.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Members:", g.Len())
	fmt.Println("Frozen:", g.Frozen())
	// Output:
	// Members: 10000
	// Frozen: true
}

func ExampleLayerRanges() {
	for i, r := range generate.LayerRanges(generate.DefaultTemplate(), 100) {
		fmt.Printf("layer %d: [%d, %d)\n", i+1, r.Start, r.End)
	}
	// Output:
	// layer 1: [0, 80)
	// layer 2: [80, 92)
	// layer 3: [92, 100)
}
