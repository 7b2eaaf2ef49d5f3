package main

import (
	"fmt"

	"scalargrad"
)

// Builds a small expression graph, backpropagates through it and prints the
// gradients plus a Graphviz rendering of the graph.
func main() {
	a := scalargrad.NewValue(1.5)
	b := scalargrad.NewValue(-4.0)

	// c = a^3 / 5
	// d = c + relu(b^2)
	c := a.Pow(3).DivScalar(5)
	d := c.Add(b.Pow(2).Relu())

	d.Backward()

	fmt.Println("forward:")
	fmt.Printf("  c = %v\n", c)
	fmt.Printf("  d = %v\n", d)
	fmt.Println("gradients:")
	fmt.Printf("  dd/da = %.4f\n", a.Grad)
	fmt.Printf("  dd/db = %.4f\n", b.Grad)
	fmt.Println()
	fmt.Println("graph (pipe through `dot -Tpng` to render):")
	fmt.Print(scalargrad.DrawGraph(d))
}
