package scalargrad

// Backward performs reverse-mode autodiff from this node to all ancestors.
//
// Process:
// 1) Build a topological order so each node appears only after its inputs.
// 2) Seed the terminal gradient with 1 (dOutput/dOutput = 1).
// 3) Traverse the order in reverse and accumulate gradients with the chain
//    rule: dOutput/dChild += dOutput/dNode * dNode/dChild.
//
// Accumulation is additive on purpose. A node feeding several downstream
// nodes receives the sum of all path contributions, and a second Backward
// call without a reset adds on top of the first. Use ZeroGrad to reset.
//
// Calling Backward on a node that is not the sink of the whole graph is
// fine: gradients are computed within that node's own ancestor set only.
func (v *Value) Backward() {
	topo := []*Value{}
	visited := make(map[*Value]bool)

	var buildTopo func(*Value)
	buildTopo = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		for _, child := range node.Children {
			buildTopo(child)
		}
		topo = append(topo, node)
	}
	buildTopo(v)

	v.Grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		curr := topo[i]
		for j, child := range curr.Children {
			child.Grad += curr.LocalGrads[j] * curr.Grad
		}
	}
}

// ZeroGrad resets the gradient of this node and of every ancestor reachable
// through its inputs. Call it between backward passes when independent
// results are wanted; without it gradients accumulate across passes.
func (v *Value) ZeroGrad() {
	visited := make(map[*Value]bool)

	var clear func(*Value)
	clear = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		node.Grad = 0
		for _, child := range node.Children {
			clear(child)
		}
	}
	clear(v)
}
