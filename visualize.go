package scalargrad

import (
	"fmt"
	"strings"
)

// DrawGraph renders a node's dependency graph as a Graphviz DOT document.
//
// Each reachable node becomes a small table showing its value, gradient and
// the operation that created it (leaves are labeled "input"); each edge runs
// from an input node up to the node built from it. A node reused by several
// downstream nodes is emitted once, so shared subgraphs render as the DAG
// they are rather than as a tree. Node IDs follow traversal order, which
// makes the output deterministic for a given graph shape.
//
// The graph is only read, never mutated. Pipe the result through `dot -Tpng`
// to get an image.
func DrawGraph(root *Value) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("\trankdir=BT;\n")
	b.WriteString("\tnode [shape=plaintext];\n")

	ids := make(map[*Value]int)
	drawNode := func(n *Value) int {
		if id, ok := ids[n]; ok {
			return id
		}
		id := len(ids)
		ids[n] = id

		opCell := `<TD BGCOLOR="#c9c9c9"><FONT FACE="Courier" POINT-SIZE="12">input</FONT></TD>`
		if n.Op != "" {
			opCell = fmt.Sprintf(`<TD BGCOLOR="#c2ebff"><FONT COLOR="#004261" FACE="Courier" POINT-SIZE="12">%s</FONT></TD>`, htmlEscape(n.Op))
		}
		fmt.Fprintf(&b,
			"\tn%d [label=<<TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"0\" CELLPADDING=\"5\">"+
				"<TR><TD>value = %.4f</TD></TR>"+
				"<TR><TD>grad = %.4f</TD></TR>"+
				"<TR>%s</TR>"+
				"</TABLE>>];\n",
			id, n.Data, n.Grad, opCell)
		return id
	}

	drawnEdges := make(map[[2]int]bool)
	visited := make(map[*Value]bool)

	var draw func(n *Value)
	draw = func(n *Value) {
		if visited[n] {
			return
		}
		visited[n] = true
		nid := drawNode(n)
		for _, child := range n.Children {
			cid := drawNode(child)
			// A node multiplied by itself would otherwise produce the
			// same edge twice.
			edge := [2]int{cid, nid}
			if !drawnEdges[edge] {
				drawnEdges[edge] = true
				fmt.Fprintf(&b, "\tn%d -> n%d;\n", cid, nid)
			}
			draw(child)
		}
	}
	draw(root)

	b.WriteString("}\n")
	return b.String()
}

// htmlEscape covers the characters DOT HTML-like labels care about. The op
// tags used by the engine only ever hit "^" (harmless) but a caller-supplied
// tag should not be able to break the label markup.
func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
