package segtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Every node is labelled with its coverage, its aggregate and, if non-zero,
// its pending delta. Padding leaves are drawn dashed.
func Tree2Dot(tree *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	tree.each(func(k, left, right int) {
		nd := tree.nodes[k]
		label := fmt.Sprintf("[%d,%d]\\nΣ %d", left, right, nd.aggregate)
		if nd.pending != 0 {
			label += fmt.Sprintf("\\n+%d", nd.pending)
		}
		styles := nodeDotStyles(left == right, nd.pending != 0, left >= tree.n)
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\"%s];\n", k, label, styles)
		if left != right {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", k, leftChild(k))
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", k, rightChild(k))
		}
	})
	if _, err := io.WriteString(w, nodelist); err != nil {
		T().Errorf("segtree DOT: %s", err.Error())
	}
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// each calls f for every node in pre-order, together with its coverage.
func (t *Tree) each(f func(k, left, right int)) {
	var walk func(k, left, right int)
	walk = func(k, left, right int) {
		f(k, left, right)
		if left == right {
			return
		}
		mid := midpoint(left, right)
		walk(leftChild(k), left, mid)
		walk(rightChild(k), mid+1, right)
	}
	walk(0, 0, t.width-1)
}

func nodeDotStyles(isleaf bool, lazy bool, padding bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	if lazy {
		s += ",color=black,fillcolor=\"#FFBB88\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	if padding {
		s += ",style=\"filled,dashed\""
	}
	return s
}
