package arbor

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set stage debug flag so that node
// operations (which run without consulting the stage) can check it
// cheaply. Only valid with a single Stage; multiple Stages with differing
// debug modes will reflect whichever called SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, tree
// operations on destroyed nodes panic, and tree depth and child count
// warnings are printed to stderr.
func (st *Stage) SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// node is used in a tree operation. In release mode callers skip this
// entirely.
func debugCheckDestroyed(n *Node, op string) {
	if n.destroyed {
		panic(fmt.Sprintf("arbor debug: %s on destroyed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
