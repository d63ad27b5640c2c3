package nodecanvas

import (
	"fmt"
	"io"
	"os"
)

// debugOut is where debug diagnostics are written. Tests swap it.
var debugOut io.Writer = os.Stderr

// Logf writes a single diagnostic line prefixed with [nodecanvas] when debug
// mode is enabled. It is a no-op otherwise.
func (s *Scene) Logf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[nodecanvas] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("nodecanvas debug: %s on disposed node %q", op, n.Name))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if tree depth exceeds debugMaxTreeDepth.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[nodecanvas] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
