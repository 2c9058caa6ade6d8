package scenegraph

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dump returns an indented listing of the subtree, one node per line with its local
// position and geometry. Useful in logs and test failures.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, cases.Title(language.English), n, 0)
	return b.String()
}

func dump(b *strings.Builder, title cases.Caser, n *Node, level int) {
	b.WriteString(strings.Repeat("    ", level))
	name := n.Name
	if name == "" {
		name = "<unnamed>"
	}
	p := n.Transform.Position
	fmt.Fprintf(b, "%s [%g, %g, %g]", name, p[0], p[1], p[2])
	if g := n.Geometry; g != nil {
		fmt.Fprintf(b, " %s %v", title.String(g.Kind.String()), g.Extent())
	}
	if n.Animation != nil {
		b.WriteString(" (animated)")
	}
	b.WriteByte('\n')
	for _, kid := range n.children {
		dump(b, title, kid, level+1)
	}
}
