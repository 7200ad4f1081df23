package declgraph

import (
	"bytes"
	"fmt"
	"strings"
)

// kindStyles holds the Mermaid style for each kind of node.
// Declared tuples are drawn with the default style.
var kindStyles = map[Kind]string{
	Mapped:   "fill:#e8f0fe",
	Filtered: "fill:#e6f4ea",
	Reduced:  "fill:#fef7e0",
}

// MarshalMermaid returns the graph as a Mermaid flowchart. Edges
// point from a declaration to the declarations that refer to it,
// so the chart reads in the order the code is derived.
func (g *Graph) MarshalMermaid() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for i, n := range g.nodes {
		if n.Label != "" && n.Label != n.Name {
			fmt.Fprintf(&buf, "  %s[\"%s\"]\n", n.Name, quoteLabel(n.Label))
		}
		if style := kindStyles[n.Kind]; style != "" {
			fmt.Fprintf(&buf, "  style %s %s\n", n.Name, style)
		}
		for _, u := range g.users[i] {
			fmt.Fprintf(&buf, "  %s-->%s\n", n.Name, g.nodes[u].Name)
		}
	}
	return buf.Bytes(), nil
}

var labelReplacer = strings.NewReplacer(`"`, "#quot;", "\n", " ")

func quoteLabel(s string) string {
	return labelReplacer.Replace(s)
}
