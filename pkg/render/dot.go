// Package render exports behavior-tree documents to Graphviz DOT and
// SVG for external viewers. It draws the tree shape only; interactive
// canvas rendering is the host editor's job.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/agatho/bottree/pkg/btree"
	"github.com/agatho/bottree/pkg/document"
)

// Options configures DOT output.
type Options struct {
	// Detailed includes type and parameter summaries in node labels.
	// When false, only the node name is shown.
	Detailed bool
}

// ToDOT converts a document's tree to Graphviz DOT format. Nodes are
// shaped by category: composites as boxes, decorators as diamonds,
// leaves as rounded boxes. Disabled nodes are drawn dashed. Edges
// follow children order, which is the execution priority order.
func ToDOT(d *document.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph BehaviorTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for i := range d.Nodes {
		n := &d.Nodes[i]
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := range d.Nodes {
		for _, c := range d.Nodes[i].Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", d.Nodes[i].ID, c)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *btree.Node, detailed bool) string {
	if !detailed {
		return n.Name
	}

	parts := []string{string(n.Type)}
	switch {
	case n.Action != nil:
		parts = append(parts, n.Action.ActionType)
		if n.Action.SpellID != 0 {
			parts = append(parts, fmt.Sprintf("spell %d", n.Action.SpellID))
		}
	case n.Condition != nil:
		parts = append(parts, fmt.Sprintf("%s %s %s", n.Condition.ConditionType, n.Condition.Operator, n.Condition.Value))
	case n.Decorator != nil && n.Decorator.GuardCondition != "":
		parts = append(parts, n.Decorator.GuardCondition)
	}

	return n.Name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n *btree.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}

	style := "filled"
	switch n.Category() {
	case btree.CategoryComposite:
		attrs = append(attrs, "shape=box", "fillcolor=lightblue")
	case btree.CategoryDecorator:
		attrs = append(attrs, "shape=diamond", "fillcolor=lightyellow")
	case btree.CategoryLeaf:
		style = "rounded,filled"
		attrs = append(attrs, "shape=box", "fillcolor=white")
	}
	if n.Disabled {
		style += ",dashed"
	}

	return append(attrs, fmt.Sprintf("style=%q", style))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
