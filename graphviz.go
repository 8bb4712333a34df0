package fsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// edge groups every event leading from one state to another.
type edge struct {
	from, to State
	labels   g.Slice[g.String]
}

// ToDOT generates a DOT language string representation of the FSM for visualization.
// The current state is highlighted and states present in the history carry a visit count.
func (f *FSM) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", f.cfg.Initial))

	visits := g.NewMap[State, int]()
	for s := range f.log.Iter() {
		visits[s]++
	}

	var edges g.Slice[*edge]

	for def := range f.cfg.States.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", def.Name))

		switch {
		case def.Name == f.Current():
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case len(def.Transitions) == 0:
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		if n := visits[def.Name]; n > 0 {
			attrs.Push(g.Format("tooltip=\"visited {}x\"", n))
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", def.Name, attrs.Join(", ")))

		var events g.Slice[Event]
		for event := range def.Transitions {
			events.Push(event)
		}

		events.SortBy(cmp.Cmp)

		byTarget := g.NewMap[State, *edge]()

		for event := range events.Iter() {
			to := def.Transitions[event]

			e, ok := byTarget[to]
			if !ok {
				e = &edge{from: def.Name, to: to}
				byTarget[to] = e
				edges.Push(e)
			}

			e.labels.Push(g.String(event))
		}
	}

	b.WriteByte('\n')

	for e := range edges.Iter() {
		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", e.from, e.to, e.labels.Join("\\n")))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>Regular state</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
        <tr><td align="right"><font color="gray">◎</font></td><td>Final state</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}
