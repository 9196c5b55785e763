// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// Stats returns a short textual summary of the BDD's node and cache
// usage, useful for sizing transition systems before running a check.
func (b *BDD) Stats() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Nodes:      %d\n", len(b.nodes))
	res += "==============\n"
	res += fmt.Sprintf("apply cache:  %d\n", len(b.applyMemo))
	res += fmt.Sprintf("ite cache:    %d\n", len(b.iteMemo))
	res += fmt.Sprintf("exists cache: %d\n", len(b.existsMemo))
	res += fmt.Sprintf("let cache:    %d\n", len(b.letMemo))
	return res
}

// Print writes a textual dump of the nodes reachable from n (or every
// node in the table if n is omitted) to stdout.
func (b *BDD) Print(n ...Node) {
	b.print(os.Stdout, n...)
}

func (b *BDD) print(w io.Writer, n ...Node) {
	if len(n) == 1 {
		if n[0] == False {
			fmt.Fprintln(w, "False")
			return
		}
		if n[0] == True {
			fmt.Fprintln(w, "True")
			return
		}
	}
	type row struct{ id, level int; low, high Node }
	rows := make([]row, 0)
	_ = b.Allnodes(func(id, level int, low, high Node) error {
		i := sort.Search(len(rows), func(i int) bool { return rows[i].id >= id })
		rows = append(rows, row{})
		copy(rows[i+1:], rows[i:])
		rows[i] = row{id, level, low, high}
		return nil
	}, n...)
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, r := range rows {
		if r.id > 1 {
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", r.id, r.level, r.low, r.high)
		}
	}
	tw.Flush()
}

// PrintDot writes a Graphviz DOT description of the nodes reachable
// from n (or the whole table if n is omitted) to filename, or to stdout
// when filename is "-".
func (b *BDD) PrintDot(filename string, n ...Node) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];")
	_ = b.Allnodes(func(id, level int, low, high Node) error {
		if id > 1 {
			fmt.Fprintf(w, "%d %s\n", id, dotlabel(id, level))
			if low != False {
				fmt.Fprintf(w, "%d -> %d [style=dotted];\n", id, low)
			}
			if high != False {
				fmt.Fprintf(w, "%d -> %d [style=filled];\n", id, high)
			}
		}
		return nil
	}, n...)
	fmt.Fprintln(w, "}")
	return w.Flush()
}

func dotlabel(id, level int) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, level, id)
}
