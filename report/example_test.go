package report_test

import (
	"os"

	"github.com/katalvlaran/astarmap/astar"
	"github.com/katalvlaran/astarmap/core"
	"github.com/katalvlaran/astarmap/report"
)

func ExampleReport_Write() {
	g, _ := core.NewGraph(
		[]core.Node{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 10, Y: 0}, {ID: 2, X: 10, Y: 10}, {ID: 3, X: 0, Y: 10}},
		[]core.Edge{{U: 0, V: 1, Weight: 5}, {U: 1, V: 2, Weight: 5}, {U: 0, V: 2, Weight: 20}},
	)

	res, _ := astar.FindPath(g, 0, 2)
	r, _ := report.New(g, res)
	_ = r.Write(os.Stdout, report.FormatText)

	res, _ = astar.FindPath(g, 0, 3)
	r, _ = report.New(g, res)
	_ = r.Write(os.Stdout, report.FormatText)
	// Output:
	// Shortest Path from Node 0 to Node 2:
	// Node 0 -> Node 1 -> Node 2
	// Distance: 10
	// No path from Node 0 to Node 3
}
