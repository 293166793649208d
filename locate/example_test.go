package locate_test

import (
	"fmt"

	"github.com/katalvlaran/astarmap/core"
	"github.com/katalvlaran/astarmap/locate"
)

func ExampleIndex_NodeAt() {
	g, _ := core.NewGraph([]core.Node{{ID: 0, X: 100, Y: 100}, {ID: 1, X: 400, Y: 250}}, nil)
	ix, _ := locate.NewIndex(g)

	id, ok := ix.NodeAt(390, 260, locate.DefaultHitRadius)
	fmt.Println(id, ok)
	_, ok = ix.NodeAt(250, 175, locate.DefaultHitRadius)
	fmt.Println(ok)
	// Output:
	// 1 true
	// false
}
