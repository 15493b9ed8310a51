package builder_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/builder"
)

func ExampleParseScenario() {
	s, err := builder.ParseScenario([]byte(`
algorithm: astar
grid:
  - "S.#."
  - "..#."
  - "...T"
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	g, start, target, _ := s.GridInput()
	fmt.Println(s.Algorithm, g.Rows, g.Cols, start, target)
	// Output: astar 3 4 (0,0) (2,3)
}

func ExampleExcelColumnLabelFn() {
	fmt.Println(builder.ExcelColumnLabelFn(0), builder.ExcelColumnLabelFn(27))
	// Output: A AB
}
