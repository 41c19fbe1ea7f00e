package gen_test

import (
	"fmt"

	"github.com/katalvlaran/gradfuzz/expr"
	"github.com/katalvlaran/gradfuzz/gen"
)

// ExampleGenerate shows that a fixed byte stream always maps to the same
// expression, the property crash reproduction relies on.
func ExampleGenerate() {
	// kind=unary, op=sin, kind=leaf, leaf=variable, index=1.
	data := []byte{0x04, 0x01, 0x00, 0x00, 0x01}

	e, err := gen.Generate(data, gen.NewConfig(gen.WithMaxDepth(2)))
	if err != nil {
		fmt.Println("skip:", err)

		return
	}

	again, _ := gen.Generate(data, gen.NewConfig(gen.WithMaxDepth(2)))
	fmt.Println(expr.Infix(e))
	fmt.Println("deterministic:", expr.Equal(e, again))
	// Output:
	// sin(x1)
	// deterministic: true
}
