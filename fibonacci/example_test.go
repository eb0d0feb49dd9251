package fibonacci_test

import (
	"fmt"

	"github.com/katalvlaran/lvldp/fibonacci"
)

// ExampleGenerate demonstrates the tabulated generator on the canonical
// ten-term prefix.
func ExampleGenerate() {
	seq, err := fibonacci.Generate(10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(seq)
	// Output:
	// [0 1 1 2 3 5 8 13 21 34]
}

// ExampleGenerateNaive shows that the exponential baseline produces the
// same terms as tabulation on small inputs; only its cost differs.
func ExampleGenerateNaive() {
	seq, err := fibonacci.GenerateNaive(8)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(seq)
	// Output:
	// [0 1 1 2 3 5 8 13]
}

// ExampleGenerateBig reaches past the uint64 range: F(100) needs 21
// decimal digits.
func ExampleGenerateBig() {
	seq, err := fibonacci.GenerateBig(101)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(seq[100])
	// Output:
	// 354224848179261915075
}
