package bytefall_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/bytefall"
)

// ExampleFirstBlocking finds the first byte that seals off the exit.
func ExampleFirstBlocking() {
	bytes, err := bytefall.Parse(strings.NewReader(sample))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	steps, _ := bytefall.ShortestSteps(7, bytes, 12)
	_, p, _ := bytefall.FirstBlocking(7, bytes)
	fmt.Printf("steps=%d blocking=%d,%d\n", steps, p.Col, p.Row)
	// Output: steps=22 blocking=6,1
}
