package ease_test

import (
	"fmt"

	"honnef.co/go/ease"
)

func ExampleLookup() {
	c, ok := ease.Lookup("Quad.OUT")
	if !ok {
		panic("no such curve")
	}
	// Curves clamp their input.
	fmt.Println(c, c.Ease(0.5), c.Ease(2))

	// Output:
	// Quad.OUT 0.75 1
}

func ExampleRange() {
	// Move from x=10 to x=20, a quarter of the way through the animation.
	fmt.Printf("%.4f\n", ease.Range(ease.Pow(2), 10, 20, 0.25))
	fmt.Printf("%.4f\n", ease.Pow(2).Range(20, 10, 0.25))

	// Output:
	// 11.2500
	// 18.7500
}

func ExampleFlip() {
	outIn := ease.Flip(ease.Pow(2))
	for _, a := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf("%.4f ", outIn(a))
	}
	fmt.Println()

	// Output:
	// 0.0000 0.3750 0.5000 0.6250 1.0000
}

func ExampleRegistry() {
	r := ease.NewRegistry()
	r.Define("Half.IN", func(a float64) float64 { return a / 2 })
	r.Define("Square.IN", ease.PowIn(2))
	r.Define("Half.IN", ease.Linear)
	for tag := range r.Tags() {
		c, _ := r.Lookup(tag)
		fmt.Println(tag, c.Ease(0.5))
	}

	// Output:
	// Half.IN 0.5
	// Square.IN 0.25
}

func ExampleSolve() {
	// When does SineOut get halfway there?
	alpha, ok := ease.Solve(ease.SineOut, 0.5, 1e-9)
	fmt.Printf("%.4f %t\n", alpha, ok)

	// Output:
	// 0.3333 true
}
