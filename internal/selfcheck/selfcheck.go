// Package selfcheck holds the arithmetic self-check battery: two pure
// helper functions and a declarative list of literal input/output checks.
package selfcheck

import (
	"fmt"
	"io"
	"strings"
)

// Add returns a+b. Overflow wraps per the platform int.
func Add(a, b int) int {
	return a + b
}

// Multiply returns a*b. Overflow wraps per the platform int.
func Multiply(a, b int) int {
	return a * b
}

// Greeting is the literal exercised by the string checks.
const Greeting = "Hello, World!"

// Check is one literal input/expected output pair.
type Check struct {
	Name string
	Got  int
	Want int
}

// Battery returns the stock check list.
func Battery() []Check {
	return []Check{
		{"add(2,3)", Add(2, 3), 5},
		{"add(-1,1)", Add(-1, 1), 0},
		{"add(0,0)", Add(0, 0), 0},
		{"multiply(2,3)", Multiply(2, 3), 6},
		{"multiply(-2,3)", Multiply(-2, 3), -6},
		{"multiply(0,100)", Multiply(0, 100), 0},
		{"len(greeting)", len(Greeting), 13},
		{`index(greeting, "World")`, strings.Index(Greeting, "World"), 7},
	}
}

// Run executes the stock battery, writes one line per mismatch plus a
// summary line to w, and returns the number of failed checks.
func Run(w io.Writer) int {
	return run(w, Battery())
}

func run(w io.Writer, checks []Check) int {
	failed := 0
	for _, c := range checks {
		if c.Got != c.Want {
			failed++
			fmt.Fprintf(w, "FAIL %s: got %d, want %d\n", c.Name, c.Got, c.Want)
		}
	}
	if failed == 0 {
		fmt.Fprintf(w, "ok: %d checks passed\n", len(checks))
	} else {
		fmt.Fprintf(w, "%d of %d checks failed\n", failed, len(checks))
	}
	return failed
}
