// Package main implements the standalone self-check binary. It runs the
// arithmetic check battery and exits with the number of failed checks,
// so 0 means every check passed.
package main

import (
	"os"

	"buildprobe/internal/selfcheck"
)

func main() {
	os.Exit(selfcheck.Run(os.Stdout))
}
