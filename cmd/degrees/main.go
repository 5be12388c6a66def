// Command degrees finds the degrees of separation between two actors.
//
// Usage:
//
//	degrees --dataset small
//	degrees path "Kevin Bacon" "Cary Elwes" --output yaml
//	degrees batch pairs.csv --dataset large
//
// Settings come from degrees.yaml (or --config), DEGREES_* environment
// variables and flags, in increasing order of precedence.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
