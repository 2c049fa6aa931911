// Command watersort solves water-sort puzzles from the command line.
//
//	watersort solve "ab;ba;ee" --strategy UC --visualize
//	watersort compare "abc;bca;cab;eee" --heuristic mixed --dedup
//	watersort batch puzzles.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
