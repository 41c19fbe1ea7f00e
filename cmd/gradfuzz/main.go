// Command gradfuzz cross-checks automatic differentiation backends on
// randomly generated expressions.
//
// Usage:
//
//	gradfuzz run --random 1000                 # fuzz with generated streams
//	gradfuzz run --corpus ./corpus             # replay a directory of inputs
//	gradfuzz repro failure-<id>.bin            # re-run one saved failure
//	gradfuzz show failure-<id>.bin             # decode a stream without running
//
// A YAML config file (--config) can set every option; flags override it.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gradfuzz:", err)
		os.Exit(1)
	}
}
