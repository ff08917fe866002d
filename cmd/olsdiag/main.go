// Command olsdiag explores how single points influence a simple linear
// regression.
//
// Usage:
//
//	olsdiag fit   --data weather.json
//	olsdiag drag  --data weather.json --index 3 --to 40,0.9
//	olsdiag scene --data weather.json --index 3 --to 40,0.9
//
// Flags override values from the YAML file given with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
