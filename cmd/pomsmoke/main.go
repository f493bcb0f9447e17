// Command pomsmoke runs the demo page scenarios against a live browser. It
// reads the same environment as the e2e tests.
package main

import (
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
