// SPDX-License-Identifier: MIT

// Command lvmul multiplies matrices on the worker pool, serves the toy
// responder and demonstrates the counter stores.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvmul:", err)
		os.Exit(1)
	}
}
