// Command ariaml serves a directory of markdown pages as AriaML documents.
//
//	ariaml serve --pages ./site --static ./public
//	ariaml render /products/shoes --accept text/aria-ml-fragment
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
