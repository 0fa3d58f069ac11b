// Command ratapprox prints the best fractions with a bounded denominator
// around a rational target.
//
//	ratapprox bracket 7071 10000 --max-den 100
//	ratapprox nearest 314159265 100000000 --max-den 1000 --mixed
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
