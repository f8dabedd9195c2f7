//go:build debug

package jungle

import "fmt"

const debugAsserts = true

// assertf panics when cond is false. Compiled in only with -tags debug.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("jungle: invariant violated: "+format, args...))
	}
}
