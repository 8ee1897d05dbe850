// Package debug exposes the build-time debug flag and internal assertions.
package debug

import "fmt"

// Assert panics if condition does not hold. It guards preconditions of
// unchecked internal paths and compiles to a no-op unless the debug build
// tag is set.
func Assert(condition bool, args ...interface{}) {
	if Debug && !condition {
		msg := "assertion failed"
		if len(args) > 0 {
			msg = fmt.Sprint(args...)
		}
		panic(msg)
	}
}
