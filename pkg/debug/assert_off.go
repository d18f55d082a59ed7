//go:build !debug
// +build !debug

package debug

import "io"

func Assert(cond bool, msg string) {
}

func Fprintf(w io.Writer, format string, a ...interface{}) {
}

func Fprint(w io.Writer, a ...interface{}) {
}
