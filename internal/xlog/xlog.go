// Package xlog wraps the standard log package with the one helper
// actually used throughout hidcore: printf-style logging without an
// explicit import of "log" at every call site.
package xlog

import "log"

var Logf = log.Printf
