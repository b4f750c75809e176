package dragselect

// mustHold reports whether cond is true. A broken precondition is a no-op for
// the caller in release builds and panics in builds with the debug tag.
func mustHold(cond bool, msg string) bool {
	if !cond && debugAssertions {
		panic("dragselect: " + msg)
	}
	return cond
}
