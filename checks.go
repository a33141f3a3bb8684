//go:build !release

package polydraw

// debugCheck runs f. Built without the release tag, invariant violations
// found by f panic immediately so they surface during development instead
// of producing silently wrong pixels; build with -tags release to skip
// this cost in production.
func debugCheck(f func()) {
	f()
}
