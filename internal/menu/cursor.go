package menu

// ClampAdd moves cursor p by delta within a list of n rows and saturates at
// both ends. An empty list has no valid row; the result is then 0.
func ClampAdd(n, p, delta int) int {
	if n <= 0 {
		return 0
	}
	last := n - 1
	next := p + delta
	switch {
	case next >= last:
		return last
	case next <= 0:
		return 0
	default:
		return next
	}
}
