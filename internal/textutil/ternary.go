package textutil

// Ternary returns a when cond is true and b otherwise. It keeps short
// either-or display strings out of if/else blocks.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
