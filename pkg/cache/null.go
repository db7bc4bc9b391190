package cache

// NullMemo is a no-op memo that never stores anything.
// Useful for testing or when memoization should be disabled.
type NullMemo[K comparable, V any] struct{}

// NewNullMemo creates a null memo.
func NewNullMemo[K comparable, V any]() Memo[K, V] {
	return NullMemo[K, V]{}
}

// Get always returns a miss.
func (NullMemo[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

// Set does nothing.
func (NullMemo[K, V]) Set(K, V) {}

// Len is always zero.
func (NullMemo[K, V]) Len() int { return 0 }

// Ensure NullMemo implements Memo.
var _ Memo[string, int] = NullMemo[string, int]{}
