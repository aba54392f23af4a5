package shuffle

// CharQueue holds the unconsumed characters of a source word. Characters are
// consumed strictly from the front and the cursor never moves backward.
type CharQueue struct {
	chars []rune
	head  int
}

// NewCharQueue returns a queue over the runes of s.
func NewCharQueue(s string) *CharQueue {
	return &CharQueue{chars: []rune(s)}
}

// Front returns the next unconsumed character without consuming it.
func (q *CharQueue) Front() (rune, bool) {
	if q.head >= len(q.chars) {
		return 0, false
	}
	return q.chars[q.head], true
}

// Pop consumes and returns the next character.
func (q *CharQueue) Pop() (rune, bool) {
	r, ok := q.Front()
	if ok {
		q.head++
	}
	return r, ok
}

// Len returns the number of unconsumed characters.
func (q *CharQueue) Len() int {
	return len(q.chars) - q.head
}

// Clone returns a snapshot of the remaining characters. The copy owns its
// own backing array, so consuming from it never affects q.
func (q *CharQueue) Clone() *CharQueue {
	rest := make([]rune, q.Len())
	copy(rest, q.chars[q.head:])
	return &CharQueue{chars: rest}
}

// String returns the unconsumed characters.
func (q *CharQueue) String() string {
	return string(q.chars[q.head:])
}
