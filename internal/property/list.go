package property

// View is the read path of a List. It is what the execution phase receives,
// and it offers no way to add elements.
type View[T any] interface {
	Values() []T
	Len() int
	At(i int) T
}

// List is an ordered, append-only collection.
type List[T any] struct {
	items []T
}

// NewList returns an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Append adds v at the end. Node types keep their lists unexported and only
// call Append from their adding functions.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Values returns a copy of the elements in insertion order.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the i-th element.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// View returns the read-only face of the list.
func (l *List[T]) View() View[T] {
	return readOnly[T]{l: l}
}

type readOnly[T any] struct {
	l *List[T]
}

func (r readOnly[T]) Values() []T { return r.l.Values() }
func (r readOnly[T]) Len() int    { return r.l.Len() }
func (r readOnly[T]) At(i int) T  { return r.l.At(i) }
