package list

import (
	"sync"
)

// NewGuarded wraps list so it might be used from many goroutines.
func NewGuarded[T comparable](l *List[T]) *Guarded[T] {
	return &Guarded[T]{
		list: l,
	}
}

// Guarded serializes all the operations on the list. Lock is held for the whole operation.
type Guarded[T comparable] struct {
	mu   sync.Mutex
	list *List[T]
}

// Do executes fn with exclusive access to the list.
func (g *Guarded[T]) Do(fn func(l *List[T]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.list)
}

// InsertFirst inserts value at the head of the list.
func (g *Guarded[T]) InsertFirst(value T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.InsertFirst(value)
}

// InsertLast inserts value at the tail of the list.
func (g *Guarded[T]) InsertLast(value T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.InsertLast(value)
}

// InsertAtPos inserts value at position pos.
func (g *Guarded[T]) InsertAtPos(value T, pos int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.InsertAtPos(value, pos)
}

// InsertAfter inserts value after the first occurrence of after.
func (g *Guarded[T]) InsertAfter(value, after T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.InsertAfter(value, after)
}

// DeleteFirst removes the head of the list.
func (g *Guarded[T]) DeleteFirst() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.DeleteFirst()
}

// DeleteLast removes the tail of the list.
func (g *Guarded[T]) DeleteLast() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.DeleteLast()
}

// DeleteAtPos removes element at position pos.
func (g *Guarded[T]) DeleteAtPos(pos int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.DeleteAtPos(pos)
}

// DeleteElement removes the first occurrence of value.
func (g *Guarded[T]) DeleteElement(value T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.DeleteElement(value)
}

// Search returns position of the first occurrence of value.
func (g *Guarded[T]) Search(value T) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.Search(value)
}

// Reverse reverses order of elements.
func (g *Guarded[T]) Reverse() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.list.Reverse()
}

// Len returns number of elements.
func (g *Guarded[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.Len()
}

// Values returns values stored in the list.
func (g *Guarded[T]) Values() []T {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.Values()
}

// String renders the list.
func (g *Guarded[T]) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.String()
}

// Clone returns deep copy of the wrapped list.
func (g *Guarded[T]) Clone() *List[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.list.Clone()
}
