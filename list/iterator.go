package list

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/slablist/types"
)

const (
	// EmptyToken is the rendering of empty list.
	EmptyToken = "NULL"

	// Separator is placed between rendered elements.
	Separator = " -> "
)

// Iterator iterates over values stored in the list, from head to tail.
func (l *List[T]) Iterator() func(func(T) bool) {
	return func(yield func(T) bool) {
		for index := l.head; !index.IsNone(); index = l.pool.Next(index) {
			if !yield(l.pool.Payload(index)) {
				return
			}
		}
	}
}

// Values returns values stored in the list, from head to tail.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for v := range l.Iterator() {
		values = append(values, v)
	}
	return values
}

// String renders the list.
func (l *List[T]) String() string {
	if l.head.IsNone() {
		return EmptyToken
	}

	return strings.Join(lo.Map(l.Values(), func(v T, _ int) string {
		return fmt.Sprint(v)
	}), Separator)
}

// Equal returns true if both lists store the same values in the same order.
func Equal[T comparable](l1, l2 *List[T]) bool {
	if l1.length != l2.length {
		return false
	}

	index1, index2 := l1.head, l2.head
	for !index1.IsNone() {
		if l1.pool.Payload(index1) != l2.pool.Payload(index2) {
			return false
		}
		index1, index2 = l1.pool.Next(index1), l2.pool.Next(index2)
	}
	return true
}

// Verify checks that length matches the chain reachable from head and that
// the chain and the free chain together cover the whole pool.
func (l *List[T]) Verify() error {
	if (l.head.IsNone()) != (l.length == 0) {
		return errors.Errorf("head is %d while length is %d", l.head, l.length)
	}

	capacity := l.pool.Capacity()
	visited := make([]bool, capacity)

	var count int
	for index := l.head; !index.IsNone(); index = l.pool.Next(index) {
		if !index.Valid(capacity) {
			return errors.Errorf("list contains invalid index %d", index)
		}
		if visited[index] {
			return errors.Errorf("list contains cycle at index %d", index)
		}
		if l.pool.Node(index).State != types.StateData {
			return errors.Errorf("list contains free slot %d", index)
		}
		visited[index] = true
		count++
	}

	if count != l.length {
		return errors.Errorf("length is %d but %d elements are reachable", l.length, count)
	}
	if uint64(count) != l.pool.InUse() {
		return errors.Errorf("%d slots are in use but %d belong to the list", l.pool.InUse(), count)
	}

	return l.pool.Verify()
}
