package list

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/slablist/alloc"
	"github.com/outofforest/slablist/report"
	"github.com/outofforest/slablist/types"
)

// Errors returned by list operations.
var (
	ErrPoolExhausted   = types.ErrPoolExhausted
	ErrEmptyCollection = types.ErrEmptyCollection
	ErrInvalidPosition = types.ErrInvalidPosition
	ErrValueNotFound   = types.ErrValueNotFound
)

// Config stores list configuration.
type Config struct {
	// Capacity is the maximum number of elements stored in the list at the same time.
	Capacity uint64

	// Reporter receives status of every mutating operation. Statuses are discarded if it is nil.
	Reporter report.Reporter
}

// New creates new empty list backed by its own pool.
func New[T comparable](config Config) (*List[T], error) {
	if config.Reporter == nil {
		config.Reporter = report.Nop{}
	}

	pool, err := alloc.NewPool[T](alloc.Config{Capacity: config.Capacity})
	if err != nil {
		return nil, err
	}

	return &List[T]{
		config: config,
		pool:   pool,
		head:   types.NoneIndex,
	}, nil
}

// List is the singly-linked list whose nodes live in the fixed-size pool.
type List[T comparable] struct {
	config Config
	pool   *alloc.Pool[T]
	head   types.Index
	length int
}

// InsertFirst inserts value at the head of the list.
func (l *List[T]) InsertFirst(value T) error {
	return l.report(report.Status{Op: report.OpInsertFirst, Value: value}, l.insertFirst(value))
}

// InsertLast inserts value at the tail of the list.
func (l *List[T]) InsertLast(value T) error {
	status := report.Status{Op: report.OpInsertLast, Value: value, Position: l.length}
	return l.report(status, l.insertLast(value))
}

// InsertAtPos inserts value so it ends up at position pos. Valid positions are [0, Len()].
func (l *List[T]) InsertAtPos(value T, pos int) error {
	return l.report(report.Status{Op: report.OpInsertAtPos, Value: value, Position: pos}, l.insertAtPos(value, pos))
}

// InsertAfter inserts value right after the first occurrence of after.
func (l *List[T]) InsertAfter(value, after T) error {
	return l.report(report.Status{Op: report.OpInsertAfter, Value: value, After: after}, l.insertAfter(value, after))
}

// DeleteFirst removes the head of the list.
func (l *List[T]) DeleteFirst() error {
	value, err := l.deleteFirst()
	return l.report(report.Status{Op: report.OpDeleteFirst, Value: value}, err)
}

// DeleteLast removes the tail of the list.
func (l *List[T]) DeleteLast() error {
	status := report.Status{Op: report.OpDeleteLast, Position: l.length - 1}
	value, err := l.deleteLast()
	status.Value = value
	return l.report(status, err)
}

// DeleteAtPos removes element at position pos. Valid positions are [0, Len()-1].
func (l *List[T]) DeleteAtPos(pos int) error {
	value, err := l.deleteAtPos(pos)
	return l.report(report.Status{Op: report.OpDeleteAtPos, Value: value, Position: pos}, err)
}

// DeleteElement removes the first occurrence of value.
func (l *List[T]) DeleteElement(value T) error {
	pos, err := l.deleteElement(value)
	return l.report(report.Status{Op: report.OpDeleteElement, Value: value, Position: pos}, err)
}

// Search returns position of the first occurrence of value.
func (l *List[T]) Search(value T) (int, bool) {
	pos, index := l.find(value)
	return pos, !index.IsNone()
}

// Reverse reverses order of elements in place.
func (l *List[T]) Reverse() {
	previous := types.NoneIndex
	for current := l.head; !current.IsNone(); {
		slot := l.pool.Node(current)
		next := slot.Next
		slot.Next = previous
		previous = current
		current = next
	}
	l.head = previous

	l.report(report.Status{Op: report.OpReverse}, nil)
}

// Clear removes all the elements returning their slots to the pool.
func (l *List[T]) Clear() error {
	return l.report(report.Status{Op: report.OpClear}, l.clear())
}

// Clone returns deep copy of the list, backed by a new pool of the same capacity.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		config: l.config,
		pool:   lo.Must(alloc.NewPool[T](alloc.Config{Capacity: l.pool.Capacity()})),
		head:   types.NoneIndex,
	}
	lo.Must0(c.appendFrom(l))
	return c
}

// Assign replaces content of the list with a copy of src. Assigning list to itself does nothing.
func (l *List[T]) Assign(src *List[T]) error {
	status := report.Status{Op: report.OpAssign}
	if src != nil {
		status.Position = src.length
	}
	return l.report(status, l.assign(src))
}

// Len returns number of elements.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty returns true if there are no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head.IsNone()
}

// Head returns index of the slot storing the first element.
func (l *List[T]) Head() types.Index {
	return l.head
}

// Capacity returns the maximum number of elements the list can store.
func (l *List[T]) Capacity() uint64 {
	return l.pool.Capacity()
}

// IsFull returns true if next insertion fails with ErrPoolExhausted.
func (l *List[T]) IsFull() bool {
	return l.pool.IsFull()
}

// Pool returns the pool backing the list. It is meant for diagnostics only.
func (l *List[T]) Pool() *alloc.Pool[T] {
	return l.pool
}

func (l *List[T]) report(status report.Status, err error) error {
	status.Err = err
	l.config.Reporter.Report(status)
	return err
}

func (l *List[T]) insertFirst(value T) error {
	index, err := l.pool.Allocate()
	if err != nil {
		return err
	}

	slot := l.pool.Node(index)
	slot.Payload = value
	slot.Next = l.head
	l.head = index
	l.length++

	return nil
}

func (l *List[T]) insertLast(value T) error {
	if l.head.IsNone() {
		return l.insertFirst(value)
	}

	index, err := l.pool.Allocate()
	if err != nil {
		return err
	}

	slot := l.pool.Node(index)
	slot.Payload = value
	slot.Next = types.NoneIndex
	l.pool.Node(l.tail()).Next = index
	l.length++

	return nil
}

func (l *List[T]) insertAtPos(value T, pos int) error {
	if l.pool.IsFull() {
		return errors.WithStack(ErrPoolExhausted)
	}
	if pos < 0 || pos > l.length {
		return errors.Wrapf(ErrInvalidPosition, "position %d, valid range [0, %d]", pos, l.length)
	}
	if pos == 0 {
		return l.insertFirst(value)
	}

	return l.spliceAfter(l.at(pos-1), value)
}

func (l *List[T]) insertAfter(value, after T) error {
	if l.head.IsNone() {
		return errors.WithStack(ErrEmptyCollection)
	}

	_, target := l.find(after)
	if target.IsNone() {
		return errors.Wrapf(ErrValueNotFound, "value %v", after)
	}

	return l.spliceAfter(target, value)
}

func (l *List[T]) spliceAfter(predecessor types.Index, value T) error {
	index, err := l.pool.Allocate()
	if err != nil {
		return err
	}

	slot := l.pool.Node(index)
	predecessorSlot := l.pool.Node(predecessor)
	slot.Payload = value
	slot.Next = predecessorSlot.Next
	predecessorSlot.Next = index
	l.length++

	return nil
}

func (l *List[T]) deleteFirst() (T, error) {
	if l.head.IsNone() {
		var zero T
		return zero, errors.WithStack(ErrEmptyCollection)
	}

	head := l.head
	value := l.pool.Payload(head)
	next := l.pool.Next(head)
	if err := l.pool.Deallocate(head); err != nil {
		var zero T
		return zero, err
	}
	l.head = next
	l.length--

	return value, nil
}

func (l *List[T]) deleteLast() (T, error) {
	if l.head.IsNone() {
		var zero T
		return zero, errors.WithStack(ErrEmptyCollection)
	}
	if l.length == 1 {
		return l.deleteFirst()
	}

	return l.spliceOut(l.at(l.length - 2))
}

func (l *List[T]) deleteAtPos(pos int) (T, error) {
	var zero T
	if l.head.IsNone() {
		return zero, errors.WithStack(ErrEmptyCollection)
	}
	if pos < 0 || pos >= l.length {
		return zero, errors.Wrapf(ErrInvalidPosition, "position %d, valid range [0, %d]", pos, l.length-1)
	}
	if pos == 0 {
		return l.deleteFirst()
	}

	return l.spliceOut(l.at(pos - 1))
}

func (l *List[T]) deleteElement(value T) (int, error) {
	if l.head.IsNone() {
		return 0, errors.WithStack(ErrEmptyCollection)
	}

	predecessor := types.NoneIndex
	var pos int
	for index := l.head; !index.IsNone(); index = l.pool.Next(index) {
		if l.pool.Payload(index) == value {
			var err error
			if predecessor.IsNone() {
				_, err = l.deleteFirst()
			} else {
				_, err = l.spliceOut(predecessor)
			}
			return pos, err
		}
		predecessor = index
		pos++
	}

	return 0, errors.Wrapf(ErrValueNotFound, "value %v", value)
}

// spliceOut removes the successor of predecessor and returns its value.
func (l *List[T]) spliceOut(predecessor types.Index) (T, error) {
	predecessorSlot := l.pool.Node(predecessor)
	index := predecessorSlot.Next
	value := l.pool.Payload(index)
	next := l.pool.Next(index)
	if err := l.pool.Deallocate(index); err != nil {
		var zero T
		return zero, err
	}
	predecessorSlot.Next = next
	l.length--

	return value, nil
}

func (l *List[T]) clear() error {
	for !l.head.IsNone() {
		if _, err := l.deleteFirst(); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[T]) assign(src *List[T]) error {
	if src == nil {
		return errors.New("source list is nil")
	}
	if src == l {
		return nil
	}
	if uint64(src.length) > l.pool.Capacity() {
		return errors.Wrapf(ErrPoolExhausted, "source has %d elements, capacity is %d", src.length,
			l.pool.Capacity())
	}

	if err := l.clear(); err != nil {
		return err
	}
	return l.appendFrom(src)
}

// appendFrom copies elements of src to the tail of the list, preserving their order.
func (l *List[T]) appendFrom(src *List[T]) error {
	tail := l.tail()
	for value := range src.Iterator() {
		index, err := l.pool.Allocate()
		if err != nil {
			return err
		}

		slot := l.pool.Node(index)
		slot.Payload = value
		slot.Next = types.NoneIndex
		if tail.IsNone() {
			l.head = index
		} else {
			l.pool.Node(tail).Next = index
		}
		tail = index
		l.length++
	}

	return nil
}

// at returns index of the slot at position pos. Position must be valid.
func (l *List[T]) at(pos int) types.Index {
	index := l.head
	for range pos {
		index = l.pool.Next(index)
	}
	return index
}

// tail returns index of the last slot or NoneIndex if list is empty.
func (l *List[T]) tail() types.Index {
	if l.head.IsNone() {
		return types.NoneIndex
	}

	index := l.head
	for next := l.pool.Next(index); !next.IsNone(); next = l.pool.Next(index) {
		index = next
	}
	return index
}

// find returns position and index of the first slot storing value.
func (l *List[T]) find(value T) (int, types.Index) {
	var pos int
	for index := l.head; !index.IsNone(); index = l.pool.Next(index) {
		if l.pool.Payload(index) == value {
			return pos, index
		}
		pos++
	}
	return -1, types.NoneIndex
}
