package alloc

import (
	"github.com/pkg/errors"

	"github.com/outofforest/slablist/types"
)

// DefaultCapacity is the number of slots used when capacity is not configured.
const DefaultCapacity = 10

// Errors returned by the pool.
var (
	ErrPoolExhausted = types.ErrPoolExhausted
	ErrInvalidIndex  = types.ErrInvalidIndex
	ErrDoubleRelease = types.ErrDoubleRelease
)

// Config stores configuration of the pool.
type Config struct {
	// Capacity is the maximum number of slots in use at the same time.
	Capacity uint64
}

// NewPool creates new pool with all the slots linked into the free chain.
func NewPool[T any](config Config) (*Pool[T], error) {
	if config.Capacity == 0 {
		config.Capacity = DefaultCapacity
	}
	if config.Capacity >= types.MaxCapacity {
		return nil, errors.Errorf("capacity %d exceeds maximum %d", config.Capacity, types.MaxCapacity-1)
	}

	p := &Pool[T]{
		slots: make([]types.Slot[T], config.Capacity),
	}
	p.Reset()
	return p, nil
}

// Pool allocates and deallocates slots from the fixed array.
type Pool[T any] struct {
	slots    []types.Slot[T]
	freeHead types.Index
	inUse    uint64
}

// Allocate takes the first slot from the free chain.
// Payload and successor of the returned slot must be set by the caller.
func (p *Pool[T]) Allocate() (types.Index, error) {
	index := p.freeHead
	if index.IsNone() {
		return types.NoneIndex, errors.WithStack(ErrPoolExhausted)
	}

	slot := &p.slots[index]
	p.freeHead = slot.Next
	slot.State = types.StateData
	p.inUse++

	return index, nil
}

// Deallocate puts slot back at the front of the free chain.
func (p *Pool[T]) Deallocate(index types.Index) error {
	if !index.Valid(uint64(len(p.slots))) {
		return errors.Wrapf(ErrInvalidIndex, "index %d, capacity %d", index, len(p.slots))
	}

	slot := &p.slots[index]
	if slot.State == types.StateFree {
		return errors.Wrapf(ErrDoubleRelease, "index %d", index)
	}

	var zero T
	slot.Payload = zero
	slot.State = types.StateFree
	slot.Next = p.freeHead
	p.freeHead = index
	p.inUse--

	return nil
}

// Node returns slot for modification.
func (p *Pool[T]) Node(index types.Index) *types.Slot[T] {
	return &p.slots[index]
}

// Payload returns value stored in the slot.
func (p *Pool[T]) Payload(index types.Index) T {
	return p.slots[index].Payload
}

// Next returns successor of the slot.
func (p *Pool[T]) Next(index types.Index) types.Index {
	return p.slots[index].Next
}

// IsFull returns true if there is no free slot.
func (p *Pool[T]) IsFull() bool {
	return p.freeHead.IsNone()
}

// FreeHead returns the first index of the free chain. It is meant for diagnostics only.
func (p *Pool[T]) FreeHead() types.Index {
	return p.freeHead
}

// Capacity returns the number of slots.
func (p *Pool[T]) Capacity() uint64 {
	return uint64(len(p.slots))
}

// InUse returns the number of allocated slots.
func (p *Pool[T]) InUse() uint64 {
	return p.inUse
}

// Available returns the number of free slots.
func (p *Pool[T]) Available() uint64 {
	return uint64(len(p.slots)) - p.inUse
}

// Reset returns all the slots to the free chain, in ascending order.
func (p *Pool[T]) Reset() {
	clear(p.slots)
	last := types.Index(len(p.slots) - 1)
	for i := range last {
		p.slots[i].Next = i + 1
	}
	p.slots[last].Next = types.NoneIndex
	p.freeHead = 0
	p.inUse = 0
}

// Verify checks that free chain contains exactly the slots marked as free.
func (p *Pool[T]) Verify() error {
	capacity := uint64(len(p.slots))
	visited := make([]bool, capacity)

	var free uint64
	for index := p.freeHead; !index.IsNone(); index = p.slots[index].Next {
		if !index.Valid(capacity) {
			return errors.Errorf("free chain contains invalid index %d", index)
		}
		if visited[index] {
			return errors.Errorf("free chain contains cycle at index %d", index)
		}
		if p.slots[index].State != types.StateFree {
			return errors.Errorf("slot %d on free chain is in use", index)
		}
		visited[index] = true
		free++
	}

	for i := range p.slots {
		if !visited[i] && p.slots[i].State == types.StateFree {
			return errors.Errorf("free slot %d is not reachable from free chain", i)
		}
	}

	if free+p.inUse != capacity {
		return errors.Errorf("free slots (%d) and slots in use (%d) do not sum up to capacity %d", free, p.inUse,
			capacity)
	}

	return nil
}
