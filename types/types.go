package types

import "math"

// State enumerates possible slot states.
type State byte

const (
	// StateFree means slot is on the free chain.
	StateFree State = iota

	// StateData means slot is owned by a list chain.
	StateData
)

// Index is the address of a slot in the pool.
type Index uint32

// NoneIndex means there is no slot: end of chain, empty list or exhausted pool.
const NoneIndex Index = math.MaxUint32

// MaxCapacity is the largest number of slots a pool may hold.
const MaxCapacity = uint64(NoneIndex)

// IsNone returns true if index is the sentinel.
func (i Index) IsNone() bool {
	return i == NoneIndex
}

// Valid returns true if index addresses a slot in the pool of given capacity.
func (i Index) Valid(capacity uint64) bool {
	return i != NoneIndex && uint64(i) < capacity
}

// Slot is the single cell of the pool.
type Slot[T any] struct {
	Payload T
	Next    Index
	State   State
}
