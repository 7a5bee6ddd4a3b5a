package test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/logger"
	"github.com/outofforest/slablist/alloc"
	"github.com/outofforest/slablist/list"
	"github.com/outofforest/slablist/report"
	"github.com/outofforest/slablist/types"
)

// NewContext returns context carrying logger, canceled when test finishes.
func NewContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
	t.Cleanup(cancel)
	return ctx
}

// NewList creates list of given capacity containing values, in order.
func NewList[T comparable](t require.TestingT, capacity uint64, reporter report.Reporter, values ...T) *list.List[T] {
	l, err := list.New[T](list.Config{
		Capacity: capacity,
		Reporter: reporter,
	})
	require.NoError(t, err)

	for _, v := range values {
		require.NoError(t, l.InsertLast(v))
	}
	return l
}

// CollectPoolIndices returns sorted indices of slots in use and free slots reachable from the free chain.
func CollectPoolIndices[T any](p *alloc.Pool[T]) (used, free []types.Index) {
	used = []types.Index{}
	free = []types.Index{}

	onFreeChain := map[types.Index]struct{}{}
	for index := p.FreeHead(); !index.IsNone(); index = p.Next(index) {
		onFreeChain[index] = struct{}{}
		free = append(free, index)
	}

	for i := range types.Index(p.Capacity()) {
		if _, exists := onFreeChain[i]; !exists {
			used = append(used, i)
		}
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i] < free[j]
	})
	return used, free
}

// CollectListIndices returns sorted indices of slots reachable from the head of the list.
func CollectListIndices[T comparable](l *list.List[T]) []types.Index {
	indices := []types.Index{}
	for index := l.Head(); !index.IsNone(); index = l.Pool().Next(index) {
		indices = append(indices, index)
	}

	sort.Slice(indices, func(i, j int) bool {
		return indices[i] < indices[j]
	})
	return indices
}
