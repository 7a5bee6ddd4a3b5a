package list_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/parallel"
	"github.com/outofforest/slablist/list"
	"github.com/outofforest/slablist/report"
	"github.com/outofforest/slablist/test"
)

func TestGuardedConcurrentWriters(t *testing.T) {
	const (
		numOfWriters = 8
		numOfValues  = 50
	)

	requireT := require.New(t)
	ctx := test.NewContext(t)

	recorder := report.NewRecorder()
	g := list.NewGuarded(test.NewList[string](t, numOfWriters*numOfValues, recorder))

	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for w := range numOfWriters {
			spawn(fmt.Sprintf("writer-%02d", w), parallel.Continue, func(ctx context.Context) error {
				for i := range numOfValues {
					var err error
					if i%2 == 0 {
						err = g.InsertFirst(fmt.Sprintf("%d-%d", w, i))
					} else {
						err = g.InsertLast(fmt.Sprintf("%d-%d", w, i))
					}
					if err != nil {
						return err
					}
				}
				return nil
			})
		}
		return nil
	})
	requireT.NoError(err)

	requireT.Equal(numOfWriters*numOfValues, g.Len())
	requireT.Len(recorder.Statuses(), numOfWriters*numOfValues)
	requireT.NoError(g.Do(func(l *list.List[string]) error {
		return l.Verify()
	}))

	values := g.Values()
	sort.Strings(values)
	expected := make([]string, 0, numOfWriters*numOfValues)
	for w := range numOfWriters {
		for i := range numOfValues {
			expected = append(expected, fmt.Sprintf("%d-%d", w, i))
		}
	}
	sort.Strings(expected)
	requireT.Equal(expected, values)
}

func TestGuardedConcurrentReadersAndWriters(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)

	g := list.NewGuarded(test.NewList[int](t, 4, nil, 1, 2))

	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("writer", parallel.Continue, func(ctx context.Context) error {
			for i := range 1000 {
				if err := g.InsertAtPos(i, 1); err != nil {
					return err
				}
				if err := g.DeleteAtPos(1); err != nil {
					return err
				}
				g.Reverse()
			}
			return nil
		})
		spawn("reader", parallel.Continue, func(ctx context.Context) error {
			for range 1000 {
				if _, found := g.Search(1); !found {
					return errors.Errorf("value 1 is missing from %s", g.String())
				}
				if err := g.Do(func(l *list.List[int]) error {
					return l.Verify()
				}); err != nil {
					return err
				}
			}
			return nil
		})
		return nil
	})
	requireT.NoError(err)

	requireT.Equal([]int{1, 2}, g.Values())
}

func TestGuardedOperations(t *testing.T) {
	requireT := require.New(t)
	g := list.NewGuarded(test.NewList[string](t, 3, nil))

	requireT.NoError(g.InsertLast("b"))
	requireT.NoError(g.InsertFirst("a"))
	requireT.NoError(g.InsertAfter("c", "b"))
	requireT.ErrorIs(g.InsertAtPos("d", 0), list.ErrPoolExhausted)
	requireT.Equal("a -> b -> c", g.String())

	c := g.Clone()
	requireT.NoError(g.DeleteElement("b"))
	requireT.NoError(g.DeleteLast())
	requireT.NoError(g.DeleteFirst())
	requireT.Equal("NULL", g.String())
	requireT.Equal("a -> b -> c", c.String())
}
