package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/slablist/list"
	"github.com/outofforest/slablist/test"
)

const benchCapacity = 1000

func BenchmarkInsertFirstDeleteFirst(b *testing.B) {
	b.StopTimer()
	b.ResetTimer()

	requireT := require.New(b)
	l := test.NewList[uint64](b, benchCapacity, nil)

	b.StartTimer()
	for range b.N {
		for i := range uint64(benchCapacity) {
			if err := l.InsertFirst(i); err != nil {
				b.Fatal(err)
			}
		}
		for range benchCapacity {
			if err := l.DeleteFirst(); err != nil {
				b.Fatal(err)
			}
		}
	}
	b.StopTimer()

	requireT.True(l.IsEmpty())
}

func BenchmarkReverse(b *testing.B) {
	b.StopTimer()
	b.ResetTimer()

	l := test.NewList[uint64](b, benchCapacity, nil)
	for i := range uint64(benchCapacity) {
		require.NoError(b, l.InsertFirst(i))
	}

	b.StartTimer()
	for range b.N {
		l.Reverse()
	}
	b.StopTimer()
}

func BenchmarkClone(b *testing.B) {
	b.StopTimer()
	b.ResetTimer()

	l := test.NewList[uint64](b, benchCapacity, nil)
	for i := range uint64(benchCapacity) {
		require.NoError(b, l.InsertFirst(i))
	}

	var c *list.List[uint64]

	b.StartTimer()
	for range b.N {
		c = l.Clone()
	}
	b.StopTimer()

	require.True(b, list.Equal(l, c))
}
