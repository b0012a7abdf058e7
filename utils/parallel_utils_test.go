package utils

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Buckets cover the index range with an imbalance of at most one
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		for n := 33; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1]))
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // A degree below one runs serially
		pm := NewPartitionMap(0, 10)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, 10, pm.GetBucketDimension(0))
	}
	{ // ForEachBucket visits every index once, skipping empty buckets
		var (
			visits = make([]int32, 37)
			calls  int32
		)
		pm := NewPartitionMap(64, len(visits))
		err := pm.ForEachBucket(func(bn, kMin, kMax int) error {
			atomic.AddInt32(&calls, 1)
			for k := kMin; k < kMax; k++ {
				atomic.AddInt32(&visits[k], 1)
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, int32(37), calls)
		for _, v := range visits {
			assert.Equal(t, int32(1), v)
		}
	}
	{ // The lowest failing bucket's error is returned
		pm := NewPartitionMap(4, 8)
		err := pm.ForEachBucket(func(bn, kMin, kMax int) error {
			if bn >= 2 {
				return errors.New([]string{"", "", "two", "three"}[bn])
			}
			return nil
		})
		assert.EqualError(t, err, "two")
	}
}
