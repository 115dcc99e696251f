package diversity

import (
	"math/rand"
	"sort"

	"github.com/yungbote/vedicqa/internal/dataset"
)

// Balance downsamples every stem bucket larger than int(total*ceiling)
// to that cap and returns the surviving records in their original
// order, plus the removed ones. Sampling draws only from rng, so a
// fixed seed reproduces the identical balanced set. Item content is
// never modified.
func Balance(records []dataset.Record, ceiling float64, rng *rand.Rand) (kept, removed []dataset.Record) {
	maxPerBucket := int(float64(len(records)) * ceiling)
	return BalanceToCap(records, maxPerBucket, rng)
}

// BalanceToCap enforces a fixed per-bucket cap. Buckets at or under
// the cap pass through untouched, so applying it again with the same
// cap is a no-op.
func BalanceToCap(records []dataset.Record, maxPerBucket int, rng *rand.Rand) (kept, removed []dataset.Record) {
	if len(records) == 0 {
		return nil, nil
	}

	buckets := make(map[string][]int)
	for i := range records {
		name := Classify(records[i].Question)
		buckets[name] = append(buckets[name], i)
	}

	// Iterate buckets in sorted name order so rng consumption, and
	// therefore the sampled set, does not depend on map order.
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	drop := make(map[int]bool)
	for _, name := range names {
		idx := buckets[name]
		if len(idx) <= maxPerBucket {
			continue
		}
		keepSet := make(map[int]bool, maxPerBucket)
		for _, pos := range sampleIndices(len(idx), maxPerBucket, rng) {
			keepSet[pos] = true
		}
		for pos, recIdx := range idx {
			if !keepSet[pos] {
				drop[recIdx] = true
			}
		}
	}

	for i := range records {
		if drop[i] {
			removed = append(removed, records[i])
		} else {
			kept = append(kept, records[i])
		}
	}
	return kept, removed
}

// sampleIndices picks k of n positions without replacement.
func sampleIndices(n, k int, rng *rand.Rand) []int {
	if k >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if k <= 0 {
		return nil
	}
	return rng.Perm(n)[:k]
}
