package profile

import "github.com/KaramelBytes/dataprof-cli/internal/dataset"

// duplicateRows finds rows whose full value tuple equals an earlier row's.
// The first occurrence is not counted; indices are in row order.
func duplicateRows(t *dataset.Table) (count int, indices []int) {
	seen := make(map[string]struct{}, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		key := t.RowKey(i)
		if _, ok := seen[key]; ok {
			count++
			indices = append(indices, i)
			continue
		}
		seen[key] = struct{}{}
	}
	return count, indices
}
