package index

import "sort"

// sortDescending orders scores from highest to lowest. The order of equal
// scores is not defined: sort.Slice is not stable and no secondary key is
// used. No test here depends on a particular tie order.
func sortDescending(scores []DocScore) {
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}

// SortDescending is the exported form used by internal/rank's scorers,
// which build []DocScore outside this package but want the same ordering
// rule.
func SortDescending(scores []DocScore) {
	sortDescending(scores)
}
