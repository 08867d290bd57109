package matching

import (
	"sort"

	"delivery-matching/internal/domain"
)

// RankingCap is the maximum number of candidates returned to a driver.
const RankingCap = 20

// Rank orders candidates nearest first, newest first among equal distances, and keeps at most RankingCap.
// The input slice is not modified.
func Rank(cands []domain.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, len(cands))
	copy(out, cands)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		if !a.Order.CreatedAt.Equal(b.Order.CreatedAt) {
			return a.Order.CreatedAt.After(b.Order.CreatedAt)
		}
		return a.Order.ID < b.Order.ID
	})
	if len(out) > RankingCap {
		out = out[:RankingCap]
	}
	return out
}
