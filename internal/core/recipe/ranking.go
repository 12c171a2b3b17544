package recipe

import "sort"

// Rank 依符合比例（高到低）、蛋白質（高到低）、料理時間（短到長）排序。
// 回傳新的切片，完全相同者維持原順序。
func Rank(recipes []RecipeSummary) []RecipeSummary {
	ranked := make([]RecipeSummary, len(recipes))
	copy(ranked, recipes)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if ra, rb := matchRatio(a), matchRatio(b); ra != rb {
			return ra > rb
		}
		if a.ProteinGrams != b.ProteinGrams {
			return a.ProteinGrams > b.ProteinGrams
		}
		return a.ReadyInMinutes < b.ReadyInMinutes
	})
	return ranked
}
