package recipe

import (
	"math"
	"regexp"
	"strings"
)

const summaryPreviewLength = 150

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML 移除 HTML 標籤
func stripHTML(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}

// previewSummary 去除標籤後取前 150 字並附加刪節號；空字串維持空字串
func previewSummary(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(stripHTML(s))
	if len(runes) > summaryPreviewLength {
		runes = runes[:summaryPreviewLength]
	}
	return string(runes) + "..."
}

// roundHalfUp 四捨五入到整數，.5 一律往正無限大
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// matchPercentage used/(used+missed) 的百分比，分母為 0 時為 0
func matchPercentage(used, missed int) int {
	total := used + missed
	if total == 0 {
		return 0
	}
	return int(roundHalfUp(float64(used) / float64(total) * 100))
}

// matchRatio 排序用的符合比例
func matchRatio(r RecipeSummary) float64 {
	total := r.UsedIngredientCount + r.MissedIngredientCount
	if total == 0 {
		return 0
	}
	return float64(r.UsedIngredientCount) / float64(total)
}

// findNutrientAmount 以名稱（不分大小寫）查找營養素並四捨五入，找不到為 0
func findNutrientAmount(nutrients []Nutrient, name string) float64 {
	for _, n := range nutrients {
		if strings.EqualFold(n.Name, name) {
			return roundHalfUp(n.Amount)
		}
	}
	return 0
}

// cloneStrings 複製字串切片，nil 轉為空切片
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
