package recipe

// SourceMode 資料來源策略，由 USE_SAMPLE_RECIPES 決定
type SourceMode int

const (
	// PreferLiveWithFallback 優先上游，失敗或無 API key 時使用範例資料
	PreferLiveWithFallback SourceMode = iota
	// ForcedSample 一律使用範例資料
	ForcedSample
	// LiveOnly 只用上游，不回退
	LiveOnly
)

// ParseSourceMode "true" 強制範例資料，"false" 停用回退，其他值允許回退
func ParseSourceMode(flag string) SourceMode {
	switch flag {
	case "true":
		return ForcedSample
	case "false":
		return LiveOnly
	default:
		return PreferLiveWithFallback
	}
}

// AllowsFallback 上游失敗時是否可改用範例資料
func (m SourceMode) AllowsFallback() bool {
	return m != LiveOnly
}

func (m SourceMode) String() string {
	switch m {
	case ForcedSample:
		return "forced_sample"
	case LiveOnly:
		return "live_only"
	default:
		return "prefer_live"
	}
}
