package recipe

import "strings"

// NormalizeTokens 以逗號切分食材，去除空白並轉小寫，保留順序
func NormalizeTokens(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.ToLower(strings.TrimSpace(part)); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// MatchesToken 食材名稱與任一 token 互相包含即視為符合（不分大小寫）
func MatchesToken(name string, tokens []string) bool {
	name = strings.ToLower(name)
	for _, token := range tokens {
		if strings.Contains(name, token) || strings.Contains(token, name) {
			return true
		}
	}
	return false
}
