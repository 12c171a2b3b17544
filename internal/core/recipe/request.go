package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	defaultMinProtein = 0
	// UnboundedMaxTime 代表不限制料理時間
	UnboundedMaxTime = 999
)

// SearchRequest 搜尋請求
type SearchRequest struct {
	Ingredients IngredientList `json:"ingredients"`
	MinProtein  FlexibleNumber `json:"minProtein"`
	MaxTime     FlexibleNumber `json:"maxTime"`
}

// IngredientList 接受逗號分隔字串或字串陣列
type IngredientList struct {
	Raw      string
	Provided bool
}

// UnmarshalJSON 陣列以逗號串接
func (l *IngredientList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = IngredientList{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = IngredientList{Raw: s, Provided: s != ""}
		return nil
	}

	var items []interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("ingredients must be a string or an array of strings")
	}
	parts := make([]string, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			parts[i] = v
		case float64:
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			parts[i] = ""
		default:
			return fmt.Errorf("ingredients must be a string or an array of strings")
		}
	}
	*l = IngredientList{Raw: strings.Join(parts, ","), Provided: true}
	return nil
}

// Strings 建立 IngredientList（測試與程式呼叫用）
func Strings(items ...string) IngredientList {
	return IngredientList{Raw: strings.Join(items, ","), Provided: true}
}

// FlexibleNumber 接受數字或數字字串；無法解析時視為未提供
type FlexibleNumber struct {
	Value float64
	Valid bool
}

// Number 建立有效數值
func Number(v float64) FlexibleNumber {
	return FlexibleNumber{Value: v, Valid: true}
}

// UnmarshalJSON 解析數字、數字字串或 null
func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	*n = FlexibleNumber{}
	data = bytes.TrimSpace(data)

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			*n = Number(f)
		}
	}
	return nil
}

// minProtein 負值或無效時為 0
func (r SearchRequest) minProtein() float64 {
	if !r.MinProtein.Valid || r.MinProtein.Value < 0 {
		return defaultMinProtein
	}
	return r.MinProtein.Value
}

// maxTime 非正數或無效時為不限制
func (r SearchRequest) maxTime() float64 {
	if !r.MaxTime.Valid || r.MaxTime.Value <= 0 {
		return UnboundedMaxTime
	}
	return r.MaxTime.Value
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
