package parser

import (
	"strconv"
	"strings"
)

// ParsePrice 解析价格单元格：空值或无法解析时返回 0
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// 移除千分位分隔符
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// MaxPrice 取 National 与 SA 两个价格中的较大值
// 任一侧缺失或非数字按 0 参与比较，永不失败
func MaxPrice(national, sa string) float64 {
	a := ParsePrice(national)
	b := ParsePrice(sa)
	if a > b {
		return a
	}
	return b
}
