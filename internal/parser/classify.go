package parser

import (
	"strings"
	"unicode"
)

// Classify 对折叠后的单元格文本进行行分类
//
// 判定顺序（先命中先生效）：
//  1. 命中噪声规则表 → 噪声行
//  2. 单位列非空 → 条目行（条目名称允许以数字/规格开头，如 "2x4 timber"，
//     也允许短名，不做长度与纯数字排除）
//  3. 单位列为空时按分类标题规则判定：长度不足 2、首字符非字母数字、
//     去掉 "." 后为纯数字（页码/节号）的都视为噪声，其余为分类标题行
//
// 源表格中分类标题行不填单位与价格，条目行必定带单位，
// 纯数字排除只针对分类候选：页码看起来像裸分类名，必须排除
func Classify(text string, hasUnit bool) RowLabel {
	if _, noisy := MatchNoiseRule(text); noisy {
		return LabelNoise
	}

	if hasUnit {
		return LabelItem
	}

	runes := []rune(text)
	if len(runes) < 2 {
		return LabelNoise
	}
	if !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) {
		return LabelNoise
	}
	if isAllDigits(strings.ReplaceAll(text, ".", "")) {
		return LabelNoise
	}

	return LabelCategory
}

// isAllDigits 判断非空字符串是否全为十进制数字
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
