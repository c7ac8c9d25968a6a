package parser

import "regexp"

// NoiseRule 噪声行判定规则
// 规则按固定顺序逐条匹配，命中任意一条即判定为噪声行
type NoiseRule struct {
	Name    string // 规则名，用于日志与测试定位
	Pattern *regexp.Regexp
}

// noiseRules 噪声规则表（顺序固定，均忽略大小写、锚定行首并容忍前导空白）
// 来源：成本库电子表格中常见的备注、警告、脚注写法
var noiseRules = []NoiseRule{
	{"asterisk_prefix", regexp.MustCompile(`(?i)^\s*\*{1,}`)},
	{"note", regexp.MustCompile(`(?i)^\s*NOTE[S]?\s*:`)},
	{"to_be", regexp.MustCompile(`(?i)^\s*TO BE\s+`)},
	{"guide", regexp.MustCompile(`(?i)^\s*GUIDE\s*:?`)},
	{"important", regexp.MustCompile(`(?i)^\s*IMPORTANT\s*:`)},
	{"warning", regexp.MustCompile(`(?i)^\s*WARNING\s*:`)},
	{"caution", regexp.MustCompile(`(?i)^\s*CAUTION\s*:`)},
	{"nota_bene", regexp.MustCompile(`(?i)^\s*N\.?B\.?\s*:`)},
	{"see_reference", regexp.MustCompile(`(?i)^\s*\(?see\s+`)},
}

// NoiseRules 返回噪声规则表（只读使用）
func NoiseRules() []NoiseRule {
	return noiseRules
}

// MatchNoiseRule 按表内顺序匹配噪声规则，返回首个命中的规则名
func MatchNoiseRule(text string) (string, bool) {
	for _, rule := range noiseRules {
		if rule.Pattern.MatchString(text) {
			return rule.Name, true
		}
	}
	return "", false
}
