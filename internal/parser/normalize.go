package parser

import (
	"regexp"
	"strings"
)

var reWhitespaceRun = regexp.MustCompile(`\s+`)

// edgeCutset 需要从文本两端剥离的修饰字符
const edgeCutset = "*:-."

// CollapseText 折叠文本：去除首尾空白，内部连续空白压缩为单个空格
// 返回 false 表示原始值为空或仅含空白
func CollapseText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}
	text = reWhitespaceRun.ReplaceAllString(text, " ")
	return text, true
}

// CleanText 清洗文本：折叠空白后，反复剥离两端的 * : - . 修饰字符并再次去除空白
// 清洗结果为空时返回 false
// 分类判定使用 CollapseText 的结果（保留前导星号等噪声特征），
// 入库名称使用 CleanText 的结果
func CleanText(raw string) (string, bool) {
	text, ok := CollapseText(raw)
	if !ok {
		return "", false
	}

	for {
		next := strings.TrimSpace(strings.Trim(text, edgeCutset))
		if next == text {
			break
		}
		text = next
	}

	if text == "" {
		return "", false
	}
	return text, true
}
