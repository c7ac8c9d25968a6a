package parser

import "strings"

// FindColumns 在表头行中定位必需列
// 按 item / unit / national / sa 的优先顺序逐个扫描，
// 列名匹配为忽略大小写的子串包含，各取首个命中的列
func FindColumns(headers []string) ColumnIndices {
	return ColumnIndices{
		Item:     findContainsCol(headers, "item"),
		Unit:     findContainsCol(headers, "unit"),
		National: findContainsCol(headers, "national"),
		SA:       findContainsCol(headers, "sa"),
	}
}

func findContainsCol(headers []string, sub string) int {
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		if strings.Contains(h, sub) {
			return i
		}
	}
	return -1
}

// GetCell 按索引取行内单元格并去除首尾空白，越界或索引无效返回空串
func GetCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
