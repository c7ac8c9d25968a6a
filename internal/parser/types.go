package parser

// RowLabel 行分类标签
type RowLabel string

const (
	LabelNoise    RowLabel = "noise"    // 噪声行（注释、警告、脚注等）
	LabelCategory RowLabel = "category" // 分类标题行
	LabelItem     RowLabel = "item"     // 计价条目行
)

// ColumnIndices 必需列的定位结果
// 索引为 -1 表示未找到对应列
type ColumnIndices struct {
	Item     int `json:"item"`     // 条目名称列
	Unit     int `json:"unit"`     // 计量单位列
	National int `json:"national"` // National 价格列
	SA       int `json:"sa"`       // SA 价格列
}

// Valid 判断是否找到了解析必需的列
// National/SA 价格列缺失时仍可解析（价格按 0 处理）
func (c ColumnIndices) Valid() bool {
	return c.Item >= 0 && c.Unit >= 0
}
