package model

// CostCategory 成本分类
// 分类编号由一次导入过程内的全局计数器生成，3 位零填充（"001"），
// 跨 sheet 连续编号，保证一次导入内唯一
type CostCategory struct {
	CategoryID   string `json:"categoryId"`   // 分类编号
	Name         string `json:"name"`         // 分类名称
	DisciplineID string `json:"disciplineId"` // 所属专业编号
}

// CostItem 成本条目
// 价格取 National 与 SA 两列中的较大值；CategoryID 指向最近一次产出的分类
type CostItem struct {
	ItemID     int64   `json:"itemId"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"categoryId"`
}

// Discipline 工程专业
type Discipline struct {
	Code string `json:"code"` // 单字母代码 (e/f/d/m/h/a)
	ID   string `json:"id"`   // 数据库编号
}
