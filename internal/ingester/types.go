package ingester

import (
	"time"

	"github.com/LCDatulya/costlibrary-to-sql/internal/model"
)

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`      // start/sheet_start/info/warning/sheet_done/error/done
	Message   string      `json:"message"`   // 事件消息
	Data      interface{} `json:"data"`      // 附加数据
	Timestamp time.Time   `json:"timestamp"` // 时间戳
}

// SheetResult 单个 sheet 的处理结果
type SheetResult struct {
	SheetName     string        `json:"sheetName"`
	Status        string        `json:"status"` // imported/skipped/error
	CategoryCount int           `json:"categoryCount"`
	ItemCount     int           `json:"itemCount"`
	DroppedRows   int           `json:"droppedRows"` // 无分类归属被丢弃的条目行
	Errors        []string      `json:"errors,omitempty"`
	Duration      time.Duration `json:"duration"`
}

// Report 一次导入的汇总报告
type Report struct {
	Filename       string               `json:"filename"`
	DisciplineID   string               `json:"disciplineId"`
	TotalSheets    int                  `json:"totalSheets"`
	ImportedSheets int                  `json:"importedSheets"`
	SkippedSheets  int                  `json:"skippedSheets"`
	CategoryCount  int                  `json:"categoryCount"`
	ItemCount      int                  `json:"itemCount"`
	DroppedRows    int                  `json:"droppedRows"`
	Duration       time.Duration        `json:"duration"`
	Sheets         []SheetResult        `json:"sheets"`
	Categories     []model.CostCategory `json:"categories"` // 本次导入产出的分类（按编号顺序）
}

// RunState 一次导入过程的显式累加器
// 分类计数器与当前分类跨 sheet 连续：编号在整次导入内唯一且不回拨，
// 新 sheet 开头的条目行在未出现新分类标题前仍归属上一个 sheet 的末尾分类
type RunState struct {
	Counter           int    // 分类编号计数器（全程递增）
	CurrentCategoryID string // 当前分类编号，空串表示尚无分类
}

// InCategory 判断当前是否已有分类归属
func (s *RunState) InCategory() bool {
	return s.CurrentCategoryID != ""
}
