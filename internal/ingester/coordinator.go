package ingester

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/LCDatulya/costlibrary-to-sql/internal/logging"
	"github.com/LCDatulya/costlibrary-to-sql/internal/model"
	"github.com/LCDatulya/costlibrary-to-sql/internal/parser"
	"github.com/LCDatulya/costlibrary-to-sql/internal/store"
)

// Coordinator 导入协调器
// 顺序遍历工作簿的每个 sheet，将分类标题与计价条目写入存储
// 行级与 sheet 级故障只记日志并继续，打开工作簿失败才终止整次导入
type Coordinator struct {
	store     *store.Store
	channels  logging.Channels
	headerRow int
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.Store, channels logging.Channels, headerRow int) *Coordinator {
	if channels.SQL == nil {
		channels.SQL = logging.NullSink{}
	}
	if channels.Change == nil {
		channels.Change = logging.NullSink{}
	}
	if channels.Error == nil {
		channels.Error = logging.NullSink{}
	}
	return &Coordinator{
		store:     st,
		channels:  channels,
		headerRow: headerRow,
	}
}

// Options 导入选项
type Options struct {
	FilePath         string
	OriginalFilename string // 展示用文件名，为空时取 FilePath 的文件名
	DisciplineID     string // 专业编号，写入每个分类记录
}

// Import 执行导入，返回进度通道
// 最后一个 done 事件的 Data 为 *Report
func (c *Coordinator) Import(opts Options) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts Options, progressChan chan ProgressEvent) {
	startTime := time.Now()

	filename := opts.OriginalFilename
	if filename == "" {
		filename = filepath.Base(opts.FilePath)
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "start",
		Message: "开始导入成本库文件",
		Data: map[string]string{
			"filename":   filename,
			"discipline": opts.DisciplineID,
		},
		Timestamp: time.Now(),
	})

	file, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		c.channels.Error.Log(fmt.Sprintf("打开文件失败: %v", err))
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("打开文件失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}
	defer file.Close()

	report := &Report{
		Filename:     filename,
		DisciplineID: opts.DisciplineID,
		Sheets:       []SheetResult{},
		Categories:   []model.CostCategory{},
	}

	logID, err := c.store.CreateImportLog(filename, opts.DisciplineID)
	if err != nil {
		c.channels.Error.Log(fmt.Sprintf("创建导入日志失败: %v", err))
	}

	sheetList := file.GetSheetList()
	report.TotalSheets = len(sheetList)

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("发现 %d 个 Sheet", len(sheetList)),
		Data: map[string]interface{}{
			"total_sheets": len(sheetList),
		},
		Timestamp: time.Now(),
	})

	// 分类计数器与当前分类跨 sheet 携带
	state := &RunState{}

	for _, sheetName := range sheetList {
		result := c.processSheet(file, sheetName, opts.DisciplineID, state, report, progressChan)
		report.Sheets = append(report.Sheets, result)
		switch result.Status {
		case "imported":
			report.ImportedSheets++
		default:
			report.SkippedSheets++
		}
		report.CategoryCount += result.CategoryCount
		report.ItemCount += result.ItemCount
		report.DroppedRows += result.DroppedRows
	}

	report.Duration = time.Since(startTime)

	c.logFoundCategories(report)

	if logID > 0 {
		if err := c.store.UpdateImportLog(logID,
			report.TotalSheets, report.ImportedSheets, report.SkippedSheets,
			report.CategoryCount, report.ItemCount, "done", ""); err != nil {
			c.channels.Error.Log(fmt.Sprintf("更新导入日志失败: %v", err))
		}
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "done",
		Message:   "导入完成",
		Data:      report,
		Timestamp: time.Now(),
	})
}

// processSheet 处理单个 sheet
// 表头定位失败整个 sheet 跳过；行级处理遵循分类状态机：
// 噪声行跳过，分类行推进计数器并切换当前分类，
// 条目行在无分类归属时丢弃（仅记信息日志）
func (c *Coordinator) processSheet(file *excelize.File, sheetName, disciplineID string, state *RunState, report *Report, progressChan chan ProgressEvent) SheetResult {
	sheetStartTime := time.Now()

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "sheet_start",
		Message: fmt.Sprintf("正在处理 Sheet: %s", sheetName),
		Data: map[string]string{
			"sheet_name": sheetName,
		},
		Timestamp: time.Now(),
	})

	rows, err := file.GetRows(sheetName)
	if err != nil {
		c.channels.Error.Log(fmt.Sprintf("读取 Sheet %s 失败: %v", sheetName, err))
		return SheetResult{
			SheetName: sheetName,
			Status:    "error",
			Errors:    []string{fmt.Sprintf("读取 Sheet 失败: %v", err)},
			Duration:  time.Since(sheetStartTime),
		}
	}

	if len(rows) <= c.headerRow {
		c.channels.Change.Log(fmt.Sprintf("Sheet %s 行数不足，无表头行，跳过", sheetName))
		return SheetResult{
			SheetName: sheetName,
			Status:    "skipped",
			Errors:    []string{"表头行缺失"},
			Duration:  time.Since(sheetStartTime),
		}
	}

	cols := parser.FindColumns(rows[c.headerRow])
	if !cols.Valid() {
		c.channels.Error.Log(fmt.Sprintf("Sheet %s 缺少必需列 (item/unit)，跳过", sheetName))
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("Sheet \"%s\" 缺少必需列，跳过", sheetName),
			Timestamp: time.Now(),
		})
		return SheetResult{
			SheetName: sheetName,
			Status:    "skipped",
			Errors:    []string{"缺少必需列 (item/unit)"},
			Duration:  time.Since(sheetStartTime),
		}
	}

	result := SheetResult{
		SheetName: sheetName,
		Status:    "imported",
	}

	for i, row := range rows[c.headerRow+1:] {
		rowNo := c.headerRow + i + 2 // Excel 1 起行号

		raw := parser.GetCell(row, cols.Item)
		cleaned, ok := parser.CleanText(raw)
		if !ok {
			continue
		}

		// 分类判定在仅折叠空白的文本上进行：前导星号等噪声特征需保留
		collapsed, _ := parser.CollapseText(raw)
		hasUnit := parser.GetCell(row, cols.Unit) != ""

		switch parser.Classify(collapsed, hasUnit) {
		case parser.LabelNoise:
			continue

		case parser.LabelCategory:
			state.Counter++
			state.CurrentCategoryID = fmt.Sprintf("%03d", state.Counter)

			category := model.CostCategory{
				CategoryID:   state.CurrentCategoryID,
				Name:         cleaned,
				DisciplineID: disciplineID,
			}
			if err := c.store.InsertCategory(&category); err != nil {
				c.channels.Error.Log(fmt.Sprintf("Sheet %s 行 %d 写入分类失败: %v", sheetName, rowNo, err))
				continue
			}
			report.Categories = append(report.Categories, category)
			result.CategoryCount++
			c.channels.Change.Log(fmt.Sprintf("分类 %s: %s", category.CategoryID, category.Name))

		case parser.LabelItem:
			if !state.InCategory() {
				result.DroppedRows++
				c.channels.Change.Log(fmt.Sprintf("Sheet %s 行 %d 条目 %q 无分类归属，丢弃", sheetName, rowNo, cleaned))
				continue
			}

			item := model.CostItem{
				Name:       cleaned,
				Unit:       parser.GetCell(row, cols.Unit),
				Price:      parser.MaxPrice(parser.GetCell(row, cols.National), parser.GetCell(row, cols.SA)),
				CategoryID: state.CurrentCategoryID,
			}
			if err := c.store.InsertItem(&item); err != nil {
				c.channels.Error.Log(fmt.Sprintf("Sheet %s 行 %d 写入条目失败: %v", sheetName, rowNo, err))
				continue
			}
			result.ItemCount++
		}
	}

	result.Duration = time.Since(sheetStartTime)

	c.channels.Change.Log(fmt.Sprintf("Sheet %s 处理完成: %d 个分类, %d 个条目", sheetName, result.CategoryCount, result.ItemCount))
	c.sendProgress(progressChan, ProgressEvent{
		Type:    "sheet_done",
		Message: fmt.Sprintf("Sheet \"%s\" 处理完成: %d 个分类, %d 个条目", sheetName, result.CategoryCount, result.ItemCount),
		Data: map[string]interface{}{
			"sheet_name":     sheetName,
			"category_count": result.CategoryCount,
			"item_count":     result.ItemCount,
		},
		Timestamp: time.Now(),
	})

	return result
}

// logFoundCategories 在变更日志中汇总本次导入产出的分类
func (c *Coordinator) logFoundCategories(report *Report) {
	if len(report.Categories) == 0 {
		c.channels.Change.Log("本次导入未产出任何分类")
		return
	}
	c.channels.Change.Log("本次导入产出的分类:")
	for _, category := range report.Categories {
		c.channels.Change.Log(fmt.Sprintf("  %s: %s", category.CategoryID, category.Name))
	}
}

// sendProgress 发送进度事件（非阻塞，通道满时丢弃）
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
	}
}
