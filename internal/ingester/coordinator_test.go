package ingester

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/LCDatulya/costlibrary-to-sql/internal/logging"
	"github.com/LCDatulya/costlibrary-to-sql/internal/store"
)

// newTestStore 创建临时目录下的 SQLite 存储
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "costlibrary.db"), logging.NullSink{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// writeWorkbook 构造测试工作簿：每个 sheet 的首行为表头，数据行紧随其后
func writeWorkbook(t *testing.T, sheets map[string][][]interface{}, order []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("new sheet: %v", err)
			}
		}
		for r, row := range sheets[name] {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// drain 消费进度通道并返回最终报告
func drain(t *testing.T, ch <-chan ProgressEvent) *Report {
	t.Helper()
	var report *Report
	for evt := range ch {
		if evt.Type == "done" {
			r, ok := evt.Data.(*Report)
			if !ok {
				t.Fatalf("done event data is %T", evt.Data)
			}
			report = r
		}
	}
	if report == nil {
		t.Fatalf("no done event received")
	}
	return report
}

var header = []interface{}{"Item", "Unit", "National Price", "SA Price"}

func TestImport_CategoryThenItem(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	path := writeWorkbook(t, map[string][][]interface{}{
		"Costs": {
			header,
			{"Earthworks", "", "", ""},
			{"Excavation", "m3", "100", "120"},
		},
	}, []string{"Costs"})

	coord := NewCoordinator(st, logging.NullChannels(), 0)
	report := drain(t, coord.Import(Options{FilePath: path, DisciplineID: "3"}))

	if report.CategoryCount != 1 || report.ItemCount != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}

	cat, err := st.GetCategory("001")
	if err != nil || cat == nil {
		t.Fatalf("get category: %v %v", cat, err)
	}
	if cat.Name != "Earthworks" || cat.DisciplineID != "3" {
		t.Fatalf("unexpected category: %+v", cat)
	}

	items, err := st.ListItems("001")
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("want 1 item got %d", len(items))
	}
	if items[0].Name != "Excavation" || items[0].Unit != "m3" || items[0].Price != 120 {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestImport_ItemBeforeCategoryDropped(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	path := writeWorkbook(t, map[string][][]interface{}{
		"Costs": {
			header,
			{"Excavation", "m3", "100", "120"},
		},
	}, []string{"Costs"})

	coord := NewCoordinator(st, logging.NullChannels(), 0)
	report := drain(t, coord.Import(Options{FilePath: path, DisciplineID: "1"}))

	if report.CategoryCount != 0 || report.ItemCount != 0 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if report.DroppedRows != 1 {
		t.Fatalf("want 1 dropped row got %d", report.DroppedRows)
	}

	itemCount, err := st.CountItems()
	if err != nil || itemCount != 0 {
		t.Fatalf("want empty store got %d (%v)", itemCount, err)
	}
}

func TestImport_CategoryCarriesAcrossSheets(t *testing.T) {
	t.Parallel()

	// sheet 1 以分类收尾，sheet 2 开头直接是条目行：
	// 按跨 sheet 携带策略，该条目归属分类 001
	st := newTestStore(t)
	path := writeWorkbook(t, map[string][][]interface{}{
		"First": {
			header,
			{"Earthworks", "", "", ""},
		},
		"Second": {
			header,
			{"Excavation to reduced level", "m3", "90", "85"},
			{"Concrete Works", "", "", ""},
			{"25MPa concrete", "m3", "1,450", "1,500"},
		},
	}, []string{"First", "Second"})

	coord := NewCoordinator(st, logging.NullChannels(), 0)
	report := drain(t, coord.Import(Options{FilePath: path, DisciplineID: "2"}))

	if report.CategoryCount != 2 || report.ItemCount != 2 {
		t.Fatalf("unexpected counts: %+v", report)
	}

	carried, err := st.ListItems("001")
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(carried) != 1 || carried[0].Name != "Excavation to reduced level" {
		t.Fatalf("carryover item not attributed to 001: %+v", carried)
	}

	second, err := st.ListItems("002")
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(second) != 1 || second[0].Price != 1500 {
		t.Fatalf("unexpected 002 items: %+v", second)
	}
}

func TestImport_CounterContinuousAcrossSheets(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	path := writeWorkbook(t, map[string][][]interface{}{
		"A": {
			header,
			{"Earthworks", "", "", ""},
		},
		"B": {
			header,
			{"Concrete Works", "", "", ""},
		},
	}, []string{"A", "B"})

	coord := NewCoordinator(st, logging.NullChannels(), 0)
	drain(t, coord.Import(Options{FilePath: path, DisciplineID: "1"}))

	categories, err := st.ListCategories()
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("want 2 categories got %d", len(categories))
	}
	if categories[0].CategoryID != "001" || categories[1].CategoryID != "002" {
		t.Fatalf("counter reset between sheets: %s %s", categories[0].CategoryID, categories[1].CategoryID)
	}
}

func TestImport_SheetMissingColumnsSkipped(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	errSink := &logging.MemorySink{}
	channels := logging.NullChannels()
	channels.Error = errSink

	path := writeWorkbook(t, map[string][][]interface{}{
		"Bad": {
			{"Description", "Rate", "Amount"},
			{"Earthworks", "", ""},
		},
		"Good": {
			header,
			{"Earthworks", "", "", ""},
			{"Excavation", "m3", "100", "120"},
		},
	}, []string{"Bad", "Good"})

	coord := NewCoordinator(st, channels, 0)
	report := drain(t, coord.Import(Options{FilePath: path, DisciplineID: "1"}))

	if report.SkippedSheets != 1 || report.ImportedSheets != 1 {
		t.Fatalf("unexpected sheet counts: %+v", report)
	}
	if report.CategoryCount != 1 || report.ItemCount != 1 {
		t.Fatalf("good sheet not processed: %+v", report)
	}
	if len(errSink.All()) == 0 {
		t.Fatalf("missing-column error not reported")
	}
}

func TestImport_NoiseAndBareRowsSkipped(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	path := writeWorkbook(t, map[string][][]interface{}{
		"Costs": {
			header,
			{"NOTE: rates exclude VAT", "", "", ""},
			{"Earthworks", "", "", ""},
			{"** provisional", "sum", "10", "20"},
			{"42", "", "", ""},
			{"Excavation", "m3", "100", "120"},
			{"***", "", "", ""},
		},
	}, []string{"Costs"})

	coord := NewCoordinator(st, logging.NullChannels(), 0)
	report := drain(t, coord.Import(Options{FilePath: path, DisciplineID: "1"}))

	if report.CategoryCount != 1 || report.ItemCount != 1 {
		t.Fatalf("noise rows leaked into records: %+v", report)
	}
}

func TestImport_HeaderRowOffset(t *testing.T) {
	t.Parallel()

	// 源表格表头固定在第 6 行（索引 5），其上是标题与说明文字
	rows := [][]interface{}{
		{"ACME Cost Library"},
		{"Discipline: Civil"},
		{},
		{"Prepared 2024"},
		{},
		header,
		{"Earthworks", "", "", ""},
		{"Excavation", "m3", "100", "120"},
	}

	st := newTestStore(t)
	path := writeWorkbook(t, map[string][][]interface{}{"Costs": rows}, []string{"Costs"})

	coord := NewCoordinator(st, logging.NullChannels(), 5)
	report := drain(t, coord.Import(Options{FilePath: path, DisciplineID: "1"}))

	if report.CategoryCount != 1 || report.ItemCount != 1 {
		t.Fatalf("header offset not honored: %+v", report)
	}
}

func TestImport_OpenFileFailure(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	coord := NewCoordinator(st, logging.NullChannels(), 0)

	var sawError bool
	for evt := range coord.Import(Options{FilePath: filepath.Join(t.TempDir(), "missing.xlsx")}) {
		if evt.Type == "error" {
			sawError = true
		}
		if evt.Type == "done" {
			t.Fatalf("done event after fatal open failure")
		}
	}
	if !sawError {
		t.Fatalf("expected error event")
	}
}
