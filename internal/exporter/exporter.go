package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/LCDatulya/costlibrary-to-sql/internal/store"
)

// Exporter 成本库导出器
// 将已入库的分类与条目写回为工作簿，便于核对一次导入的结果
type Exporter struct {
	store *store.Store
}

// NewExporter 创建导出器
func NewExporter(st *store.Store) *Exporter {
	return &Exporter{store: st}
}

const (
	sheetCategories = "Categories"
	sheetItems      = "Cost Elements"
)

// Export 导出成本库为工作簿
func (e *Exporter) Export() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetCategories); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetItems); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := e.fillCategories(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.fillItems(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// ExportToFile 导出并保存到指定路径
func (e *Exporter) ExportToFile(path string) error {
	f, err := e.Export()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *Exporter) fillCategories(f *excelize.File) error {
	categories, err := e.store.ListCategories()
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetCategories, "A1", &[]interface{}{"Category ID", "Category Name", "Discipline ID"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, c := range categories {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{c.CategoryID, c.Name, c.DisciplineID}
		if err := f.SetSheetRow(sheetCategories, cell, &row); err != nil {
			return fmt.Errorf("failed to write category row: %w", err)
		}
	}
	return nil
}

func (e *Exporter) fillItems(f *excelize.File) error {
	items, err := e.store.ListItems("")
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetItems, "A1", &[]interface{}{"Item", "Unit", "Price", "Category ID"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, it := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{it.Name, it.Unit, it.Price, it.CategoryID}
		if err := f.SetSheetRow(sheetItems, cell, &row); err != nil {
			return fmt.Errorf("failed to write item row: %w", err)
		}
	}
	return nil
}
