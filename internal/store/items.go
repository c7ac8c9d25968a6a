package store

import (
	"fmt"

	"github.com/LCDatulya/costlibrary-to-sql/internal/model"
)

// InsertItem 插入成本条目（仅追加，不去重）
func (s *Store) InsertItem(item *model.CostItem) error {
	_, err := s.exec(`
		INSERT INTO cost_elements (item_name, unit, price, category_id)
		VALUES (?, ?, ?, ?)
	`, item.Name, item.Unit, item.Price, item.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// ListItems 列出全部成本条目；categoryID 非空时只列指定分类下的条目
func (s *Store) ListItems(categoryID string) ([]*model.CostItem, error) {
	query := `
		SELECT item_id, item_name, unit, price, category_id
		FROM cost_elements
	`
	args := []interface{}{}
	if categoryID != "" {
		query += ` WHERE category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY item_id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]*model.CostItem, 0)
	for rows.Next() {
		var it model.CostItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Unit, &it.Price, &it.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// CountItems 统计成本条目数量
func (s *Store) CountItems() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM cost_elements`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}
