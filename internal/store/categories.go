package store

import (
	"database/sql"
	"fmt"

	"github.com/LCDatulya/costlibrary-to-sql/internal/model"
)

// InsertCategory 插入成本分类
// 使用 INSERT OR IGNORE：同一 category_id 重复插入被静默忽略（幂等）
func (s *Store) InsertCategory(category *model.CostCategory) error {
	_, err := s.exec(`
		INSERT OR IGNORE INTO cost_categories (category_id, category_name, discipline_id)
		VALUES (?, ?, ?)
	`, category.CategoryID, category.Name, category.DisciplineID)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// GetCategory 按编号查询分类
func (s *Store) GetCategory(categoryID string) (*model.CostCategory, error) {
	row := s.db.QueryRow(`
		SELECT category_id, category_name, discipline_id
		FROM cost_categories WHERE category_id = ?
	`, categoryID)

	var c model.CostCategory
	if err := row.Scan(&c.CategoryID, &c.Name, &c.DisciplineID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

// ListCategories 按编号顺序列出全部分类
func (s *Store) ListCategories() ([]*model.CostCategory, error) {
	rows, err := s.db.Query(`
		SELECT category_id, category_name, discipline_id
		FROM cost_categories ORDER BY category_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*model.CostCategory, 0)
	for rows.Next() {
		var c model.CostCategory
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.DisciplineID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// CountCategories 统计分类数量
func (s *Store) CountCategories() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM cost_categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
