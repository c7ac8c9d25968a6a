package store

import "fmt"

// CreateImportLog 创建导入日志，返回 import_log_id
func (s *Store) CreateImportLog(filename, disciplineID string) (int64, error) {
	res, err := s.exec(`
		INSERT INTO import_logs (filename, discipline_id, status)
		VALUES (?, ?, 'processing')
	`, filename, disciplineID)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// UpdateImportLog 完成导入日志更新
func (s *Store) UpdateImportLog(id int64, totalSheets, importedSheets, skippedSheets, categoryCount, itemCount int, status, errorMessage string) error {
	_, err := s.exec(`
		UPDATE import_logs SET
			total_sheets = ?,
			imported_sheets = ?,
			skipped_sheets = ?,
			category_count = ?,
			item_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalSheets, importedSheets, skippedSheets, categoryCount, itemCount, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// LastImportTime 查询最近一次成功导入的完成时间，无记录时返回空串
func (s *Store) LastImportTime() (string, error) {
	var t string
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(completed_at), '') FROM import_logs WHERE status = 'done'
	`).Scan(&t)
	if err != nil {
		return "", fmt.Errorf("failed to query last import time: %w", err)
	}
	return t, nil
}
