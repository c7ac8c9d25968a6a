package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // 是否已有数据
	CategoryCount  int    `json:"categoryCount"`  // 分类总数
	ItemCount      int    `json:"itemCount"`      // 条目总数
	LastImportTime string `json:"lastImportTime"` // 最后导入完成时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	categoryCount, err := h.store.CountCategories()
	if err != nil {
		categoryCount = 0
	}
	itemCount, err := h.store.CountItems()
	if err != nil {
		itemCount = 0
	}
	lastImport, err := h.store.LastImportTime()
	if err != nil {
		lastImport = ""
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    categoryCount > 0,
		CategoryCount:  categoryCount,
		ItemCount:      itemCount,
		LastImportTime: lastImport,
	})
}
