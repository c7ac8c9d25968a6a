package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LCDatulya/costlibrary-to-sql/internal/config"
)

// ConfigResponse 配置响应
type ConfigResponse struct {
	HeaderRow   int      `json:"headerRow"`   // 表头行索引（0 起）
	Disciplines []string `json:"disciplines"` // 可选专业代码
}

// GetConfig 获取配置
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		HeaderRow:   h.cfg.Excel.HeaderRow,
		Disciplines: config.DisciplineCodes(),
	})
}

// UpdateConfigRequest 配置更新请求
type UpdateConfigRequest struct {
	HeaderRow *int `json:"headerRow"`
}

// UpdateConfig 更新配置
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	if req.HeaderRow != nil {
		if *req.HeaderRow < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "表头行索引不能为负"})
			return
		}
		h.cfg.Excel.HeaderRow = *req.HeaderRow
	}

	if err := config.SaveConfig(h.cfg); err != nil {
		h.channels.Error.Log("保存配置失败: " + err.Error())
	}

	c.JSON(http.StatusOK, ConfigResponse{
		HeaderRow:   h.cfg.Excel.HeaderRow,
		Disciplines: config.DisciplineCodes(),
	})
}
