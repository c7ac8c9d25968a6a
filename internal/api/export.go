package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LCDatulya/costlibrary-to-sql/internal/exporter"
)

// Export 导出成本库为工作簿，返回下载令牌
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	exportPath := filepath.Join(h.dataDir, "exports",
		fmt.Sprintf("costlibrary_%s.xlsx", uuid.New().String()))

	if err := exporter.NewExporter(h.store).ExportToFile(exportPath); err != nil {
		h.channels.Error.Log("导出失败: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败"})
		return
	}

	token := h.downloads.put(exportPath, 10*time.Minute)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// DownloadExport 下载导出文件
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	download, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}

	filename := fmt.Sprintf("costlibrary_%s.xlsx", time.Now().Format("20060102"))
	c.FileAttachment(download.filePath, filename)
}
