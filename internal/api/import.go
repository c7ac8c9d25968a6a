package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LCDatulya/costlibrary-to-sql/internal/config"
	"github.com/LCDatulya/costlibrary-to-sql/internal/ingester"
)

// Import 导入成本库工作簿 (SSE 流式响应)
// POST /api/import
// 表单字段: file (工作簿), discipline (单字母专业代码)
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}
	uploadedFile := files[0]

	disciplineCode := c.PostForm("discipline")
	disciplineID, ok := config.DisciplineID(disciplineCode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("无效的专业代码: %q", disciplineCode)})
		return
	}

	// 保存到 uploads 目录，文件名用 uuid 防冲突
	uploadPath := filepath.Join(h.dataDir, "uploads",
		fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(uploadedFile.Filename)))
	if err := c.SaveUploadedFile(uploadedFile, uploadPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}

	// 设置 SSE 响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	coordinator := ingester.NewCoordinator(h.store, h.channels, h.cfg.Excel.HeaderRow)

	progressChan := coordinator.Import(ingester.Options{
		FilePath:         uploadPath,
		OriginalFilename: uploadedFile.Filename,
		DisciplineID:     disciplineID,
	})

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		// SSE 格式: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}
