package api

import (
	"github.com/gin-gonic/gin"

	"github.com/LCDatulya/costlibrary-to-sql/internal/config"
	"github.com/LCDatulya/costlibrary-to-sql/internal/logging"
	"github.com/LCDatulya/costlibrary-to-sql/internal/store"
)

// Handler API 处理器
type Handler struct {
	store     *store.Store
	cfg       *config.AppConfig
	channels  logging.Channels
	dataDir   string
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, cfg *config.AppConfig, channels logging.Channels, dataDir string) *Handler {
	return &Handler{
		store:     st,
		cfg:       cfg,
		channels:  channels,
		dataDir:   dataDir,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 配置管理
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 数据导入
	router.POST("/import", h.Import)

	// 成本库查询
	router.GET("/categories", h.ListCategories)
	router.GET("/categories/:id/items", h.ListCategoryItems)
	router.GET("/items", h.ListItems)

	// 数据导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
