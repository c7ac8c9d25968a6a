package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCategories 列出全部分类
// GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.store.ListCategories()
	if err != nil {
		h.channels.Error.Log("查询分类失败: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询分类失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListCategoryItems 列出指定分类下的条目
// GET /api/categories/:id/items
func (h *Handler) ListCategoryItems(c *gin.Context) {
	categoryID := c.Param("id")

	category, err := h.store.GetCategory(categoryID)
	if err != nil {
		h.channels.Error.Log("查询分类失败: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询分类失败"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "分类不存在"})
		return
	}

	items, err := h.store.ListItems(categoryID)
	if err != nil {
		h.channels.Error.Log("查询条目失败: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询条目失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"items":    items,
	})
}

// ListItems 列出全部条目
// GET /api/items
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.store.ListItems(c.Query("categoryId"))
	if err != nil {
		h.channels.Error.Log("查询条目失败: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询条目失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
