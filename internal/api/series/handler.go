package series

import (
	"errors"
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /series
func ListSeries(c *gin.Context) {
	var items []works.Series
	err := database.DB.
		Preload("Artworks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load series"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"total":   len(items),
	})
}

// GET /series/:slug
func GetSeriesBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid series slug"})
		return
	}

	var s works.Series
	err := database.DB.
		Preload("Artworks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("slug = ?", slug).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Series not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
}
