package mediablog

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/mediablog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /media-blog
func ListEntries(c *gin.Context) {
	var entries []mediablog.MediaBlogEntry
	err := database.DB.
		Preload("MediaFiles", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load media blog entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entries,
		"total":   len(entries),
	})
}
