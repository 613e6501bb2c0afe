package artworks

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/database"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func artworkID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid artwork ID"})
		return 0, false
	}
	return uint(id), true
}

// GET /artworks
func ListArtworks(c *gin.Context) {
	var total int64
	if err := filteredQuery(database.DB, c).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load artworks"})
		return
	}

	offset, limit := pagination(c)

	var items []works.Artwork
	err := filteredQuery(database.DB, c).
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"total":   total,
	})
}

// GET /artworks/:id
func GetArtwork(c *gin.Context) {
	id, ok := artworkID(c)
	if !ok {
		return
	}

	var artwork works.Artwork
	err := database.DB.Preload("Series").First(&artwork, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": artwork})
}

// POST /artworks/:id/like
func LikeArtwork(c *gin.Context) {
	incrementCounter(c, "likes")
}

// POST /artworks/:id/view
func ViewArtwork(c *gin.Context) {
	incrementCounter(c, "views")
}

func incrementCounter(c *gin.Context, column string) {
	id, ok := artworkID(c)
	if !ok {
		return
	}

	var artwork works.Artwork
	if err := database.DB.First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	err := database.DB.Model(&artwork).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	// Re-read so the response carries the incremented count.
	if err := database.DB.First(&artwork, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": artwork})
}
