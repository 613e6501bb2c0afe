package admin

import (
	"errors"
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/series
func ListSeries(c *gin.Context) {
	var items []works.Series
	if err := database.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch series"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "total": len(items)})
}

// POST /admin/series
func CreateSeries(c *gin.Context) {
	var req SeriesPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Malformed request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Series name is required."})
		return
	}

	s := works.Series{
		Name:        req.Name,
		Slug:        works.Slugify(req.Name),
		Description: req.Description,
	}
	if err := database.DB.Create(&s).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A series with this name already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": s})
}

// PUT /admin/series
func UpdateSeries(c *gin.Context) {
	var req SeriesPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Malformed request body"})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Series ID is required and must be a number."})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Series name is required."})
		return
	}

	var s works.Series
	if err := database.DB.First(&s, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Series not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update series"})
		return
	}

	s.Name = req.Name
	s.Description = req.Description
	if err := database.DB.Save(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update series"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
}

// DELETE /admin/series/:id
//
// A series that still contains artworks cannot be deleted.
func DeleteSeries(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var s works.Series
	if err := database.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Series not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	var linked int64
	if err := database.DB.Model(&works.Artwork{}).Where("series_id = ?", id).Count(&linked).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if linked > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Cannot delete series: It still contains artworks. Please reassign or delete artworks first.",
		})
		return
	}

	if err := database.DB.Delete(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete series"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Series deleted successfully"})
}
