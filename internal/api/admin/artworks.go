package admin

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/database"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// seriesRef resolves an optional seriesId; zero means "no series".
func seriesRef(tx *gorm.DB, seriesID *uint) (*uint, error) {
	if seriesID == nil || *seriesID == 0 {
		return nil, nil
	}
	var s works.Series
	if err := tx.First(&s, *seriesID).Error; err != nil {
		return nil, err
	}
	return seriesID, nil
}

func applyArtworkPayload(a *works.Artwork, p *ArtworkPayload) {
	a.Title = p.Title
	a.Artist = p.Artist
	a.Category = p.Category
	a.Price = *p.Price
	a.ImageURL = p.ImageURL
	a.Description = p.Description
	a.Dimensions = p.Dimensions
	a.Medium = p.Medium
	a.Year = *p.Year

	a.IsAvailable = true
	if p.IsAvailable != nil {
		a.IsAvailable = *p.IsAvailable
	}
	a.InGallery = false
	if p.InGallery != nil {
		a.InGallery = *p.InGallery
	}
	a.Featured = false
	if p.Featured != nil {
		a.Featured = *p.Featured
	}
}

// GET /admin/artworks
func ListArtworks(c *gin.Context) {
	var items []works.Artwork
	err := database.DB.Preload("Series").Order("created_at DESC").Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load artworks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "total": len(items)})
}

// POST /admin/artworks
func CreateArtwork(c *gin.Context) {
	var req ArtworkPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Malformed request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	var artwork works.Artwork
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		ref, err := seriesRef(tx, req.SeriesID)
		if err != nil {
			return err
		}

		applyArtworkPayload(&artwork, &req)
		artwork.SeriesID = ref

		return tx.Create(&artwork).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create artwork"})
		return
	}

	database.DB.Preload("Series").First(&artwork, artwork.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": artwork})
}

// PUT /admin/artworks/:id
func UpdateArtwork(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ArtworkPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Malformed request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	var artwork works.Artwork
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artwork, id).Error; err != nil {
			return err
		}

		ref, err := seriesRef(tx, req.SeriesID)
		if err != nil {
			return err
		}

		applyArtworkPayload(&artwork, &req)
		artwork.SeriesID = ref

		return tx.Save(&artwork).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update artwork"})
		return
	}

	database.DB.Preload("Series").First(&artwork, artwork.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": artwork})
}

// DELETE /admin/artworks/:id
func DeleteArtwork(c *gin.Context) {
	id, ok := pathID(c)
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

	if err := database.DB.Delete(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Artwork deleted successfully"})
}
