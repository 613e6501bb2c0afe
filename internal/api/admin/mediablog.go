package admin

import (
	"errors"
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/mediablog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func preloadEntry(db *gorm.DB, id uint, entry *mediablog.MediaBlogEntry) error {
	return db.
		Preload("MediaFiles", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(entry, id).Error
}

// GET /admin/media-blog
func ListMediaBlogEntries(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries, "total": len(entries)})
}

// POST /admin/media-blog
func CreateMediaBlogEntry(c *gin.Context) {
	var req MediaBlogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Malformed request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	var entry mediablog.MediaBlogEntry
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		entry = mediablog.MediaBlogEntry{
			Title:        req.Title,
			ShortDesc:    req.ShortDesc,
			Type:         req.Type,
			ExternalLink: req.ExternalLink,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		for i, mf := range req.MediaFiles {
			file := mediablog.MediaBlogFile{
				MediaBlogEntryID: entry.ID,
				URL:              mf.URL,
				Type:             mf.Type,
				Description:      mf.Description,
				ThumbnailURL:     mf.ThumbnailURL,
				Order:            i,
			}
			if err := tx.Create(&file).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create media blog entry."})
		return
	}

	if err := preloadEntry(database.DB, entry.ID, &entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create media blog entry."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

// PUT /admin/media-blog/:id
//
// Nested files are reconciled against the incoming payload: files carrying
// an id are updated in place, files without one are created, and existing
// files absent from the payload are deleted. Order follows payload index.
func UpdateMediaBlogEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req MediaBlogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Malformed request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	var entry mediablog.MediaBlogEntry
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, id).Error; err != nil {
			return err
		}

		entry.Title = req.Title
		entry.ShortDesc = req.ShortDesc
		entry.Type = req.Type
		entry.ExternalLink = req.ExternalLink
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}

		var existing []mediablog.MediaBlogFile
		if err := tx.Where("media_blog_entry_id = ?", id).Find(&existing).Error; err != nil {
			return err
		}

		incomingIDs := map[uint]bool{}
		for _, mf := range req.MediaFiles {
			if mf.ID != 0 {
				incomingIDs[mf.ID] = true
			}
		}
		existingIDs := map[uint]bool{}
		for _, mf := range existing {
			existingIDs[mf.ID] = true
		}

		for _, mf := range existing {
			if !incomingIDs[mf.ID] {
				if err := tx.Delete(&mediablog.MediaBlogFile{}, mf.ID).Error; err != nil {
					return err
				}
			}
		}

		for i, mf := range req.MediaFiles {
			if mf.ID != 0 && existingIDs[mf.ID] {
				err := tx.Model(&mediablog.MediaBlogFile{}).
					Where("id = ? AND media_blog_entry_id = ?", mf.ID, id).
					Updates(map[string]interface{}{
						"url":           mf.URL,
						"type":          mf.Type,
						"description":   mf.Description,
						"thumbnail_url": mf.ThumbnailURL,
						"sort_order":    i,
					}).Error
				if err != nil {
					return err
				}
			} else {
				file := mediablog.MediaBlogFile{
					MediaBlogEntryID: entry.ID,
					URL:              mf.URL,
					Type:             mf.Type,
					Description:      mf.Description,
					ThumbnailURL:     mf.ThumbnailURL,
					Order:            i,
				}
				if err := tx.Create(&file).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Media blog entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update media blog entry."})
		return
	}

	if err := preloadEntry(database.DB, entry.ID, &entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update media blog entry."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

// DELETE /admin/media-blog/:id
func DeleteMediaBlogEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var entry mediablog.MediaBlogEntry
	if err := database.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Media blog entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("media_blog_entry_id = ?", id).Delete(&mediablog.MediaBlogFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entry).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete media blog entry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Media blog entry deleted successfully"})
}
