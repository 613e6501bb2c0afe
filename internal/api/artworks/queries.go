package artworks

import (
	"strconv"

	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
	"name_asc":   "title ASC",
	"name_desc":  "title DESC",
	"year_asc":   "year ASC",
	"year_desc":  "year DESC",
	"views_asc":  "views ASC",
	"views_desc": "views DESC",
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// filteredQuery applies the catalog filter/sort query params to an
// artwork query. The caller adds paging separately so it can count first.
func filteredQuery(db *gorm.DB, c *gin.Context) *gorm.DB {
	q := db.Model(&works.Artwork{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if artist := c.Query("artist"); artist != "" {
		q = q.Where("artist = ?", artist)
	}
	if medium := c.Query("medium"); medium != "" {
		q = q.Where("medium = ?", medium)
	}
	if year := c.Query("year"); year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			q = q.Where("year = ?", y)
		}
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if p, err := strconv.ParseFloat(minPrice, 64); err == nil {
			q = q.Where("price >= ?", p)
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if p, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			q = q.Where("price <= ?", p)
		}
	}
	if isAvailable := c.Query("isAvailable"); isAvailable != "" {
		if b, err := strconv.ParseBool(isAvailable); err == nil {
			q = q.Where("is_available = ?", b)
		}
	}
	if inGallery := c.Query("inGallery"); inGallery != "" {
		if b, err := strconv.ParseBool(inGallery); err == nil {
			q = q.Where("in_gallery = ?", b)
		}
	}
	if seriesID := c.Query("seriesId"); seriesID != "" {
		if id, err := strconv.Atoi(seriesID); err == nil {
			q = q.Where("series_id = ?", id)
		}
	}

	if order, ok := sortColumns[c.Query("sort")]; ok {
		q = q.Order(order)
	} else {
		q = q.Order("created_at DESC")
	}

	return q
}

func pagination(c *gin.Context) (offset int, limit int) {
	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}
	return (page - 1) * limit, limit
}
