package cart

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/database"
	cartstore "gallery-app/internal/cart"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const cookieName = "cart_id"

// Carts expire with the cookie; the store itself is process-local.
const cookieMaxAge = 7 * 24 * 60 * 60

type Handler struct {
	store *cartstore.Store
}

func NewHandler(store *cartstore.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) cartID(c *gin.Context) string {
	if id, err := c.Cookie(cookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cookieName, id, cookieMaxAge, "/", "", false, true)
	return id
}

// GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.store.Get(h.cartID(c))})
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		ArtworkID uint `json:"artworkId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ArtworkID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid artwork ID"})
		return
	}

	var artwork works.Artwork
	if err := database.DB.First(&artwork, req.ArtworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	if !artwork.IsAvailable {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Artwork is no longer available"})
		return
	}

	updated := h.store.AddItem(h.cartID(c), cartstore.Item{
		ArtworkID: artwork.ID,
		Title:     artwork.Title,
		Artist:    artwork.Artist,
		Price:     strconv.FormatFloat(artwork.Price, 'f', 2, 64),
		ImageURL:  artwork.ImageURL,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// DELETE /cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid artwork ID"})
		return
	}

	updated := h.store.RemoveItem(h.cartID(c), uint(id))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	updated := h.store.Clear(h.cartID(c))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}
