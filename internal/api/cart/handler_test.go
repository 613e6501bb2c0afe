package cart_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gallery-app/database"
	cartapi "gallery-app/internal/api/cart"
	cartstore "gallery-app/internal/cart"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	return db
}

func cartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := cartapi.NewHandler(cartstore.NewStore())
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddItem)
	r.DELETE("/cart/items/:id", h.RemoveItem)
	r.DELETE("/cart", h.Clear)
	return r
}

// client carries the cart cookie between requests like a browser would.
type client struct {
	r       *gin.Engine
	cookies []*http.Cookie
}

func (cl *client) do(t *testing.T, method, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	cl.r.ServeHTTP(rec, req)

	if set := rec.Result().Cookies(); len(set) > 0 {
		cl.cookies = append(cl.cookies, set...)
	}
	return rec
}

type cartResponse struct {
	Success bool           `json:"success"`
	Data    cartstore.Cart `json:"data"`
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartstore.Cart {
	t.Helper()

	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func seedArtwork(t *testing.T, db *gorm.DB, title string, price float64, available bool) uint {
	t.Helper()

	a := works.Artwork{
		Title: title, Artist: "A. Wanjiru", Category: "painting",
		Medium: "oil", Year: 2022, Price: price, IsAvailable: available,
	}
	require.NoError(t, db.Create(&a).Error)
	return a.ID
}

func TestCartFlow(t *testing.T) {
	db := setupTestDB(t)
	first := seedArtwork(t, db, "Harbor Dusk", 400, true)
	second := seedArtwork(t, db, "Harbor Dawn", 250.50, true)
	cl := &client{r: cartRouter()}

	empty := cl.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.Empty(t, decodeCart(t, empty).Items)

	add := cl.do(t, http.MethodPost, "/cart/items", gin.H{"artworkId": first})
	require.Equal(t, http.StatusOK, add.Code, add.Body.String())
	cart := decodeCart(t, add)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "400.00", cart.Items[0].Price)
	assert.Equal(t, 400.0, cart.Total)

	add = cl.do(t, http.MethodPost, "/cart/items", gin.H{"artworkId": second})
	require.Equal(t, http.StatusOK, add.Code)
	cart = decodeCart(t, add)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 650.50, cart.Total, 0.001)

	// Adding the same artwork twice does not duplicate it.
	add = cl.do(t, http.MethodPost, "/cart/items", gin.H{"artworkId": first})
	require.Equal(t, http.StatusOK, add.Code)
	assert.Len(t, decodeCart(t, add).Items, 2)

	rm := cl.do(t, http.MethodDelete, "/cart/items/1", nil)
	require.Equal(t, http.StatusOK, rm.Code)
	cart = decodeCart(t, rm)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, second, cart.Items[0].ArtworkID)

	clear := cl.do(t, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, clear.Code)
	cart = decodeCart(t, clear)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestAddItem_Errors(t *testing.T) {
	db := setupTestDB(t)
	sold := seedArtwork(t, db, "Steel Study", 900, false)
	cl := &client{r: cartRouter()}

	rec := cl.do(t, http.MethodPost, "/cart/items", gin.H{"artworkId": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = cl.do(t, http.MethodPost, "/cart/items", gin.H{"artworkId": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = cl.do(t, http.MethodPost, "/cart/items", gin.H{"artworkId": sold})
	assert.Equal(t, http.StatusConflict, rec.Code)

	assert.Empty(t, decodeCart(t, cl.do(t, http.MethodGet, "/cart", nil)).Items)
}

func TestCartsAreIsolatedByCookie(t *testing.T) {
	db := setupTestDB(t)
	id := seedArtwork(t, db, "Harbor Dusk", 400, true)
	r := cartRouter()

	alice := &client{r: r}
	bob := &client{r: r}

	require.Equal(t, http.StatusOK, alice.do(t, http.MethodPost, "/cart/items", gin.H{"artworkId": id}).Code)

	assert.Len(t, decodeCart(t, alice.do(t, http.MethodGet, "/cart", nil)).Items, 1)
	assert.Empty(t, decodeCart(t, bob.do(t, http.MethodGet, "/cart", nil)).Items)
}
