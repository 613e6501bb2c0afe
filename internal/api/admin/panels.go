package admin

import (
	"net/http"
	"time"

	"gallery-app/database"
	"gallery-app/internal/domain/payments"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AdminStats struct {
	TotalUsers       int            `json:"total_users"`
	TotalArtworks    int            `json:"total_artworks"`
	ArtworksForSale  int            `json:"artworks_for_sale"`
	TotalRevenue     float64        `json:"total_revenue"`
	RecentRevenue    float64        `json:"recent_revenue"`
	SalesPerCategory map[string]int `json:"sales_per_category"`
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(all))
	for _, u := range all {
		adminUsers = append(adminUsers, AdminUser{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": adminUsers, "total": len(adminUsers)})
}

// GET /admin/transactions
func ListTransactions(c *gin.Context) {
	var txs []payments.Transaction
	if err := database.DB.Order("timestamp DESC").Find(&txs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": txs, "total": len(txs)})
}

// GET /admin/stats
func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalArtworks, forSale int64
	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&works.Artwork{}).Count(&totalArtworks)
	database.DB.Model(&works.Artwork{}).Where("is_available = ?", true).Count(&forSale)

	var totalRevenue, recentRevenue float64
	database.DB.Model(&payments.Transaction{}).
		Where("status = ?", payments.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&payments.Transaction{}).
		Where("status = ? AND timestamp >= ?", payments.StatusCompleted, thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalArtworks = int(totalArtworks)
	stats.ArtworksForSale = int(forSale)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type CategoryCount struct {
		Category string
		Count    int
	}
	var counts []CategoryCount
	database.DB.
		Model(&works.Artwork{}).
		Select("category, COUNT(id) as count").
		Where("is_available = ?", false).
		Group("category").
		Scan(&counts)

	stats.SalesPerCategory = map[string]int{}
	for _, cc := range counts {
		stats.SalesPerCategory[cc.Category] = cc.Count
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
