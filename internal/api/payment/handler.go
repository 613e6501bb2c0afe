package payment

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/domain/payments"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// randFloat is swapped out in tests to force a gateway outcome.
var randFloat = rand.Float64

const failureRate = 0.1

type PaymentRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	ArtworkIDs  []uint `json:"artworkIds"`
}

func (r *PaymentRequest) valid() bool {
	if strings.TrimSpace(r.PhoneNumber) == "" || len(r.ArtworkIDs) == 0 {
		return false
	}
	for _, id := range r.ArtworkIDs {
		if id == 0 {
			return false
		}
	}
	return true
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return 0, false
	}
	return userID, true
}

// fetchAvailable loads the requested artworks restricted to available
// ones and reports the IDs that are missing or already sold.
func fetchAvailable(db *gorm.DB, ids []uint) ([]works.Artwork, []uint, error) {
	var available []works.Artwork
	err := db.Where("id IN ? AND is_available = ?", ids, true).Find(&available).Error
	if err != nil {
		return nil, nil, err
	}

	if len(available) == len(ids) {
		return available, nil, nil
	}

	found := map[uint]bool{}
	for _, a := range available {
		found[a.ID] = true
	}
	var missing []uint
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return nil, missing, nil
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}

func transactionResponse(t *payments.Transaction, ids []uint) gin.H {
	return gin.H{
		"transactionId": t.ID,
		"amount":        t.Amount,
		"phoneNumber":   t.PhoneNumber,
		"artworkIds":    ids,
		"status":        t.Status,
		"timestamp":     t.Timestamp.Format(time.RFC3339),
	}
}

// reserve commits the purchase state before the gateway is asked for
// anything: one transaction inserts the pending record and flips every
// artwork to unavailable. A concurrent checkout of a shared artwork loses
// the race here and surfaces as missing/unavailable.
func reserve(userID uint, req *PaymentRequest) (*payments.Transaction, []uint, error) {
	var txn *payments.Transaction
	var missing []uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		available, unavailable, err := fetchAvailable(tx, req.ArtworkIDs)
		if err != nil {
			return err
		}
		if len(unavailable) > 0 {
			missing = unavailable
			return nil
		}

		// Charge total comes from current database prices only.
		var amount float64
		for _, a := range available {
			amount += a.Price
		}

		res := tx.Model(&works.Artwork{}).
			Where("id IN ? AND is_available = ?", req.ArtworkIDs, true).
			Update("is_available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(req.ArtworkIDs)) {
			// Lost a race between the availability read and the update.
			missing = req.ArtworkIDs
			return fmt.Errorf("availability changed during checkout")
		}

		txn = &payments.Transaction{
			ID:          payments.NewTransactionID(),
			UserID:      userID,
			Amount:      amount,
			PhoneNumber: req.PhoneNumber,
			Status:      payments.StatusPending,
			ArtworkIDs:  payments.EncodeArtworkIDs(req.ArtworkIDs),
			Timestamp:   time.Now(),
		}
		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, missing, err
	}
	return txn, missing, nil
}

// release marks a reserved transaction failed and puts the artworks back
// on sale after a declined charge.
func release(txn *payments.Transaction, ids []uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&payments.Transaction{}).
			Where("id = ?", txn.ID).
			Update("status", payments.StatusFailed).Error
		if err != nil {
			return err
		}
		return tx.Model(&works.Artwork{}).
			Where("id IN ?", ids).
			Update("is_available", true).Error
	})
}

// POST /payment/simulate
func Simulate(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid input data: phoneNumber or artworkIds are invalid",
		})
		return
	}

	txn, missing, err := reserve(userID, &req)
	if len(missing) > 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("Some artworks not found or are unavailable: IDs %s", joinIDs(missing)),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error during payment processing."})
		return
	}

	// Simulated gateway round trip.
	time.Sleep(config.PAYMENT_DELAY)
	isSuccess := randFloat() > failureRate

	if !isSuccess {
		if err := release(txn, req.ArtworkIDs); err != nil {
			fmt.Println("❌ Failed to release artworks after declined payment:", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment failed. Please try again.",
			"error":   "INSUFFICIENT_FUNDS",
		})
		return
	}

	err = database.DB.Model(&payments.Transaction{}).
		Where("id = ?", txn.ID).
		Update("status", payments.StatusCompleted).Error
	if err != nil {
		// The charge went through; the pending row is the durable trace.
		fmt.Println("❌ Failed to record completed payment:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Payment recorded successfully, but failed to save transaction data.",
		})
		return
	}
	txn.Status = payments.StatusCompleted

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment successful!",
		"data":    transactionResponse(txn, req.ArtworkIDs),
	})
}
