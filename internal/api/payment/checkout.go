package payment

import (
	"fmt"
	"net/http"
	"time"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/domain/payments"
	"gallery-app/internal/infra/mpesa"

	"github.com/gin-gonic/gin"
)

var gateway = mpesa.NewClient()

// POST /payment/checkout
//
// Initiates a real STK push and records the attempt as pending. The
// artworks stay on sale until the gateway confirms; the simulate endpoint
// remains the canonical purchase flow.
func Checkout(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if !config.MpesaEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Payment gateway is not configured"})
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

	available, missing, err := fetchAvailable(database.DB, req.ArtworkIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error during payment processing."})
		return
	}
	if len(missing) > 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("Some artworks not found or are unavailable: IDs %s", joinIDs(missing)),
		})
		return
	}

	var amount float64
	for _, a := range available {
		amount += a.Price
	}

	stk, err := gateway.STKPush(c.Request.Context(), req.PhoneNumber, amount)
	if err != nil || stk.CheckoutRequestID == "" {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to initiate STK Push."})
		return
	}

	txn := payments.Transaction{
		ID:          stk.CheckoutRequestID,
		UserID:      userID,
		Amount:      amount,
		PhoneNumber: req.PhoneNumber,
		Status:      payments.StatusPending,
		ArtworkIDs:  payments.EncodeArtworkIDs(req.ArtworkIDs),
		Timestamp:   time.Now(),
	}
	if err := database.DB.Create(&txn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save transaction data."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "STK Push initiated. Awaiting payment confirmation.",
		"data":    transactionResponse(&txn, req.ArtworkIDs),
	})
}

// POST /mpesa/stkpush
//
// Thin initiation endpoint for ad-hoc pushes (no transaction bookkeeping).
func StkPush(c *gin.Context) {
	if !config.MpesaEnabled() {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server configuration error: M-Pesa credentials not set."})
		return
	}

	var req struct {
		Phone  string  `json:"phone"`
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number and amount are required."})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid amount. Must be a positive number."})
		return
	}

	stk, err := gateway.STKPush(c.Request.Context(), req.Phone, req.Amount)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "STK Push failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stk})
}
