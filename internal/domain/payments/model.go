package payments

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Transaction struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"userId"`

	Amount      float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	PhoneNumber string  `gorm:"not null" json:"phoneNumber"`
	Status      string  `gorm:"type:varchar(10);not null" json:"status"`

	// JSON-encoded list of purchased artwork IDs.
	ArtworkIDs string `gorm:"column:artwork_ids;not null" json:"artworkIds"`

	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// NewTransactionID mirrors the storefront's gateway reference format.
func NewTransactionID() string {
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func EncodeArtworkIDs(ids []uint) string {
	raw, _ := json.Marshal(ids)
	return string(raw)
}

func DecodeArtworkIDs(raw string) ([]uint, error) {
	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
