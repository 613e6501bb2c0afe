package works

import "time"

type Artwork struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"not null" json:"title"`
	Artist   string `gorm:"not null" json:"artist"`
	Category string `gorm:"not null;index" json:"category"`

	// Stored as fixed-point in the database, surfaced as a float.
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	ImageURL    string  `gorm:"column:image_url;not null" json:"imageUrl"`
	Description *string `json:"description,omitempty"`
	Dimensions  *string `json:"dimensions,omitempty"`
	Medium      string  `gorm:"not null" json:"medium"`
	Year        int     `gorm:"not null" json:"year"`

	IsAvailable bool `gorm:"not null;default:true;index" json:"isAvailable"`
	InGallery   bool `gorm:"not null;default:false" json:"inGallery"`
	Featured    bool `gorm:"not null;default:false" json:"featured"`

	Likes int `gorm:"not null;default:0" json:"likes"`
	Views int `gorm:"not null;default:0" json:"views"`

	SeriesID *uint   `gorm:"index" json:"seriesId,omitempty"`
	Series   *Series `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"series,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
