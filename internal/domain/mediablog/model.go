package mediablog

import "time"

const (
	FileTypeImage = "IMAGE"
	FileTypeVideo = "VIDEO"
)

type MediaBlogEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title        string  `gorm:"not null" json:"title"`
	ShortDesc    string  `gorm:"column:short_desc" json:"shortDesc"`
	Type         string  `gorm:"not null" json:"type"`
	ExternalLink *string `json:"externalLink,omitempty"`

	MediaFiles []MediaBlogFile `gorm:"foreignKey:MediaBlogEntryID" json:"mediaFiles,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MediaBlogFile struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	MediaBlogEntryID uint `gorm:"not null;index" json:"mediaBlogEntryId"`

	URL          string  `gorm:"not null" json:"url"`
	Type         string  `gorm:"not null" json:"type"`
	Description  *string `json:"description,omitempty"`
	ThumbnailURL *string `gorm:"column:thumbnail_url" json:"thumbnailUrl,omitempty"`
	Order        int     `gorm:"column:sort_order;not null;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
