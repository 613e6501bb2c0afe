package admin

// ---------- requests

type ArtworkPayload struct {
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Description *string  `json:"description"`
	Dimensions  *string  `json:"dimensions"`
	Medium      string   `json:"medium"`
	Year        *int     `json:"year"`
	IsAvailable *bool    `json:"isAvailable"`
	InGallery   *bool    `json:"inGallery"`
	Featured    *bool    `json:"featured"`
	SeriesID    *uint    `json:"seriesId"`
}

func (p *ArtworkPayload) validate() string {
	switch {
	case p.Title == "":
		return "Missing or invalid required artwork fields: title"
	case p.Artist == "":
		return "Missing or invalid required artwork fields: artist"
	case p.Category == "":
		return "Missing or invalid required artwork fields: category"
	case p.Price == nil:
		return "Missing or invalid required artwork fields: price"
	case *p.Price < 0:
		return "Artwork price must not be negative"
	case p.ImageURL == "":
		return "Missing or invalid required artwork fields: imageUrl"
	case p.Medium == "":
		return "Missing or invalid required artwork fields: medium"
	case p.Year == nil:
		return "Missing or invalid required artwork fields: year"
	}
	return ""
}

type SeriesPayload struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type MediaFilePayload struct {
	ID           uint    `json:"id"`
	URL          string  `json:"url"`
	Type         string  `json:"type"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

type MediaBlogPayload struct {
	Title        string             `json:"title"`
	ShortDesc    string             `json:"shortDesc"`
	Type         string             `json:"type"`
	ExternalLink *string            `json:"externalLink"`
	MediaFiles   []MediaFilePayload `json:"mediaFiles"`
}

func (p *MediaBlogPayload) validate() string {
	switch {
	case p.Title == "":
		return "Missing required field: title"
	case p.Type == "":
		return "Missing required field: type"
	}
	return ""
}
