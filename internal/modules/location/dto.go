package location

// LocationView is a location together with its derived rating summary.
type LocationView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Rating      float64 `json:"averageRating"`
	ReviewCount int     `json:"reviewCount"`
}
