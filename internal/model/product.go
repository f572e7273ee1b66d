package model

import "time"

// Product represents an item in the store catalogue. Prices are whole
// rupees, not minor units.
type Product struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Price         int64     `json:"price" db:"price"`
	OriginalPrice int64     `json:"originalPrice" db:"original_price"`
	ImageURL      string    `json:"imageUrl" db:"image_url"`
	Category      string    `json:"category" db:"category"`
	Rating        float64   `json:"rating" db:"rating"`
	ReviewCount   int       `json:"reviewCount" db:"review_count"`
	InStock       bool      `json:"inStock" db:"in_stock"`
	Featured      bool      `json:"featured" db:"featured"`
	Colors        []string  `json:"colors" db:"colors"`
	Sizes         []string  `json:"sizes" db:"sizes"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Category is a catalogue category as presented to the frontend.
type Category struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Sort keys accepted by product listing endpoints.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

// ProductQuery holds the validated filter/sort/paginate parameters for
// product listing.
type ProductQuery struct {
	Category string `validate:"required"`
	SortBy   string `validate:"oneof=featured price-low price-high rating"`
	Search   string
	Page     int `validate:"min=1"`
	Limit    int `validate:"min=1,max=50"`
}

// DefaultProductQuery returns a query with the documented defaults applied.
func DefaultProductQuery() ProductQuery {
	return ProductQuery{
		Category: CategoryAll,
		SortBy:   SortFeatured,
		Page:     1,
		Limit:    20,
	}
}

// Offset returns the row offset implied by the page and limit.
func (q ProductQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination describes the page window of a product listing response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ProductPage is a paginated product listing.
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// SearchResult is the response payload of the search endpoint.
type SearchResult struct {
	Products     []Product `json:"products"`
	SearchQuery  string    `json:"searchQuery"`
	TotalResults int       `json:"totalResults"`
}
