package structs

type SearchProduct struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Handle              string     `json:"handle"`
	AvailableForSale    bool       `json:"availableForSale"`
	FeaturedImage       *Image     `json:"featuredImage,omitempty"`
	PriceRange          PriceRange `json:"priceRange"`
	CompareAtPriceRange PriceRange `json:"compareAtPriceRange"`
	Images              []Image    `json:"images,omitempty"`
}

type SearchCollection struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Image  *Image `json:"image,omitempty"`
}

type SearchArticle struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

// PredictiveSearchResult is the wire shape of the same-origin search
// endpoint. Slices are always non-nil so a blank query serializes as
// empty arrays, not null.
type PredictiveSearchResult struct {
	Products    []SearchProduct    `json:"products"`
	Collections []SearchCollection `json:"collections"`
	Articles    []SearchArticle    `json:"articles"`
}

func EmptyPredictiveSearchResult() *PredictiveSearchResult {
	return &PredictiveSearchResult{
		Products:    []SearchProduct{},
		Collections: []SearchCollection{},
		Articles:    []SearchArticle{},
	}
}

// SearchPage is one page of the full, paginated search surface.
type SearchPage struct {
	Products    []SearchProduct `json:"products"`
	TotalCount  int             `json:"totalCount"`
	HasNextPage bool            `json:"hasNextPage"`
	EndCursor   string          `json:"endCursor,omitempty"`
}
