package structs

// Money mirrors the Storefront API's MoneyV2: a decimal string amount plus
// an ISO currency code. Amounts are kept as strings end to end; the API is
// the source of truth and no arithmetic is done on catalog prices here.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

type Image struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// SelectedOption is one name/value pair of a variant's position in the
// product's option matrix, e.g. {Color, White}.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// MetafieldValue is a single-value product or variant metafield. A nil
// pointer on the owning struct means the metafield is not set.
type MetafieldValue struct {
	Value string `json:"value"`
}

type Variant struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	SKU               string           `json:"sku"`
	AvailableForSale  bool             `json:"availableForSale"`
	QuantityAvailable int              `json:"quantityAvailable"`
	SelectedOptions   []SelectedOption `json:"selectedOptions"`
	Price             Money            `json:"price"`
	CompareAtPrice    *Money           `json:"compareAtPrice,omitempty"`
	Image             *Image           `json:"image,omitempty"`

	// Specification metafields, section 1: material/color/finish
	Material     *MetafieldValue `json:"material,omitempty"`
	VariantColor *MetafieldValue `json:"variantColor,omitempty"`
	Finish       *MetafieldValue `json:"finish,omitempty"`

	// Section 2: dimensions
	Height         *MetafieldValue `json:"height,omitempty"`
	Width          *MetafieldValue `json:"width,omitempty"`
	Depth          *MetafieldValue `json:"depth,omitempty"`
	InternalHeight *MetafieldValue `json:"internalHeight,omitempty"`
	InternalWidth  *MetafieldValue `json:"internalWidth,omitempty"`
	HangingSpace   *MetafieldValue `json:"hangingSpace,omitempty"`
	ShelfSpace     *MetafieldValue `json:"shelfSpace,omitempty"`

	// Section 3: item details
	MountType                 *MetafieldValue `json:"mountType,omitempty"`
	NumberOfRods              *MetafieldValue `json:"numberOfRods,omitempty"`
	NumberOfFixedShelves      *MetafieldValue `json:"numberOfFixedShelves,omitempty"`
	NumberOfAdjustableShelves *MetafieldValue `json:"numberOfAdjustableShelves,omitempty"`
	NumberOfDrawers           *MetafieldValue `json:"numberOfDrawers,omitempty"`
	TotalWeightCapacity       *MetafieldValue `json:"totalWeightCapacity,omitempty"`
	HardwareIncluded          *MetafieldValue `json:"hardwareIncluded,omitempty"`

	// Add-on / upsell variants referenced from the closet add-ons
	// metaobject, already flattened by the storefront layer.
	AddOns []UpsellVariant `json:"addOns,omitempty"`
}

// UpsellVariant is a lightweight variant reference used for add-on offers.
type UpsellVariant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	AvailableForSale bool             `json:"availableForSale"`
	Price            Money            `json:"price"`
	Image            *Image           `json:"image,omitempty"`
	Product          ProductReference `json:"product"`
}

type ProductReference struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	Description string `json:"description,omitempty"`
}

// AssemblyInstruction is a downloadable instruction document attached to a
// product via a metaobject reference.
type AssemblyInstruction struct {
	Title   string `json:"title"`
	FileURL string `json:"fileUrl"`
}

// Product is the full product detail record, immutable once fetched for a
// given page render.
type Product struct {
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	Handle              string                `json:"handle"`
	Description         string                `json:"description"`
	DescriptionHTML     string                `json:"descriptionHtml"`
	AvailableForSale    bool                  `json:"availableForSale"`
	ProductType         string                `json:"productType"`
	Vendor              string                `json:"vendor"`
	Tags                []string              `json:"tags"`
	Options             []ProductOption       `json:"options"`
	PriceRange          PriceRange            `json:"priceRange"`
	CompareAtPriceRange PriceRange            `json:"compareAtPriceRange"`
	Images              []Image               `json:"images"`
	Variants            []Variant             `json:"variants"`
	Redirect            *MetafieldValue       `json:"redirect,omitempty"`
	AssemblyDocs        []AssemblyInstruction `json:"assemblyInstructions,omitempty"`
}

// HasTag reports whether the product carries the given tag (exact match,
// as tagged by content editors).
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ProductCard is the compact listing shape used on collection grids and
// full search results.
type ProductCard struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Handle              string     `json:"handle"`
	AvailableForSale    bool       `json:"availableForSale"`
	PriceRange          PriceRange `json:"priceRange"`
	CompareAtPriceRange PriceRange `json:"compareAtPriceRange"`
	Images              []Image    `json:"images"`
}

type Collection struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Handle          string        `json:"handle"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"descriptionHtml"`
	Image           *Image        `json:"image,omitempty"`
	Products        []ProductCard `json:"products"`
	HasNextPage     bool          `json:"hasNextPage"`
	EndCursor       string        `json:"endCursor,omitempty"`
}
