package services

import (
	"context"
	"errors"
	"fmt"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// CatalogService fetches products and collections from the Storefront API
// and flattens the GraphQL connection shapes into the structs the rest of
// the codebase works with.
type CatalogService struct {
	client storefront.Doer
	cache  *CacheService
	logger *gecho.Logger
}

func NewCatalogService(client storefront.Doer, cache *CacheService, logger *gecho.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// CollectionOptions shapes one page of a collection query.
type CollectionOptions struct {
	First   int
	After   string
	SortKey string // price-asc, price-desc, best-selling, newest or empty
}

// sortArgs maps the public sort parameter onto the API's sort key and
// direction. Unknown values fall back to the collection's curated order.
func (o *CollectionOptions) sortArgs() (string, bool) {
	switch o.SortKey {
	case "price-asc":
		return "PRICE", false
	case "price-desc":
		return "PRICE", true
	case "best-selling":
		return "BEST_SELLING", false
	case "newest":
		return "CREATED", true
	default:
		return "COLLECTION_DEFAULT", false
	}
}

// ============================================================================
// Wire shapes
// ============================================================================

type imageConnection struct {
	Edges []struct {
		Node structs.Image `json:"node"`
	} `json:"edges"`
}

func (c *imageConnection) flatten() []structs.Image {
	images := make([]structs.Image, 0, len(c.Edges))
	for _, edge := range c.Edges {
		images = append(images, edge.Node)
	}
	return images
}

// variantNode embeds the flat variant and adds the add-ons metafield,
// which needs its metaobject reference unwrapped before use.
type variantNode struct {
	structs.Variant
	ClosetAddOns *struct {
		Reference *storefront.FieldReference `json:"reference"`
	} `json:"closetAddOns"`
}

type variantConnection struct {
	Edges []struct {
		Node variantNode `json:"node"`
	} `json:"edges"`
}

type productWire struct {
	ID                   string                  `json:"id"`
	Title                string                  `json:"title"`
	Handle               string                  `json:"handle"`
	Description          string                  `json:"description"`
	DescriptionHTML      string                  `json:"descriptionHtml"`
	AvailableForSale     bool                    `json:"availableForSale"`
	ProductType          string                  `json:"productType"`
	Vendor               string                  `json:"vendor"`
	Tags                 []string                `json:"tags"`
	Options              []structs.ProductOption `json:"options"`
	PriceRange           structs.PriceRange      `json:"priceRange"`
	CompareAtPriceRange  structs.PriceRange      `json:"compareAtPriceRange"`
	Redirect             *structs.MetafieldValue `json:"redirect"`
	AssemblyInstructions *struct {
		References *storefront.ReferenceList `json:"references"`
	} `json:"assemblyInstructions"`
	Images   imageConnection   `json:"images"`
	Variants variantConnection `json:"variants"`
}

type productCardWire struct {
	ID                  string             `json:"id"`
	Title               string             `json:"title"`
	Handle              string             `json:"handle"`
	AvailableForSale    bool               `json:"availableForSale"`
	PriceRange          structs.PriceRange `json:"priceRange"`
	CompareAtPriceRange structs.PriceRange `json:"compareAtPriceRange"`
	Images              imageConnection    `json:"images"`
}

func (w *productCardWire) flatten() structs.ProductCard {
	return structs.ProductCard{
		ID:                  w.ID,
		Title:               w.Title,
		Handle:              w.Handle,
		AvailableForSale:    w.AvailableForSale,
		PriceRange:          w.PriceRange,
		CompareAtPriceRange: w.CompareAtPriceRange,
		Images:              w.Images.flatten(),
	}
}

// ============================================================================
// Products
// ============================================================================

// ProductByHandle fetches one product with its full variant set, images,
// specification metafields, add-ons and assembly documents. A null product
// from the API maps to storefront.ErrNotFound so handlers can render a
// genuine 404 instead of a retry-style error.
func (s *CatalogService) ProductByHandle(ctx context.Context, handle string) (*structs.Product, error) {
	if cached, err := s.cache.GetProductByHandle(handle); err == nil && cached != nil {
		return cached, nil
	}

	var resp struct {
		Product *productWire `json:"product"`
	}
	if err := s.client.Do(ctx, storefront.QueryProductByHandle, map[string]any{"handle": handle}, &resp); err != nil {
		return nil, err
	}

	if resp.Product == nil {
		return nil, fmt.Errorf("product %q: %w", handle, storefront.ErrNotFound)
	}

	product := flattenProduct(resp.Product)

	if err := s.cache.SetProductByHandle(product); err != nil {
		s.logger.Warn("Failed to cache product", gecho.Field("handle", handle), gecho.Field("error", err))
	}

	return product, nil
}

func flattenProduct(wire *productWire) *structs.Product {
	product := &structs.Product{
		ID:                  wire.ID,
		Title:               wire.Title,
		Handle:              wire.Handle,
		Description:         wire.Description,
		DescriptionHTML:     wire.DescriptionHTML,
		AvailableForSale:    wire.AvailableForSale,
		ProductType:         wire.ProductType,
		Vendor:              wire.Vendor,
		Tags:                wire.Tags,
		Options:             wire.Options,
		PriceRange:          wire.PriceRange,
		CompareAtPriceRange: wire.CompareAtPriceRange,
		Redirect:            wire.Redirect,
		Images:              wire.Images.flatten(),
	}

	product.Variants = make([]structs.Variant, 0, len(wire.Variants.Edges))
	for _, edge := range wire.Variants.Edges {
		variant := edge.Node.Variant
		variant.AddOns = flattenAddOns(edge.Node.ClosetAddOns)
		product.Variants = append(product.Variants, variant)
	}

	if wire.AssemblyInstructions != nil && wire.AssemblyInstructions.References != nil {
		product.AssemblyDocs = flattenAssemblyDocs(wire.AssemblyInstructions.References.Nodes)
	}

	return product
}

// flattenAddOns unwraps the add-ons metaobject into plain upsell variants.
// The metaobject holds a single "variants" field whose references list the
// offered product variants.
func flattenAddOns(addOns *struct {
	Reference *storefront.FieldReference `json:"reference"`
}) []structs.UpsellVariant {
	if addOns == nil || addOns.Reference == nil {
		return nil
	}

	fields := storefront.NewFieldMap(addOns.Reference.Fields)
	field, ok := fields["variants"]
	if !ok || field.References == nil {
		return nil
	}

	var upsells []structs.UpsellVariant
	for _, node := range field.References.Nodes {
		if node.ID == "" {
			continue
		}
		upsell := structs.UpsellVariant{
			ID:               node.ID,
			Title:            node.Title,
			AvailableForSale: node.AvailableForSale,
			Image:            node.Image,
			Product:          node.Product,
		}
		if node.Price != nil {
			upsell.Price = *node.Price
		}
		upsells = append(upsells, upsell)
	}
	return upsells
}

// flattenAssemblyDocs maps instruction metaobjects to title/file pairs.
// Entries without a downloadable file are dropped.
func flattenAssemblyDocs(nodes []storefront.ReferenceNode) []structs.AssemblyInstruction {
	var docs []structs.AssemblyInstruction
	for _, node := range nodes {
		if len(node.Fields) == 0 {
			continue
		}
		fields := storefront.NewFieldMap(node.Fields)

		fileRef := fields.Reference("file")
		if fileRef == nil || fileRef.URL == "" {
			continue
		}

		docs = append(docs, structs.AssemblyInstruction{
			Title:   fields.GetOr("title", "Assembly Instructions"),
			FileURL: fileRef.URL,
		})
	}
	return docs
}

// ============================================================================
// Collections
// ============================================================================

// CollectionWithProducts fetches one page of a collection's product grid.
// Null collections map to storefront.ErrNotFound.
func (s *CatalogService) CollectionWithProducts(ctx context.Context, handle string, opts CollectionOptions) (*structs.Collection, error) {
	if opts.First <= 0 || opts.First > 100 {
		opts.First = 24
	}

	cacheKey := fmt.Sprintf("%s:first:%d:after:%s:sort:%s", handle, opts.First, opts.After, opts.SortKey)
	if cached, err := s.cache.GetCollection(cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	sortKey, reverse := opts.sortArgs()

	var resp struct {
		Collection *struct {
			ID              string         `json:"id"`
			Title           string         `json:"title"`
			Handle          string         `json:"handle"`
			Description     string         `json:"description"`
			DescriptionHTML string         `json:"descriptionHtml"`
			Image           *structs.Image `json:"image"`
			Products        struct {
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
				Edges []struct {
					Node productCardWire `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		} `json:"collection"`
	}

	vars := map[string]any{
		"handle":  handle,
		"first":   opts.First,
		"sortKey": sortKey,
		"reverse": reverse,
	}
	if opts.After != "" {
		vars["after"] = opts.After
	}

	if err := s.client.Do(ctx, storefront.QueryCollectionWithProducts, vars, &resp); err != nil {
		return nil, err
	}

	if resp.Collection == nil {
		return nil, fmt.Errorf("collection %q: %w", handle, storefront.ErrNotFound)
	}

	collection := &structs.Collection{
		ID:              resp.Collection.ID,
		Title:           resp.Collection.Title,
		Handle:          resp.Collection.Handle,
		Description:     resp.Collection.Description,
		DescriptionHTML: resp.Collection.DescriptionHTML,
		Image:           resp.Collection.Image,
		HasNextPage:     resp.Collection.Products.PageInfo.HasNextPage,
		EndCursor:       resp.Collection.Products.PageInfo.EndCursor,
	}

	collection.Products = make([]structs.ProductCard, 0, len(resp.Collection.Products.Edges))
	for _, edge := range resp.Collection.Products.Edges {
		collection.Products = append(collection.Products, edge.Node.flatten())
	}

	if err := s.cache.SetCollection(cacheKey, collection); err != nil {
		s.logger.Warn("Failed to cache collection", gecho.Field("handle", handle), gecho.Field("error", err))
	}

	return collection, nil
}

// IsNotFound reports whether the error marks a missing catalog entity.
func IsNotFound(err error) bool {
	return errors.Is(err, storefront.ErrNotFound)
}
