package services

import (
	"encoding/json"
	"testing"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"
)

func TestCollectionSortArgs(t *testing.T) {
	tests := []struct {
		sort    string
		key     string
		reverse bool
	}{
		{"price-asc", "PRICE", false},
		{"price-desc", "PRICE", true},
		{"best-selling", "BEST_SELLING", false},
		{"newest", "CREATED", true},
		{"", "COLLECTION_DEFAULT", false},
		{"garbage", "COLLECTION_DEFAULT", false},
	}

	for _, tt := range tests {
		opts := CollectionOptions{SortKey: tt.sort}
		key, reverse := opts.sortArgs()
		if key != tt.key || reverse != tt.reverse {
			t.Errorf("sortArgs(%q) = %q %v, want %q %v", tt.sort, key, reverse, tt.key, tt.reverse)
		}
	}
}

func TestFlattenProduct(t *testing.T) {
	payload := `{
		"id": "gid://shopify/Product/1",
		"title": "Vista Tower",
		"handle": "vista-tower",
		"availableForSale": true,
		"tags": ["vista", "tower"],
		"images": {"edges": [
			{"node": {"url": "https://cdn.example.com/a.jpg", "altText": "White"}},
			{"node": {"url": "https://cdn.example.com/b.jpg", "altText": "Black"}}
		]},
		"variants": {"edges": [
			{"node": {
				"id": "gid://shopify/ProductVariant/10",
				"title": "White",
				"availableForSale": true,
				"closetAddOns": {"reference": {"fields": [
					{"key": "variants", "references": {"nodes": [
						{"id": "gid://shopify/ProductVariant/99", "title": "Drawer Kit", "availableForSale": true},
						{"title": "Broken entry without an id"}
					]}}
				]}}
			}}
		]}
	}`

	var wire productWire
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		t.Fatal(err)
	}

	product := flattenProduct(&wire)

	if product.Handle != "vista-tower" || len(product.Images) != 2 {
		t.Errorf("got %+v", product)
	}
	if len(product.Variants) != 1 {
		t.Fatalf("got %d variants", len(product.Variants))
	}

	addOns := product.Variants[0].AddOns
	if len(addOns) != 1 {
		t.Fatalf("got %d add-ons, want the id-less node dropped", len(addOns))
	}
	if addOns[0].ID != "gid://shopify/ProductVariant/99" || addOns[0].Title != "Drawer Kit" {
		t.Errorf("got %+v", addOns[0])
	}
}

func TestFlattenAddOnsAbsent(t *testing.T) {
	if got := flattenAddOns(nil); got != nil {
		t.Errorf("nil metafield should yield nil, got %v", got)
	}
}

func TestFlattenAssemblyDocs(t *testing.T) {
	nodes := []storefront.ReferenceNode{
		{Fields: []storefront.MetaobjectField{
			field("title", "Tower Assembly"),
			{Key: "file", Reference: &storefront.FieldReference{URL: "https://cdn.example.com/tower.pdf"}},
		}},
		{Fields: []storefront.MetaobjectField{
			// No file reference, dropped.
			field("title", "Missing file"),
		}},
		{Fields: []storefront.MetaobjectField{
			{Key: "file", Reference: &storefront.FieldReference{URL: "https://cdn.example.com/untitled.pdf"}},
		}},
	}

	docs := flattenAssemblyDocs(nodes)
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if docs[0].Title != "Tower Assembly" || docs[0].FileURL != "https://cdn.example.com/tower.pdf" {
		t.Errorf("got %+v", docs[0])
	}
	if docs[1].Title != "Assembly Instructions" {
		t.Errorf("untitled doc should use the default title, got %q", docs[1].Title)
	}
}

func TestProductCardWireFlatten(t *testing.T) {
	wire := productCardWire{
		ID:     "gid://shopify/Product/1",
		Title:  "Vista Tower",
		Handle: "vista-tower",
	}
	wire.Images.Edges = []struct {
		Node structs.Image `json:"node"`
	}{
		{Node: structs.Image{URL: "https://cdn.example.com/a.jpg"}},
	}

	card := wire.flatten()
	if card.Handle != "vista-tower" || len(card.Images) != 1 {
		t.Errorf("got %+v", card)
	}
}
