package services

import (
	"context"
	"sort"
	"strings"

	"modularcloset_server/lib"
	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// FAQService loads the frequently-asked-questions metaobjects. Answers are
// stored as rich text and rendered to HTML here, once, so every surface
// gets the same markup.
type FAQService struct {
	client storefront.Doer
	cache  contentStore
	logger *gecho.Logger
}

func NewFAQService(client storefront.Doer, cache contentStore, logger *gecho.Logger) *FAQService {
	return &FAQService{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// FAQs returns all questions, optionally filtered to those whose category
// list contains the given category (case-insensitive). Results sort by
// question text ascending for a stable accordion order.
func (s *FAQService) FAQs(ctx context.Context, category string) ([]structs.FAQItem, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" {
		filtered := make([]structs.FAQItem, 0, len(items))
		for _, item := range items {
			if hasCategory(item.Categories, category) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Question) < strings.ToLower(items[j].Question)
	})

	return items, nil
}

func (s *FAQService) load(ctx context.Context) ([]structs.FAQItem, error) {
	if cached, err := GetContent[[]structs.FAQItem](s.cache, "faqs"); err == nil && cached != nil {
		return *cached, nil
	}

	var resp struct {
		Metaobjects struct {
			Nodes []storefront.Metaobject `json:"nodes"`
		} `json:"metaobjects"`
	}
	if err := s.client.Do(ctx, storefront.QueryFAQs, nil, &resp); err != nil {
		return nil, err
	}

	items := make([]structs.FAQItem, 0, len(resp.Metaobjects.Nodes))
	for _, node := range resp.Metaobjects.Nodes {
		fields := storefront.NewFieldMap(node.Fields)

		question, ok := fields.Get("question")
		if !ok || question == "" {
			continue
		}

		answer := ""
		if raw, ok := fields.Get("answer"); ok {
			answer = storefront.RenderRichText(raw)
		}

		categories := fields.StringList("categories")
		if len(categories) == 0 {
			if single, ok := fields.Get("category"); ok && single != "" {
				categories = []string{single}
			}
		}

		items = append(items, structs.FAQItem{
			ID:         node.ID,
			Question:   question,
			Anchor:     lib.Slugify(question),
			Answer:     answer,
			Categories: categories,
		})
	}

	if err := SetContent(s.cache, "faqs", items); err != nil {
		s.logger.Warn("Failed to cache FAQs", gecho.Field("error", err))
	}

	return items, nil
}

func hasCategory(categories []string, wanted string) bool {
	for _, category := range categories {
		if strings.EqualFold(strings.TrimSpace(category), strings.TrimSpace(wanted)) {
			return true
		}
	}
	return false
}
