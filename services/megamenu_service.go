package services

import (
	"context"
	"strings"

	"modularcloset_server/lib"
	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// storeDomains are origins whose absolute URLs in menu content get
// rewritten to relative paths, so menu links stay same-origin wherever
// the storefront is served from.
var storeDomains = []string{
	"https://modularclosets.com",
	"https://www.modularclosets.com",
}

// MegamenuService loads the navigation menu metaobjects. Navigation is
// decorative: a failed load degrades to an empty menu rather than an
// error page.
type MegamenuService struct {
	client storefront.Doer
	cache  contentStore
	logger *gecho.Logger
}

func NewMegamenuService(client storefront.Doer, cache contentStore, logger *gecho.Logger) *MegamenuService {
	return &MegamenuService{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Megamenu returns every configured menu item. Load failures log and
// return an empty list.
func (s *MegamenuService) Megamenu(ctx context.Context) []structs.MegamenuItem {
	if cached, err := GetContent[[]structs.MegamenuItem](s.cache, "megamenu"); err == nil && cached != nil {
		return *cached
	}

	var resp struct {
		Metaobjects struct {
			Nodes []storefront.Metaobject `json:"nodes"`
		} `json:"metaobjects"`
	}
	if err := s.client.Do(ctx, storefront.QueryMegamenu, nil, &resp); err != nil {
		s.logger.Warn("Failed to load megamenu, rendering without it", gecho.Field("error", err))
		return []structs.MegamenuItem{}
	}

	items := make([]structs.MegamenuItem, 0, len(resp.Metaobjects.Nodes))
	for _, node := range resp.Metaobjects.Nodes {
		fields := storefront.NewFieldMap(node.Fields)

		item := structs.MegamenuItem{
			ID:              node.ID,
			Handle:          node.Handle,
			MenuType:        fields.GetOr("menu_type", ""),
			Title:           fields.GetOr("title", ""),
			URL:             makeRelativeURL(fields.GetOr("url", "")),
			BackgroundColor: fields.GetOr("background_color", ""),
			ButtonColor:     fields.GetOr("button_color", ""),
			ButtonTextColor: fields.GetOr("button_text_color", ""),
			ButtonText:      fields.GetOr("button_text", ""),
			ListItems:       fields.StringList("list_items"),
		}

		if url, ok := fields.ImageURL("image"); ok {
			item.Image = url
		}
		if url, ok := fields.ImageURL("sticker"); ok {
			item.Sticker = url
		}

		items = append(items, item)
	}

	if err := SetContent(s.cache, "megamenu", items); err != nil {
		s.logger.Warn("Failed to cache megamenu", gecho.Field("error", err))
	}

	return items
}

// makeRelativeURL strips the store's own origin from menu links so they
// navigate same-origin. Foreign origins pass through untouched.
func makeRelativeURL(url string) string {
	if !lib.IsExternalURL(url) {
		return url
	}
	for _, domain := range storeDomains {
		if strings.HasPrefix(url, domain) {
			trimmed := strings.TrimPrefix(url, domain)
			if trimmed == "" {
				return "/"
			}
			return trimmed
		}
	}
	return url
}
