package services

import (
	"context"
	"sort"
	"strings"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// ClosetsService loads the real-customer-closets showcase: build stories
// with a cost/turnaround summary and one image or video each.
type ClosetsService struct {
	client storefront.Doer
	cache  contentStore
	logger *gecho.Logger
}

func NewClosetsService(client storefront.Doer, cache contentStore, logger *gecho.Logger) *ClosetsService {
	return &ClosetsService{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// CustomerClosets returns every showcase entry sorted by customer name.
func (s *ClosetsService) CustomerClosets(ctx context.Context) ([]structs.CustomerCloset, error) {
	if cached, err := GetContent[[]structs.CustomerCloset](s.cache, "customer_closets"); err == nil && cached != nil {
		return *cached, nil
	}

	var resp struct {
		Metaobjects struct {
			Nodes []storefront.Metaobject `json:"nodes"`
		} `json:"metaobjects"`
	}
	if err := s.client.Do(ctx, storefront.QueryCustomerClosets, nil, &resp); err != nil {
		return nil, err
	}

	closets := make([]structs.CustomerCloset, 0, len(resp.Metaobjects.Nodes))
	for _, node := range resp.Metaobjects.Nodes {
		fields := storefront.NewFieldMap(node.Fields)

		closets = append(closets, structs.CustomerCloset{
			ID:                 node.ID,
			CustomerName:       fields.GetOr("customer_name", ""),
			ClosetMeasurements: fields.GetOr("closet_measurements", ""),
			TotalCost:          fields.GetOr("total_cost", ""),
			TurnaroundTime:     fields.GetOr("turnaround_time", ""),
			YoutubeURL:         fields.GetOr("youtube_url", ""),
			Media:              closetMediaFrom(fields.Reference("media")),
		})
	}

	sort.SliceStable(closets, func(i, j int) bool {
		return strings.ToLower(closets[i].CustomerName) < strings.ToLower(closets[j].CustomerName)
	})

	if err := SetContent(s.cache, "customer_closets", closets); err != nil {
		s.logger.Warn("Failed to cache customer closets", gecho.Field("error", err))
	}

	return closets, nil
}

// closetMediaFrom maps the media reference union. MediaImage wins over
// video sources when both are somehow present.
func closetMediaFrom(ref *storefront.FieldReference) *structs.ClosetMedia {
	if ref == nil {
		return nil
	}

	if ref.Image != nil && ref.Image.URL != "" {
		return &structs.ClosetMedia{
			Type:    "image",
			URL:     ref.Image.URL,
			AltText: ref.Image.AltText,
		}
	}

	if len(ref.Sources) > 0 {
		media := &structs.ClosetMedia{
			Type: "video",
			URL:  ref.Sources[0].URL,
		}
		if ref.PreviewImage != nil {
			media.PreviewImage = ref.PreviewImage.URL
		}
		return media
	}

	return nil
}
