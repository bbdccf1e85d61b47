package services

import (
	"context"
	"sort"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// LightboxService loads the closet-system comparison table shown in the
// product lightbox, one metaobject per feature row.
type LightboxService struct {
	client storefront.Doer
	cache  contentStore
	logger *gecho.Logger
}

func NewLightboxService(client storefront.Doer, cache contentStore, logger *gecho.Logger) *LightboxService {
	return &LightboxService{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Comparison returns the feature rows ordered by their editorial position.
func (s *LightboxService) Comparison(ctx context.Context) ([]structs.LightboxFeature, error) {
	if cached, err := GetContent[[]structs.LightboxFeature](s.cache, "lightbox"); err == nil && cached != nil {
		return *cached, nil
	}

	var resp struct {
		Metaobjects struct {
			Nodes []storefront.Metaobject `json:"nodes"`
		} `json:"metaobjects"`
	}
	if err := s.client.Do(ctx, storefront.QueryLightboxComparison, nil, &resp); err != nil {
		return nil, err
	}

	features := make([]structs.LightboxFeature, 0, len(resp.Metaobjects.Nodes))
	for _, node := range resp.Metaobjects.Nodes {
		fields := storefront.NewFieldMap(node.Fields)

		feature, ok := fields.Get("feature")
		if !ok || feature == "" {
			continue
		}

		features = append(features, structs.LightboxFeature{
			Feature: feature,
			Vista:   fields.GetOr("vista", ""),
			Alto:    fields.GetOr("alto", ""),
			Order:   fields.Int("order", 0),
		})
	}

	sort.SliceStable(features, func(i, j int) bool {
		return features[i].Order < features[j].Order
	})

	if err := SetContent(s.cache, "lightbox", features); err != nil {
		s.logger.Warn("Failed to cache lightbox comparison", gecho.Field("error", err))
	}

	return features, nil
}
