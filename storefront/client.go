package storefront

import (
	"context"
	"fmt"
	"net/http"

	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/machinebox/graphql"
)

// Doer executes one GraphQL document against the Storefront API and
// decodes the response data into out. Services depend on this interface
// rather than the concrete client so tests can inject fakes.
type Doer interface {
	Do(ctx context.Context, query string, vars map[string]any, out any) error
}

// Client is the single configured GraphQL client for the commerce
// platform's Storefront API. The schema is treated as given; the API
// version is pinned in configuration.
type Client struct {
	gql    *graphql.Client
	cfg    *structs.StorefrontConfig
	logger *gecho.Logger
}

func NewClient(cfg *structs.StorefrontConfig, logger *gecho.Logger) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		gql:    graphql.NewClient(cfg.Endpoint(), graphql.WithHTTPClient(httpClient)),
		cfg:    cfg,
		logger: logger,
	}
}

func (c *Client) Do(ctx context.Context, query string, vars map[string]any, out any) error {
	req := graphql.NewRequest(query)
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range vars {
		req.Var(key, value)
	}

	if err := c.gql.Run(ctx, req, out); err != nil {
		c.logger.Error("Storefront request failed",
			gecho.Field("endpoint", c.cfg.Endpoint()),
			gecho.Field("error", err),
		)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return nil
}
