package structs

import "time"

type Config struct {
	Server     *ServerConfig
	Cors       *CorsConfig
	Storefront *StorefrontConfig
	Cache      *CacheConfig
	RateLimit  *RateLimitConfig
	Email      *EmailConfig
}

type ServerConfig struct {
	AppName        string        // ModularCloset
	Environment    string        // development, production
	Port           string        // :8082
	AppURL         string        // public URL of the storefront front-end
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// StorefrontConfig holds the connection settings for the commerce
// platform's Storefront GraphQL API. Domain and AccessToken are required;
// startup fails fast when either is missing.
type StorefrontConfig struct {
	Domain      string // e.g. my-store.myshopify.com
	AccessToken string // X-Shopify-Storefront-Access-Token header value
	APIVersion  string // pinned, e.g. 2024-01
	Timeout     time.Duration
}

func (sc *StorefrontConfig) Endpoint() string {
	return "https://" + sc.Domain + "/api/" + sc.APIVersion + "/graphql.json"
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration

	ContentTTL time.Duration // metaobject-backed content (FAQs, gallery, menus)
	ProductTTL time.Duration // product and collection payloads
	CartTTL    time.Duration // cart snapshots keyed by cart token
}

type RateLimitConfig struct {
	Enabled         bool
	GeneralLimit    int
	GeneralWindow   time.Duration
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
	CartLimit       int
	CartWindow      time.Duration
}

type EmailConfig struct {
	ApiKey       string // resend API key
	From         string
	ContractorTo []string // recipients for contractor-program inquiries
}
