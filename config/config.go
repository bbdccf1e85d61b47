package config

import (
	"modularcloset_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "ModularCloset_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8082"),
				AppURL:         getEnvAsString("APP_URL", "http://localhost:3000"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:3000"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-Cart-Token"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "X-Cart-Token"}),
			},
			Storefront: &structs.StorefrontConfig{
				Domain:      getEnvAsString("SHOPIFY_STORE_DOMAIN", ""),
				AccessToken: getEnvAsString("SHOPIFY_STOREFRONT_ACCESS_TOKEN", ""),
				APIVersion:  getEnvAsString("SHOPIFY_API_VERSION", "2024-01"),
				Timeout:     getEnvAsTimeDuration("STOREFRONT_TIMEOUT", 10*time.Second),
			},
			Cache: &structs.CacheConfig{
				Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
				PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 4*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
				DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
				ContentTTL:      getEnvAsTimeDuration("CACHE_CONTENT_TTL", 10*time.Minute),
				ProductTTL:      getEnvAsTimeDuration("CACHE_PRODUCT_TTL", 5*time.Minute),
				CartTTL:         getEnvAsTimeDuration("CACHE_CART_TTL", 14*24*time.Hour),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:         getEnvAsBool("RATE_LIMIT_ENABLED", true),
				GeneralLimit:    getEnvAsInt("RATE_LIMIT_GENERAL", 120),
				GeneralWindow:   getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
				ExpensiveLimit:  getEnvAsInt("RATE_LIMIT_EXPENSIVE", 60),
				ExpensiveWindow: getEnvAsTimeDuration("RATE_LIMIT_EXPENSIVE_WINDOW", time.Minute),
				CartLimit:       getEnvAsInt("RATE_LIMIT_CART", 30),
				CartWindow:      getEnvAsTimeDuration("RATE_LIMIT_CART_WINDOW", time.Minute),
			},
			Email: &structs.EmailConfig{
				ApiKey:       getEnvAsString("RESEND_API_KEY", ""),
				From:         getEnvAsString("EMAIL_FROM", "storefront@modularcloset.dev"),
				ContractorTo: getEnvAsSlice("EMAIL_CONTRACTOR_TO", []string{"pro@modularcloset.dev"}),
			},
		}
	})
	return configInstance
}

// ValidateConfig checks the required configuration. The storefront domain
// and access token have no usable defaults; without them every upstream
// call would fail, so startup aborts instead.
func ValidateConfig(cfg *structs.Config) []string {
	var missing []string
	if cfg.Storefront.Domain == "" {
		missing = append(missing, "SHOPIFY_STORE_DOMAIN")
	}
	if cfg.Storefront.AccessToken == "" {
		missing = append(missing, "SHOPIFY_STOREFRONT_ACCESS_TOKEN")
	}
	return missing
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
