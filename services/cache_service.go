package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"modularcloset_server/config"
	"modularcloset_server/structs"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// kvStore is the raw get/set surface the JSON codec helpers run on.
// *CacheService implements it with retrying redis commands; tests
// substitute in-memory fakes.
type kvStore interface {
	Get(key string) (string, error)
	Set(key string, value any, ttl time.Duration) error
}

// contentStore is the slice of the cache the metaobject loaders depend on.
type contentStore interface {
	kvStore
	contentTTL() time.Duration
}

// cartStore is the snapshot persistence surface of the cart service.
type cartStore interface {
	GetCartSnapshot(token string) (*structs.CartSnapshot, error)
	SetCartSnapshot(token string, snapshot *structs.CartSnapshot) error
}

// CacheService provides Redis caching functionality with connection pooling and retry logic
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:        cfg.Cache.PoolSize,
			MinIdleConns:    cfg.Cache.MinIdleConns,
			MaxIdleConns:    cfg.Cache.MaxIdleConns,
			PoolTimeout:     cfg.Cache.PoolTimeout,
			ConnMaxIdleTime: cfg.Cache.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// Don't retry on the last attempt
		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors like key not found
		if !isRetryableError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		_, err = rand.Read(jitterBytes)
		if err != nil {
			// fallback to no jitter if random fails
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))

		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableError determines if an error is worth retrying
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry on nil results (key not found)
	if err == redis.Nil {
		return false
	}

	// Retry on network/connection errors
	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

// Set sets a key with TTL and automatic retry logic
func (cs *CacheService) Set(key string, value any, ttl time.Duration) error {
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, value, ttl).Err()
	}, 3)
}

// Get retrieves a key with automatic retry logic
func (cs *CacheService) Get(key string) (string, error) {
	var result string

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = ""
			return nil // Don't retry on key not found
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	if err != nil {
		return "", err
	}

	return result, nil
}

// Delete removes a key with automatic retry logic
func (cs *CacheService) Delete(key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, key).Err()
	}, 3)
}

// Exists checks if a key exists with automatic retry logic
func (cs *CacheService) Exists(key string) (bool, error) {
	var result bool

	err := cs.withRetry(func() error {
		count, err := cs.client.Exists(redisCtx, key).Result()
		if err != nil {
			return err
		}
		result = count > 0
		return nil
	}, 3)

	return result, err
}

// SetRateLimit sets a rate limit counter for an IP/endpoint combination
func (cs *CacheService) SetRateLimit(ip, endpoint string, count int, ttl time.Duration) error {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)
	return cs.Set(key, count, ttl)
}

// GetRateLimit retrieves the current rate limit count for an IP/endpoint
func (cs *CacheService) GetRateLimit(ip, endpoint string) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)
	val, err := cs.Get(key)
	if err != nil {
		return 0, err
	}

	if val == "" {
		return 0, nil
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid rate limit value: %w", err)
	}

	return count, nil
}

// IncrementRateLimit atomically increments a rate limit counter
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, ttl time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	var result int64
	err := cs.withRetry(func() error {
		val, err := cs.client.Incr(redisCtx, key).Result()
		if err != nil {
			return err
		}
		result = val

		// Set expiration only on first increment
		if val == 1 {
			return cs.client.Expire(redisCtx, key, ttl).Err()
		}

		return nil
	}, 3)

	return int(result), err
}

// Ping tests the Redis connection
func (cs *CacheService) Ping() error {
	return cs.withRetry(func() error {
		return cs.client.Ping(redisCtx).Err()
	}, 3)
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	stats := cs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}

// ============================================================================
// Product Caching Methods
// ============================================================================

// GetProductByHandle retrieves a cached product detail by its URL handle
func (cs *CacheService) GetProductByHandle(handle string) (*structs.Product, error) {
	key := fmt.Sprintf("product:handle:%s", handle)

	product, err := getJSON[structs.Product](cs, key)
	if err != nil {
		cs.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("handle", handle))
		return nil, err
	}

	return product, nil
}

// SetProductByHandle caches a product detail by its URL handle
func (cs *CacheService) SetProductByHandle(product *structs.Product) error {
	if product == nil {
		return nil
	}
	key := fmt.Sprintf("product:handle:%s", product.Handle)
	return setJSON(cs, key, product, cs.getProductTTL())
}

// GetCollection retrieves a cached collection page keyed by handle and
// the pagination/sort parameters that shaped it
func (cs *CacheService) GetCollection(cacheKey string) (*structs.Collection, error) {
	key := fmt.Sprintf("collection:%s", cacheKey)

	collection, err := getJSON[structs.Collection](cs, key)
	if err != nil {
		cs.logger.Warn("Failed to get collection from cache", gecho.Field("error", err), gecho.Field("key", key))
		return nil, err
	}

	return collection, nil
}

// SetCollection caches a collection page
func (cs *CacheService) SetCollection(cacheKey string, collection *structs.Collection) error {
	if collection == nil {
		return nil
	}
	key := fmt.Sprintf("collection:%s", cacheKey)
	return setJSON(cs, key, collection, cs.getProductTTL())
}

// ============================================================================
// Content Caching Methods
// ============================================================================

// GetContent retrieves a cached content payload (FAQs, gallery, megamenu,
// reviews and the rest of the metaobject-backed loaders) under a
// loader-chosen key
func GetContent[T any](store contentStore, key string) (*T, error) {
	return getJSON[T](store, "content:"+key)
}

// SetContent caches a content payload under a loader-chosen key
func SetContent[T any](store contentStore, key string, value T) error {
	return setJSON(store, "content:"+key, value, store.contentTTL())
}

// ============================================================================
// Cart Snapshot Methods
// ============================================================================

// GetCartSnapshot retrieves the cart snapshot for a cart token
func (cs *CacheService) GetCartSnapshot(token string) (*structs.CartSnapshot, error) {
	key := fmt.Sprintf("cart:%s", token)

	snapshot, err := getJSON[structs.CartSnapshot](cs, key)
	if err != nil {
		cs.logger.Warn("Failed to get cart snapshot from cache", gecho.Field("error", err), gecho.Field("token", token))
		return nil, err
	}

	return snapshot, nil
}

// SetCartSnapshot stores the cart snapshot for a cart token, refreshing
// its TTL so active carts never expire mid-session
func (cs *CacheService) SetCartSnapshot(token string, snapshot *structs.CartSnapshot) error {
	if snapshot == nil {
		return nil
	}
	key := fmt.Sprintf("cart:%s", token)
	return setJSON(cs, key, snapshot, cs.getCartTTL())
}

// DeleteCartSnapshot removes the cart snapshot for a cart token
func (cs *CacheService) DeleteCartSnapshot(token string) error {
	key := fmt.Sprintf("cart:%s", token)
	return cs.Delete(key)
}

// ============================================================================
// Cache Invalidation Methods
// ============================================================================

// InvalidateProductCaches removes all product and collection caches.
// Called from the debug surface after catalog edits upstream
func (cs *CacheService) InvalidateProductCaches() error {
	cs.logger.Info("Invalidating product caches")

	patterns := []string{
		"product:*",
		"collection:*",
	}

	for _, pattern := range patterns {
		if err := cs.DeletePattern(pattern); err != nil {
			cs.logger.Error("Failed to delete cache pattern", gecho.Field("pattern", pattern), gecho.Field("error", err))
			return err
		}
	}

	cs.logger.Info("Product caches invalidated successfully")
	return nil
}

// InvalidateContentCaches removes every cached content payload
func (cs *CacheService) InvalidateContentCaches() error {
	cs.logger.Info("Invalidating content caches")
	return cs.DeletePattern("content:*")
}

// DeletePattern removes all keys matching a pattern using SCAN
func (cs *CacheService) DeletePattern(pattern string) error {
	return cs.withRetry(func() error {
		var cursor uint64

		for {
			keys, nextCursor, err := cs.client.Scan(redisCtx, cursor, pattern, 100).Result()
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if len(keys) > 0 {
				if err := cs.client.Del(redisCtx, keys...).Err(); err != nil {
					return fmt.Errorf("delete failed: %w", err)
				}
			}

			cursor = nextCursor
			if cursor == 0 {
				break
			}
		}

		return nil
	}, 3)
}

func (cs *CacheService) ClearAll() error {
	return cs.withRetry(func() error {
		return cs.client.FlushDB(redisCtx).Err()
	}, 3)
}

// ============================================================================
// Helper Methods
// ============================================================================

func (cs *CacheService) getProductTTL() time.Duration {
	if cs.config.Cache.ProductTTL > 0 {
		return cs.config.Cache.ProductTTL
	}
	return 5 * time.Minute // fallback default
}

func (cs *CacheService) contentTTL() time.Duration {
	if cs.config.Cache.ContentTTL > 0 {
		return cs.config.Cache.ContentTTL
	}
	return 10 * time.Minute // fallback default
}

func (cs *CacheService) getCartTTL() time.Duration {
	if cs.config.Cache.CartTTL > 0 {
		return cs.config.Cache.CartTTL
	}
	return 14 * 24 * time.Hour // fallback default
}

func setJSON[T any](store kvStore, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(key, data, ttl)
}

func getJSON[T any](store kvStore, key string) (*T, error) {
	val, err := store.Get(key)
	if err != nil {
		return nil, err
	}

	if val == "" {
		return nil, nil // not found in cache
	}

	var result T
	err = json.Unmarshal([]byte(val), &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
