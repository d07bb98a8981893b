package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"sitebuilder-backend/shared/config"
	"sitebuilder-backend/shared/database/models"
)

// CacheManager caches public website payloads keyed by owner and slug.
// Handlers treat a nil manager as a cache miss, so Redis being down
// never breaks reads.
type CacheManager struct {
	client *redis.Client
	ctx    context.Context
}

var (
	globalCacheManager *CacheManager
	WebsiteTTL         = 15 * time.Minute
)

// InitCacheManager initializes the global cache manager
func InitCacheManager() error {
	cfg := config.GetConfig()

	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		log.Printf("❌ Invalid Redis DB number: %s, using default 0", cfg.RedisDB)
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	globalCacheManager = &CacheManager{
		client: client,
		ctx:    ctx,
	}

	log.Printf("✅ Redis Cache Manager initialized successfully - %s:%s DB:%d",
		cfg.RedisHost, cfg.RedisPort, redisDB)

	return nil
}

// GetCacheManager returns the global cache manager instance, nil when
// Redis is unavailable
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		if err := InitCacheManager(); err != nil {
			log.Printf("❌ Failed to initialize cache manager: %v", err)
			return nil
		}
	}
	return globalCacheManager
}

// WebsiteSlugKey generates the cache key for a website-by-slug lookup
func WebsiteSlugKey(userID, slug string) string {
	return fmt.Sprintf("website:user:%s:slug:%s", userID, slug)
}

// SetWebsite caches a website payload under its owner and slug
func (cm *CacheManager) SetWebsite(userID, slug string, website *models.Website) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	key := WebsiteSlugKey(userID, slug)

	jsonData, err := json.Marshal(website)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %v", err)
	}

	if err := cm.client.Set(cm.ctx, key, jsonData, WebsiteTTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %v", err)
	}

	return nil
}

// GetWebsite retrieves a cached website payload
func (cm *CacheManager) GetWebsite(userID, slug string) (*models.Website, bool) {
	if cm == nil || cm.client == nil {
		return nil, false
	}

	key := WebsiteSlugKey(userID, slug)

	result, err := cm.client.Get(cm.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false
		}
		log.Printf("❌ Cache error: %v", err)
		return nil, false
	}

	var website models.Website
	if err := json.Unmarshal([]byte(result), &website); err != nil {
		log.Printf("❌ Failed to unmarshal cache data: %v", err)
		return nil, false
	}

	return &website, true
}

// InvalidateWebsite drops the cache entry for a single website slug
func (cm *CacheManager) InvalidateWebsite(userID, slug string) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	key := WebsiteSlugKey(userID, slug)
	if err := cm.client.Del(cm.ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %v", key, err)
	}

	return nil
}

// InvalidateUserWebsites drops every cached website of a user
func (cm *CacheManager) InvalidateUserWebsites(userID string) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	pattern := fmt.Sprintf("website:user:%s:*", userID)
	return cm.invalidateByPattern(pattern)
}

// invalidateByPattern invalidates cache entries matching a pattern
func (cm *CacheManager) invalidateByPattern(pattern string) error {
	iter := cm.client.Scan(cm.ctx, 0, pattern, 0).Iterator()
	var keys []string

	for iter.Next(cm.ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %v", err)
	}

	if len(keys) > 0 {
		if err := cm.client.Del(cm.ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to delete keys: %v", err)
		}
		log.Printf("🗑️  Cache invalidated: %d keys matching pattern '%s'", len(keys), pattern)
	}

	return nil
}

// Close closes the cache manager connection
func (cm *CacheManager) Close() error {
	if cm != nil && cm.client != nil {
		return cm.client.Close()
	}
	return nil
}
