package news

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FeedCache provides file-based caching for fetched feed articles, so
// repeated runs inside the TTL window do not hammer the sources.
type FeedCache struct {
	cacheDir string
	ttl      time.Duration
	mu       sync.RWMutex
}

// cachedFeed is one cached source fetch
type cachedFeed struct {
	Key       string    `json:"key"`
	Articles  []byte    `json:"articles"`
	FetchedAt time.Time `json:"fetched_at"`
}

// NewFeedCache creates a cache rooted at cacheDir
func NewFeedCache(cacheDir string, ttl time.Duration) *FeedCache {
	if cacheDir == "" {
		cacheDir = "cache/feeds"
	}
	os.MkdirAll(cacheDir, 0755)

	return &FeedCache{
		cacheDir: cacheDir,
		ttl:      ttl,
	}
}

// Get retrieves cached articles for a key, if fresh
func (c *FeedCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cacheFile := c.cacheFilePath(key)

	info, err := os.Stat(cacheFile)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		os.Remove(cacheFile)
		return nil, false
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, false
	}

	var entry cachedFeed
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	return entry.Articles, true
}

// Set stores articles for a key
func (c *FeedCache) Set(key string, articles []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cachedFeed{
		Key:       key,
		Articles:  articles,
		FetchedAt: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return os.WriteFile(c.cacheFilePath(key), data, 0644)
}

// GetOrFetch retrieves from cache or fetches using the provided function
func (c *FeedCache) GetOrFetch(key string, fetchFn func() ([]byte, error)) ([]byte, error) {
	if data, ok := c.Get(key); ok {
		return data, nil
	}

	data, err := fetchFn()
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors)
	c.Set(key, data)

	return data, nil
}

// CleanupExpired removes cache files past their TTL
func (c *FeedCache) CleanupExpired() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) > c.ttl {
			os.Remove(filepath.Join(c.cacheDir, entry.Name()))
		}
	}

	return nil
}

func (c *FeedCache) cacheFilePath(key string) string {
	hash := md5.Sum([]byte(key))
	return filepath.Join(c.cacheDir, fmt.Sprintf("%x.json", hash))
}
