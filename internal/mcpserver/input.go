package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// serviceInput represents the three ways a service description can be
// provided to a tool. Exactly one of File, URL, or Content must be set.
type serviceInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a .normal.json service description on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a service description from"`
	Content string `json:"content,omitempty" jsonschema:"Inline service description content (JSON)"`
}

// cacheEntry holds fetched description bytes with LRU ordering and TTL expiry.
type cacheEntry struct {
	data      []byte
	insertAt  time.Time
	expiresAt time.Time
}

// inputCacheStore provides a session-scoped cache of raw service
// descriptions. File inputs are keyed by (absolutePath, modTime) and URL
// inputs by URL string. Inline content is never cached. Entries have
// per-type TTLs and a background sweeper removes expired entries.
type inputCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var inputCache = &inputCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns cached bytes or nil. Expired entries are lazily removed.
func (c *inputCacheStore) get(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.data
	}
	return nil
}

// putWithTTL stores data with a specific TTL, evicting the oldest entry if at capacity.
func (c *inputCacheStore) putWithTTL(key string, data []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{data: data, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *inputCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes
// expired entries. Only the first call spawns a sweeper; it stops when ctx
// is cancelled.
func (c *inputCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *inputCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *inputCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key and TTL for s, or "" when s is not cached.
func (s serviceInput) cacheKey() (string, time.Duration) {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return "", 0
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "", 0
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano()), cfg.CacheFileTTL
	case s.URL != "":
		return "url:" + s.URL, cfg.CacheURLTTL
	default:
		return "", 0
	}
}

// filename returns the file name the description was published under, used
// for the x-origin URL and the service name, or "" for inline content.
func (s serviceInput) filename() string {
	switch {
	case s.File != "":
		return filepath.Base(s.File)
	case s.URL != "":
		u, err := url.Parse(s.URL)
		if err != nil || u.Path == "" || u.Path == "/" {
			return ""
		}
		return path.Base(u.Path)
	default:
		return ""
	}
}

// load returns the raw description from whichever input was provided, using
// the cache for file and URL inputs.
func (s serviceInput) load(ctx context.Context) ([]byte, error) {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	if s.Content != "" {
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set AWS2OPENAPI_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return []byte(s.Content), nil
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key, ttl = s.cacheKey()
	}
	if key != "" {
		if cached := inputCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var data []byte
	var err error
	if s.File != "" {
		data, err = os.ReadFile(s.File) //nolint:gosec // path is chosen by the MCP client
	} else {
		client := &http.Client{Timeout: 30 * time.Second}
		if !cfg.AllowPrivateIPs {
			client = newSafeHTTPClient()
		}
		data, err = fetch(ctx, client, s.URL, cfg.MaxInlineSize)
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		inputCache.putWithTTL(key, data, ttl)
	}
	return data, nil
}
