package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/doeshing/uniterm/internal/pkg/filesystem"
	"github.com/doeshing/uniterm/internal/ports"
)

// cachedAdvice is one stored advisor reply.
type cachedAdvice struct {
	Key       string    `json:"key"`
	Advice    string    `json:"advice"`
	Advisor   string    `json:"advisor"`
	CreatedAt time.Time `json:"created_at"`
}

// adviceCache stores advisor replies as JSON blobs addressed by request
// digest. Advice for a verb is stable, so entries live for a day and the
// directory is capped to bound disk use.
type adviceCache struct {
	dir        string
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
}

func newAdviceCache() *adviceCache {
	return newAdviceCacheAt(filepath.Join(filesystem.UserHomeDir(), ".uniterm", "cache", "advice"))
}

func newAdviceCacheAt(dir string) *adviceCache {
	return &adviceCache{
		dir:        dir,
		maxEntries: 100,
		ttl:        24 * time.Hour,
	}
}

func (c *adviceCache) get(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	path := c.pathFor(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var entry cachedAdvice
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}
	if c.ttl > 0 && time.Since(entry.CreatedAt) > c.ttl {
		_ = os.Remove(path)
		return "", false
	}
	return entry.Advice, true
}

func (c *adviceCache) put(entry cachedAdvice) error {
	if entry.Key == "" || entry.Advice == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.pathFor(entry.Key), data, 0o644); err != nil {
		return err
	}
	return c.evictIfNeeded()
}

func (c *adviceCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *adviceCache) evictIfNeeded() error {
	if c.maxEntries <= 0 {
		return nil
	}
	files, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(files) <= c.maxEntries {
		return nil
	}
	type fileInfo struct {
		name string
		mod  time.Time
	}
	var infos []fileInfo
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		infos = append(infos, fileInfo{name: f.Name(), mod: info.ModTime()})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].mod.Before(infos[j].mod)
	})
	for len(infos) > c.maxEntries {
		old := infos[0]
		_ = os.Remove(filepath.Join(c.dir, old.name))
		infos = infos[1:]
	}
	return nil
}

// cacheKey digests an advisor request so equivalent lines share an entry.
// The digest covers direction and verb but not the full line: advice is
// verb-scoped and arguments would fragment the cache.
func cacheKey(req ports.AdvisorRequest) string {
	sum := sha256.Sum256([]byte(string(req.Source) + "|" + string(req.Host) + "|" + strings.ToLower(req.Verb)))
	return hex.EncodeToString(sum[:8])
}

// CachedAdvisor wraps another advisor with the on-disk advice cache, so a
// verb retyped in a later session does not hit the model again.
type CachedAdvisor struct {
	inner ports.Advisor
	cache *adviceCache
}

// NewCachedAdvisor decorates inner with cached replies.
func NewCachedAdvisor(inner ports.Advisor) *CachedAdvisor {
	return &CachedAdvisor{inner: inner, cache: newAdviceCache()}
}

// Name implements ports.Advisor.
func (a *CachedAdvisor) Name() string {
	return a.inner.Name()
}

// Explain returns the cached reply when present, otherwise asks the inner
// advisor and stores any non-empty answer. Cache write failures are ignored;
// the advice still reaches the caller.
func (a *CachedAdvisor) Explain(ctx context.Context, req ports.AdvisorRequest) (string, error) {
	key := cacheKey(req)
	if advice, ok := a.cache.get(key); ok {
		return advice, nil
	}

	advice, err := a.inner.Explain(ctx, req)
	if err != nil || advice == "" {
		return advice, err
	}

	_ = a.cache.put(cachedAdvice{
		Key:       key,
		Advice:    advice,
		Advisor:   a.inner.Name(),
		CreatedAt: time.Now(),
	})
	return advice, nil
}

var _ ports.Advisor = (*CachedAdvisor)(nil)
