package pages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"golang.org/x/sync/singleflight"

	"github.com/ariaml/ariaml-go/pkg/cache"
	"github.com/ariaml/ariaml-go/pkg/logger"
)

const (
	sourceExt = ".md"
	indexName = "index"
)

// Store loads pages from a file system and caches the parsed result.
// Concurrent loads of the same page are collapsed into one.
// A Store is safe for concurrent use.
type Store struct {
	fsys      fs.FS
	md        goldmark.Markdown
	log       *slog.Logger
	cache     *cache.LRU[*Page]
	loads     singleflight.Group
	cacheSize int
	cacheTTL  time.Duration
	noCache   bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used for load traces.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMarkdown replaces the markdown converter.
func WithMarkdown(md goldmark.Markdown) StoreOption {
	return func(s *Store) {
		if md != nil {
			s.md = md
		}
	}
}

// WithCacheSize bounds the number of cached pages. The least recently
// served page is dropped first. Zero means unlimited.
func WithCacheSize(n int) StoreOption {
	return func(s *Store) {
		s.cacheSize = n
	}
}

// WithCacheTTL reloads a cached page once it is older than d.
func WithCacheTTL(d time.Duration) StoreOption {
	return func(s *Store) {
		s.cacheTTL = d
	}
}

// WithoutCache reloads pages on every Get. Meant for local authoring.
func WithoutCache() StoreOption {
	return func(s *Store) {
		s.noCache = true
	}
}

// NewStore creates a store reading page sources from fsys.
func NewStore(fsys fs.FS, opts ...StoreOption) *Store {
	s := &Store{
		fsys: fsys,
		md:   NewMarkdown(),
		log:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = cache.New(
		cache.WithMaxEntries[*Page](s.cacheSize),
		cache.WithTTL[*Page](s.cacheTTL),
		cache.WithEvictCallback(func(route string, _ *Page) {
			s.log.Debug("page evicted", slog.String("route", route))
		}),
	)
	return s
}

// Get returns the page for route. "/" maps to index.md, "/a/b" to a/b.md
// or a/b/index.md. Unknown routes return ErrPageNotFound.
func (s *Store) Get(ctx context.Context, route string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := routeKey(route)
	if !s.noCache {
		if p, ok := s.cache.Get(key); ok {
			return p, nil
		}
	}

	ch := s.loads.DoChan(key, func() (any, error) {
		return s.load(key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Page), nil
	}
}

// Invalidate drops the cached pages of the given routes, or all pages.
func (s *Store) Invalidate(routes ...string) {
	if len(routes) == 0 {
		s.cache.Clear()
		return
	}
	keys := make([]string, len(routes))
	for i, r := range routes {
		keys[i] = routeKey(r)
	}
	s.cache.Delete(keys...)
}

// Cached returns the routes of the cached pages, most recently served first.
func (s *Store) Cached() []string {
	keys := s.cache.Keys()
	for i, k := range keys {
		keys[i] = "/" + k
	}
	return keys
}

// Warm loads every page source of the file system into the cache.
// It stops at the first page that fails to parse.
func (s *Store) Warm(ctx context.Context) error {
	n := 0
	err := fs.WalkDir(s.fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != sourceExt {
			return nil
		}
		if _, err := s.Get(ctx, SourceRoute(name)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		n++
		return nil
	})
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "pages loaded", slog.Int("count", n))
	return nil
}

// Healthcheck reports the store unhealthy while the home page cannot be loaded.
func (s *Store) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := s.Get(ctx, "/")
		return err
	}
}

// Close drops the cache. It matches the shutdown hook signature.
func (s *Store) Close(context.Context) error {
	s.Invalidate()
	return nil
}

func (s *Store) load(key string) (*Page, error) {
	var lastErr error
	for _, name := range candidates(key) {
		content, err := fs.ReadFile(s.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			lastErr = err
			continue
		}

		p, err := parsePage(content, s.md)
		if err != nil {
			s.log.Error("page parse failed", slog.String("source", name), slog.Any("error", err))
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		p.Source = name

		if !s.noCache {
			s.cache.Set(key, p)
		}
		s.log.Debug("page loaded", slog.String("route", key), slog.String("source", name))
		return p, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPageNotFound, key, lastErr)
	}
	return nil, fmt.Errorf("%w: %s", ErrPageNotFound, key)
}

// routeKey normalizes a route to a slash-free relative path. "" is the home page.
func routeKey(route string) string {
	return strings.TrimPrefix(path.Clean("/"+route), "/")
}

func candidates(key string) []string {
	if key == "" {
		return []string{indexName + sourceExt}
	}
	return []string{key + sourceExt, path.Join(key, indexName+sourceExt)}
}

// SourceRoute returns the route served by a page source path.
//
//	index.md          => /
//	products/lamp.md  => /products/lamp
//	products/index.md => /products
func SourceRoute(name string) string {
	name = strings.TrimSuffix(name, sourceExt)
	if name == indexName {
		return "/"
	}
	return "/" + strings.TrimSuffix(name, "/"+indexName)
}
