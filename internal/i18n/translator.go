package i18n

import (
	"encoding/json"
	"fmt"
	"strings"

	"user-directory-api/internal/cache"
)

// DefaultCacheCapacity bounds the translation cache. Translation volumes
// are higher-cardinality than identities: many keys x few languages x
// occasional argument variants.
const DefaultCacheCapacity = 5000

// keySeparator joins the language code, message key and serialized args
// into one cache key, so that the same message key in different languages
// or with different arguments occupies distinct cache slots.
const keySeparator = ":"

// Translator is the localization facade: a message catalog fronted by a
// bounded LRU cache of fully resolved strings.
type Translator struct {
	catalog     *Catalog
	defaultLang string
	cache       *cache.LRU[string, string]
}

// NewTranslator builds a translator over the given catalog. Lookups for
// languages without a catalog file fall back to defaultLang.
func NewTranslator(catalog *Catalog, defaultLang string, cacheCapacity int) (*Translator, error) {
	lru, err := cache.NewLRU[string, string](cacheCapacity, cache.Options{ConcurrencySafe: true})
	if err != nil {
		return nil, err
	}
	return &Translator{
		catalog:     catalog,
		defaultLang: defaultLang,
		cache:       lru,
	}, nil
}

// Translate resolves a message key for a language.
func (t *Translator) Translate(lang, key string) string {
	return t.TranslateWithArgs(lang, key, nil)
}

// TranslateWithArgs resolves a message key for a language, substituting
// {name} placeholders from args. Resolution is cache-aside: the resolved
// string is cached under the composite key and served from the cache on
// subsequent lookups. An unknown key resolves to the key itself.
func (t *Translator) TranslateWithArgs(lang, key string, args map[string]any) string {
	ck := cacheKey(lang, key, args)
	if resolved, ok := t.cache.Get(ck); ok {
		return resolved
	}

	resolved := t.resolve(lang, key, args)
	t.cache.Set(ck, resolved)
	return resolved
}

func (t *Translator) resolve(lang, key string, args map[string]any) string {
	tpl, ok := t.catalog.Lookup(lang, key)
	if !ok && lang != t.defaultLang {
		tpl, ok = t.catalog.Lookup(t.defaultLang, key)
	}
	if !ok {
		// Missing translation: surface the key rather than failing.
		return key
	}
	return interpolate(tpl, args)
}

// interpolate replaces {name} placeholders with the stringified arg values.
func interpolate(tpl string, args map[string]any) string {
	if len(args) == 0 {
		return tpl
	}
	out := tpl
	for name, value := range args {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprint(value))
	}
	return out
}

// cacheKey builds the composite cache key. Args are JSON-serialized, which
// is stable because Go marshals map keys in sorted order.
func cacheKey(lang, key string, args map[string]any) string {
	if len(args) == 0 {
		return lang + keySeparator + key
	}
	serialized, err := json.Marshal(args)
	if err != nil {
		// Unserializable args: fall back to the unparameterized key so the
		// lookup still works, at the cost of a shared slot.
		return lang + keySeparator + key
	}
	return lang + keySeparator + key + keySeparator + string(serialized)
}

// ClearLanguage removes every cached entry for one language. Linear scan
// over the exported entries; cache sizes are bounded by capacity so this
// stays cheap.
func (t *Translator) ClearLanguage(lang string) int {
	prefix := lang + keySeparator
	removed := 0
	for _, row := range t.cache.Export() {
		if strings.HasPrefix(row.Key, prefix) {
			if t.cache.Delete(row.Key) {
				removed++
			}
		}
	}
	return removed
}

// Reload re-reads the catalog directory and drops all cached strings.
func (t *Translator) Reload() error {
	if err := t.catalog.Reload(); err != nil {
		return err
	}
	t.cache.Clear()
	return nil
}

// Languages returns the catalog's loaded language codes.
func (t *Translator) Languages() []string {
	return t.catalog.Languages()
}

// DefaultLanguage returns the fallback language code.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Metrics returns the translation cache's metrics snapshot.
func (t *Translator) Metrics() cache.Metrics {
	return t.cache.Metrics()
}

// ResetMetrics zeroes the translation cache's hit/miss counters.
func (t *Translator) ResetMetrics() {
	t.cache.ResetMetrics()
}

// ClearCache flushes all cached strings, preserving counters.
func (t *Translator) ClearCache() {
	t.cache.Clear()
}

// CacheLen returns the number of cached resolved strings.
func (t *Translator) CacheLen() int {
	return t.cache.Len()
}
