// Package i18n resolves message keys to localized text from a file-backed
// catalog, with resolved strings served from a bounded LRU cache.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog holds the message templates for every language, loaded from one
// YAML file per language (messages/en.yaml, messages/id.yaml, ...). Each
// file is a flat key -> template mapping.
type Catalog struct {
	dir      string
	messages map[string]map[string]string
}

// LoadCatalog reads every .yaml/.yml file in dir. The language code is the
// file name without extension.
func LoadCatalog(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) load() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("read messages dir %s: %w", c.dir, err)
	}

	messages := make(map[string]map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		lang := strings.TrimSuffix(e.Name(), ext)

		data, err := os.ReadFile(filepath.Join(c.dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", e.Name(), err)
		}
		var templates map[string]string
		if err := yaml.Unmarshal(data, &templates); err != nil {
			return fmt.Errorf("parse catalog %s: %w", e.Name(), err)
		}
		messages[lang] = templates
	}
	c.messages = messages
	return nil
}

// Reload re-reads the catalog directory, replacing all templates.
func (c *Catalog) Reload() error {
	return c.load()
}

// Lookup returns the raw template for a (language, key) pair.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	templates, ok := c.messages[lang]
	if !ok {
		return "", false
	}
	tpl, ok := templates[key]
	return tpl, ok
}

// HasLanguage reports whether a language file was loaded.
func (c *Catalog) HasLanguage(lang string) bool {
	_, ok := c.messages[lang]
	return ok
}

// Languages returns the loaded language codes, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
