// Package registry stores filter catalogs keyed by list resource
// ("orders", "customers", ...). Catalogs are registered at startup, either
// in code or from YAML files, and read-only afterwards.
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"filterbar/internal/domain/filters"
)

// ListDef describes one filterable list resource.
type ListDef struct {
	// Resource is the list identifier used in API routes.
	Resource string `json:"resource"`

	// Label is an optional display name for the list.
	Label string `json:"label,omitempty"`

	// Filters is the catalog of filter definitions for the list.
	Filters filters.Catalog `json:"filters"`
}

// Registry stores list definitions in registration order.
type Registry struct {
	lists map[string]ListDef
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		lists: make(map[string]ListDef),
	}
}

// Register adds or replaces a list definition.
func (r *Registry) Register(def ListDef) {
	if _, exists := r.lists[def.Resource]; !exists {
		r.order = append(r.order, def.Resource)
	}
	r.lists[def.Resource] = def
}

// Get returns the definition for a resource.
func (r *Registry) Get(resource string) (ListDef, bool) {
	d, ok := r.lists[resource]
	return d, ok
}

// List returns all definitions in registration order.
func (r *Registry) List() []ListDef {
	list := make([]ListDef, 0, len(r.order))
	for _, resource := range r.order {
		list = append(list, r.lists[resource])
	}
	return list
}

// LoadDir registers every *.yaml / *.yml catalog file in dir.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read catalog dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile registers a single catalog file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var def ListDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	if def.Resource == "" {
		return fmt.Errorf("catalog file %s: missing resource name", path)
	}

	r.Register(def)
	return nil
}
