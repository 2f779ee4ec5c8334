// Package registry implements the static template registry (spec.md §4.3):
// a declarative table mapping (document_type, template_name) to a helper
// constructor and its metadata.
package registry

import (
	"sort"

	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/helpers"
)

// Constructor builds a helper instance for a single request. Helpers are
// stateless after construction: one instance per request, never shared
// (spec.md §3).
type Constructor func(data entity.Data, cfg helpers.Config) helpers.Helper

type row struct {
	info        entity.TemplateInfo
	constructor Constructor
}

// Registry is the immutable, init-time-populated template table. There is no
// locking because spec.md §5 declares it immutable after init.
type Registry struct {
	rows map[entity.DocumentType]map[string]row
}

// New builds a Registry pre-populated with the built-in templates.
func New() *Registry {
	r := &Registry{rows: map[entity.DocumentType]map[string]row{
		entity.DocumentTypeResume:      {},
		entity.DocumentTypeCoverLetter: {},
	}}
	registerBuiltins(r)
	return r
}

func (r *Registry) register(docType entity.DocumentType, name string, info entity.TemplateInfo, ctor Constructor) {
	info.Name = name
	info.DocumentType = docType
	r.rows[docType][name] = row{info: info, constructor: ctor}
}

// List returns template names grouped by document type. When docType is
// non-empty, only that type's names are included.
func (r *Registry) List(docType entity.DocumentType) map[entity.DocumentType][]string {
	out := map[entity.DocumentType][]string{}
	for dt, rows := range r.rows {
		if docType != "" && dt != docType {
			continue
		}
		names := make([]string, 0, len(rows))
		for name := range rows {
			names = append(names, name)
		}
		sort.Strings(names)
		out[dt] = names
	}
	return out
}

// Get returns the registry row's metadata, or false if unknown.
func (r *Registry) Get(docType entity.DocumentType, template string) (entity.TemplateInfo, bool) {
	rows, ok := r.rows[docType]
	if !ok {
		return entity.TemplateInfo{}, false
	}
	row, ok := rows[template]
	if !ok {
		return entity.TemplateInfo{}, false
	}
	return row.info, true
}

// HelperOf returns the constructor for (docType, template), or false if
// unknown.
func (r *Registry) HelperOf(docType entity.DocumentType, template string) (Constructor, bool) {
	rows, ok := r.rows[docType]
	if !ok {
		return nil, false
	}
	row, ok := rows[template]
	if !ok {
		return nil, false
	}
	return row.constructor, true
}

// AvailableNames returns the sorted template names registered for docType,
// used to build the "available_templates" hint of spec.md §4.3/§7.
func (r *Registry) AvailableNames(docType entity.DocumentType) []string {
	rows, ok := r.rows[docType]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(rows))
	for name := range rows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
