// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"filterbar/internal/domain/filters"
)

// AppliedFilter is the wire shape of one applied filter.
type AppliedFilter struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Domain converts to the domain type.
func (f AppliedFilter) Domain() filters.Applied {
	return filters.Applied{Key: f.Key, Value: f.Value, Label: f.Label}
}

// ToSet converts a wire collection to a domain set without touching order
// or duplicates; reconciliation happens in the domain operations.
func ToSet(fs []AppliedFilter) filters.Set {
	set := make(filters.Set, len(fs))
	for i, f := range fs {
		set[i] = f.Domain()
	}
	return set
}

// ResolvedFilter is an applied filter together with its computed identity
// and display label.
type ResolvedFilter struct {
	Key          string `json:"key"`
	Value        string `json:"value"`
	Label        string `json:"label,omitempty"`
	ID           string `json:"id"`
	DisplayLabel string `json:"displayLabel"`
}

// Resolve labels every entry of a set in display order.
func Resolve(set filters.Set, cat filters.Catalog, r *filters.Resolver) []ResolvedFilter {
	out := make([]ResolvedFilter, len(set))
	for i, f := range set {
		out[i] = ResolvedFilter{
			Key:          f.Key,
			Value:        f.Value,
			Label:        f.Label,
			ID:           f.ID(),
			DisplayLabel: r.Label(f, cat),
		}
	}
	return out
}

// AddFilterRequest asks to reconcile a candidate filter into the current set.
type AddFilterRequest struct {
	Current []AppliedFilter `json:"current"`
	Filter  AppliedFilter   `json:"filter" binding:"required"`
}

// RemoveFilterRequest asks to remove a filter by composite id.
type RemoveFilterRequest struct {
	Current []AppliedFilter `json:"current"`
	ID      string          `json:"id" binding:"required"`
}

// LabelsRequest asks for display labels of a set.
type LabelsRequest struct {
	Filters []AppliedFilter `json:"filters"`
}

// FilterSetResponse returns the next set with resolved labels.
type FilterSetResponse struct {
	Resource string           `json:"resource"`
	Locale   string           `json:"locale"`
	Filters  []ResolvedFilter `json:"filters"`
}
