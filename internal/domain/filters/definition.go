// Package filters implements the applied-filter reconciliation and
// label-resolution core shared by list-filtering UI controls.
// It maintains deduplicated, ordered applied-filter sets and computes
// display labels from a catalog of filter definitions.
package filters

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"filterbar/internal/core/apperror"
)

// Kind defines the label-resolution strategy of a filter definition.
type Kind string

const (
	KindSelect       Kind = "select"       // selectable options
	KindDateSelector Kind = "dateSelector" // single date or min/max range edges
	KindText         Kind = "text"         // free text, generic resolution
	KindNumber       Kind = "number"       // numeric value, generic resolution
	KindOther        Kind = "other"        // anything else, generic resolution
)

// Option is a selectable option of a KindSelect definition. An option is
// either plain (a bare string whose value and label coincide) or labeled
// (distinct value and display label).
type Option struct {
	value string
	label string
	plain bool
}

// PlainOption creates an option whose value doubles as its label.
func PlainOption(value string) Option {
	return Option{value: value, label: value, plain: true}
}

// LabeledOption creates an option with a distinct display label.
func LabeledOption(value, label string) Option {
	return Option{value: value, label: label}
}

// Value returns the option's match value.
func (o Option) Value() string { return o.value }

// Label returns the option's display label.
func (o Option) Label() string { return o.label }

// optionJSON is the wire shape of a labeled option.
type optionJSON struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UnmarshalJSON accepts either a bare string or a {value,label} object.
func (o *Option) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = PlainOption(s)
		return nil
	}

	var obj optionJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("option must be a string or {value,label} object: %w", err)
	}
	*o = LabeledOption(obj.Value, obj.Label)
	return nil
}

// MarshalJSON renders plain options as bare strings.
func (o Option) MarshalJSON() ([]byte, error) {
	if o.plain {
		return json.Marshal(o.value)
	}
	return json.Marshal(optionJSON{Value: o.value, Label: o.label})
}

// Definition is a catalog entry describing one filterable dimension.
type Definition struct {
	// Key identifies a simple filter.
	Key string `json:"key"`

	// Label is the static label prefix shown before the resolved value.
	Label string `json:"label"`

	// OperatorText is an optional fragment between label and value
	// (e.g. "is", "starts with").
	OperatorText string `json:"operatorText,omitempty"`

	// Kind selects the label-resolution strategy.
	Kind Kind `json:"type"`

	// Options are the selectable options for KindSelect.
	Options []Option `json:"options,omitempty"`

	// MinKey and MaxKey identify the two edges of a date range governed
	// by this single definition, distinct from Key.
	MinKey string `json:"minKey,omitempty"`
	MaxKey string `json:"maxKey,omitempty"`

	// MinValue and MaxValue are optional bounds for KindNumber values.
	MinValue *decimal.Decimal `json:"minValue,omitempty"`
	MaxValue *decimal.Decimal `json:"maxValue,omitempty"`
}

// Matches reports whether this definition governs the given applied-filter
// key. A range definition matches on Key, MinKey or MaxKey; any other
// definition matches on Key alone.
func (d Definition) Matches(key string) bool {
	if d.MinKey != "" || d.MaxKey != "" {
		return d.Key == key || d.MinKey == key || d.MaxKey == key
	}
	return d.Key == key
}

// ValidateValue checks a candidate applied-filter value against the
// definition before it is admitted to a set. The label resolver itself
// never fails on bad values; validation is a gate for write paths only.
func (d Definition) ValidateValue(value string) error {
	switch d.Kind {
	case KindSelect:
		for _, opt := range d.Options {
			if opt.Value() == value {
				return nil
			}
		}
		return apperror.NewUnknownOption(d.Key, value)

	case KindDateSelector:
		// Named values like "today" are legal alongside concrete dates,
		// and unparseable dates degrade to raw text at display time, so
		// only an empty value is rejected here.
		if value == "" {
			return apperror.NewValidation("date value must not be empty").
				WithDetail("key", d.Key)
		}
		return nil

	case KindNumber:
		n, err := decimal.NewFromString(value)
		if err != nil {
			return apperror.NewValidation("value is not a valid number").
				WithDetail("key", d.Key).
				WithDetail("value", value)
		}
		if d.MinValue != nil && n.LessThan(*d.MinValue) {
			return apperror.NewValueOutOfRange(d.Key, value, d.MinValue.String(), "min")
		}
		if d.MaxValue != nil && n.GreaterThan(*d.MaxValue) {
			return apperror.NewValueOutOfRange(d.Key, value, d.MaxValue.String(), "max")
		}
		return nil

	default:
		return nil
	}
}

// Catalog is an ordered sequence of filter definitions. Well-formedness
// (unique keys across the catalog's address space) is the caller's
// responsibility; lookups take the first match in catalog order.
type Catalog []Definition

// Find returns the first definition governing the given key. Absence is an
// expected outcome, not an error.
func (c Catalog) Find(key string) (Definition, bool) {
	for _, d := range c {
		if d.Matches(key) {
			return d, true
		}
	}
	return Definition{}, false
}
