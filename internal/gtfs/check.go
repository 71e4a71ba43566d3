package gtfs

import (
	"slices"

	"gtfsvalidator/internal/notice"
)

// check accumulates the violations found while building one row, so a
// builder reports every problem at once instead of the first.
type check struct {
	file     string
	entityID string
	notices  []notice.Notice
}

func newCheck(file string, id *string) *check {
	entityID := notice.NoID
	if id != nil && *id != "" {
		entityID = *id
	}
	return &check{file: file, entityID: entityID}
}

func (c *check) add(n notice.Notice) {
	c.notices = append(c.notices, n)
}

func (c *check) missing(field string) {
	c.add(notice.MissingRequiredValue(c.file, field, c.entityID))
}

// requireValue reports field as missing when v is nil and returns its value.
func requireValue[V any](c *check, field string, v *V) V {
	var zero V
	if v == nil {
		c.missing(field)
		return zero
	}
	return *v
}

// requireText treats an empty string like an absent one.
func requireText(c *check, field string, v *string) string {
	if v == nil || *v == "" {
		c.missing(field)
		return ""
	}
	return *v
}

// optionalEnum resolves an enum column that falls back to def when absent.
func optionalEnum[E ~int](c *check, field string, v *int, def E, legal []E) E {
	if v == nil {
		return def
	}
	return enumValue(c, field, *v, def, legal)
}

// requiredEnum resolves an enum column that must be present.
func requiredEnum[E ~int](c *check, field string, v *int, legal []E) E {
	if v == nil {
		c.missing(field)
		return 0
	}
	return enumValue(c, field, *v, 0, legal)
}

func enumValue[E ~int](c *check, field string, v int, fallback E, legal []E) E {
	if !slices.Contains(legal, E(v)) {
		c.add(notice.UnexpectedEnumValue(c.file, field, c.entityID, v))
		return fallback
	}
	return E(v)
}

func (c *check) failed() bool {
	return len(c.notices) > 0
}

func text(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func copyPtr[V any](v *V) *V {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}
