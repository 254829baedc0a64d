package models

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError indicates a referenced entity does not exist in its
// collection. Handlers map it to 404.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Collection, e.ID)
}

// NewProductNotFound reports a missing catalog product.
func NewProductNotFound(id string) *NotFoundError {
	return &NotFoundError{Collection: CollectionProduct, ID: id}
}

// ValidationError carries every violated field constraint of a request,
// not just the first one. Handlers map it to 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on: %s", strings.Join(fields, ", "))
}
