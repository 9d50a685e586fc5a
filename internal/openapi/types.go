// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package openapi

import "strings"

// Method is an HTTP method that can carry an operation.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

// Methods lists the supported methods.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}

// ParseMethod maps a path-item key such as "post" to a Method.
func ParseMethod(s string) (Method, bool) {
	m := Method(strings.ToUpper(s))
	for _, known := range Methods {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// Lower returns the method in lowercase, as used in style classes.
func (m Method) Lower() string {
	return strings.ToLower(string(m))
}

// UntaggedTag groups operations that declare no tag.
const UntaggedTag = "UNTAGGED"

// Operation is one API endpoint. Values are never modified after loading.
type Operation struct {
	ID          string // slug of Label
	Method      Method
	Tag         string
	Label       string // summary, or operationId when no summary is given
	Path        string
	OperationID string
	Summary     string
	Description string
	Deprecated  bool
}

// Tag is a declared tag with its operations in document order.
type Tag struct {
	Name        string
	Description string
	Operations  []Operation
}

// Catalog is the tag to operations mapping of one OpenAPI document.
// Tags keep the order of first appearance in the document.
type Catalog struct {
	Source  string
	Title   string
	Version string
	Tags    []Tag
}

// Lookup returns the tag called name.
func (c *Catalog) Lookup(name string) (Tag, bool) {
	for _, t := range c.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// TagNames returns tag names in catalog order.
func (c *Catalog) TagNames() []string {
	names := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		names[i] = t.Name
	}
	return names
}

// OperationCount returns the number of listed operations, counting an
// operation once per tag it appears under.
func (c *Catalog) OperationCount() int {
	n := 0
	for _, t := range c.Tags {
		n += len(t.Operations)
	}
	return n
}
