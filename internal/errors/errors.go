// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind defines the category of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInternal
	KindValidation
	KindNotFound
	// KindLoad marks an OpenAPI document that is missing, malformed or incomplete.
	KindLoad
	// KindSlugCollision marks two generated pages sharing an identifier.
	KindSlugCollision
	// KindMergeConfig marks a navigation entry pointing at a page that does not exist.
	KindMergeConfig
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindLoad:
		return "load"
	case KindSlugCollision:
		return "slug_collision"
	case KindMergeConfig:
		return "merge_config"
	default:
		return "unknown"
	}
}

// Error represents a structured error raised while building the navigation.
type Error struct {
	Kind       Kind
	Message    string
	Underlying error
	Attributes map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// New creates a new Error of the specified kind.
func New(kind Kind, msg string) error {
	return &Error{
		Kind:    kind,
		Message: msg,
	}
}

// Errorf creates a new Error of the specified kind with a formatted message.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error as a new Error of the specified kind.
func Wrap(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:       kind,
		Message:    msg,
		Underlying: err,
	}
}

// Wrapf wraps an existing error as a new Error of the specified kind with a formatted message.
func Wrapf(err error, kind Kind, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		Underlying: err,
	}
}

// Attr attaches an attribute to an error. If the error is not an *Error, it wraps it as KindInternal.
func Attr(err error, key string, val any) error {
	if err == nil {
		return nil
	}

	var e *Error
	if !errors.As(err, &e) {
		e = &Error{
			Kind:       KindInternal,
			Message:    err.Error(),
			Underlying: err,
		}
	}

	if e.Attributes == nil {
		e.Attributes = make(map[string]any)
	}
	e.Attributes[key] = val
	return e
}

// LoadError reports an unusable OpenAPI document. source is the file name.
func LoadError(source, reason string) error {
	err := Errorf(KindLoad, "load %s: %s", source, reason)
	return Attr(err, "source", source)
}

// LoadErrorf is LoadError with a formatted reason.
func LoadErrorf(source, format string, args ...any) error {
	return LoadError(source, fmt.Sprintf(format, args...))
}

// SlugCollisionError reports two distinct pages whose labels produce the same
// id. The message names the tag only once when both come from the same tag.
func SlugCollisionError(id, firstTag, firstLabel, secondTag, secondLabel string) error {
	var err error
	if firstTag == secondTag {
		err = Errorf(KindSlugCollision, "tag %q: operations %q and %q both produce identifier %q",
			firstTag, firstLabel, secondLabel, id)
		err = Attr(err, "tag", firstTag)
	} else {
		err = Errorf(KindSlugCollision, "%q (tag %q) and %q (tag %q) both produce identifier %q",
			firstLabel, firstTag, secondLabel, secondTag, id)
	}
	err = Attr(err, "id", id)
	err = Attr(err, "tags", []string{firstTag, secondTag})
	return Attr(err, "labels", []string{firstLabel, secondLabel})
}

// MergeConfigError reports navigation entries referencing unknown content ids.
func MergeConfigError(sidebar string, ids []string) error {
	err := Errorf(KindMergeConfig, "sidebar %q references unknown documents: %s",
		sidebar, strings.Join(ids, ", "))
	err = Attr(err, "sidebar", sidebar)
	return Attr(err, "ids", ids)
}

// GetKind returns the Kind of the error, or KindUnknown if it's not a structured error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// GetAttributes returns all attributes associated with the error and its chain.
func GetAttributes(err error) map[string]any {
	attrs := make(map[string]any)
	var e *Error

	// The outermost value wins when a key repeats down the chain.
	tempErr := err
	for tempErr != nil {
		if errors.As(tempErr, &e) {
			for k, v := range e.Attributes {
				if _, ok := attrs[k]; !ok {
					attrs[k] = v
				}
			}
			tempErr = e.Underlying
		} else {
			break
		}
	}

	return attrs
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
