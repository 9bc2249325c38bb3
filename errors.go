package hxel

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for element operations.
var (
	ErrInvalidChildren   = errors.New("hxel: invalid children")
	ErrInvalidAttributes = errors.New("hxel: invalid attributes")
	ErrUnknownElement    = errors.New("hxel: unknown element")
	ErrAmbiguousElement  = errors.New("hxel: ambiguous element")
	ErrNestedTag         = errors.New("hxel: nested tags are not supported")
	ErrRenderLoop        = errors.New("hxel: render did not reach a fixpoint")
)

// InvalidChildrenError reports children a kind does not accept.
type InvalidChildrenError struct {
	Kind   string
	Reason string
}

func (e *InvalidChildrenError) Error() string {
	return fmt.Sprintf("hxel: invalid children for %s: %s", e.Kind, e.Reason)
}

func (e *InvalidChildrenError) Unwrap() error { return ErrInvalidChildren }

// InvalidAttributesError reports attributes outside a kind's schema or
// values that fail their rule.
type InvalidAttributesError struct {
	Kind     string
	Problems []string
}

func (e *InvalidAttributesError) Error() string {
	return fmt.Sprintf("hxel: invalid attributes for %s: %s", e.Kind, strings.Join(e.Problems, "; "))
}

func (e *InvalidAttributesError) Unwrap() error { return ErrInvalidAttributes }

// UnknownElementError names a tag with no registered kind.
type UnknownElementError struct {
	Name string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("hxel: unknown element %q", e.Name)
}

func (e *UnknownElementError) Unwrap() error { return ErrUnknownElement }

// NestedTagError is returned by the markup parser when a tag is opened
// while another is still open. The parser only handles a single level of
// tags; build nested trees with constructors instead.
type NestedTagError struct {
	Outer string
	Inner string
}

func (e *NestedTagError) Error() string {
	return fmt.Sprintf("hxel: tag <%s> opened inside <%s>: nested tags are not supported", e.Inner, e.Outer)
}

func (e *NestedTagError) Unwrap() error { return ErrNestedTag }

// IsUnknownElement checks if err is an unknown element error.
func IsUnknownElement(err error) bool {
	return errors.Is(err, ErrUnknownElement)
}

// IsNestedTag checks if err is a nested tag error.
func IsNestedTag(err error) bool {
	return errors.Is(err, ErrNestedTag)
}

// IsInvalid checks if err is a children or attribute validation error.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidChildren) || errors.Is(err, ErrInvalidAttributes)
}
