package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownParameterType = errors.New("unknown parameter type")

// ParameterType is the origin of a parameter's value.
type ParameterType string

const (
	ParameterTypeMatrix ParameterType = "MATRIX"
	ParameterTypeQuery  ParameterType = "QUERY"
	ParameterTypePath   ParameterType = "PATH"
	ParameterTypeCookie ParameterType = "COOKIE"
	ParameterTypeHeader ParameterType = "HEADER"
	ParameterTypeForm   ParameterType = "FORM"
)

// ParameterTypes returns every parameter type in declaration order.
func ParameterTypes() []ParameterType {
	return []ParameterType{
		ParameterTypeMatrix,
		ParameterTypeQuery,
		ParameterTypePath,
		ParameterTypeCookie,
		ParameterTypeHeader,
		ParameterTypeForm,
	}
}

// ParseParameterType resolves s case-insensitively.
func ParseParameterType(s string) (ParameterType, error) {
	pt := ParameterType(strings.ToUpper(strings.TrimSpace(s)))
	if !pt.Valid() {
		return "", fmt.Errorf("parse parameter type %q: %w", s, ErrUnknownParameterType)
	}
	return pt, nil
}

func (p ParameterType) Valid() bool {
	switch p {
	case ParameterTypeMatrix, ParameterTypeQuery, ParameterTypePath,
		ParameterTypeCookie, ParameterTypeHeader, ParameterTypeForm:
		return true
	}
	return false
}

func (p ParameterType) String() string { return string(p) }

func (p ParameterType) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("marshal parameter type %q: %w", string(p), ErrUnknownParameterType)
	}
	return []byte(p), nil
}

func (p *ParameterType) UnmarshalText(text []byte) error {
	pt, err := ParseParameterType(string(text))
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// MethodParameter is a named, typed input of a resource method or a
// class-level injected field.
type MethodParameter struct {
	TypeIdentifier TypeIdentifier
	ParameterType  ParameterType
	Name           string
	DefaultValue   *string // nil means no default
}

func NewMethodParameter(typeIdentifier TypeIdentifier, parameterType ParameterType) *MethodParameter {
	return &MethodParameter{
		TypeIdentifier: typeIdentifier,
		ParameterType:  parameterType,
	}
}

func (p *MethodParameter) HasDefault() bool {
	return p.DefaultValue != nil
}

func (p *MethodParameter) Equal(o *MethodParameter) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.TypeIdentifier == o.TypeIdentifier &&
		p.ParameterType == o.ParameterType &&
		p.Name == o.Name &&
		equalOptional(p.DefaultValue, o.DefaultValue)
}

func (p *MethodParameter) String() string {
	if p.DefaultValue != nil {
		return fmt.Sprintf("%s %s %s = %q", p.ParameterType, p.TypeIdentifier, p.Name, *p.DefaultValue)
	}
	return fmt.Sprintf("%s %s %s", p.ParameterType, p.TypeIdentifier, p.Name)
}

// String returns a pointer to s, for optional string fields.
func String(s string) *string {
	return &s
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalParameters(a, b []*MethodParameter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
