// Package fixture loads declarative resource descriptions and turns them into
// model.ClassResult values through the builder package.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/cmmoran/restresult/pkg/builder"
	"github.com/cmmoran/restresult/pkg/model"
)

var (
	ErrNoResources   = errors.New("no resources defined")
	ErrPathConflict  = errors.New("exactly one of application_path and resource_path must be set")
	ErrMissingMethod = errors.New("http_method is required")
	ErrMissingRole   = errors.New("parameter role is required")
)

// Set is the root of a fixture file.
type Set struct {
	Resources []Resource `mapstructure:"resources"`
}

// Resource describes one resource class.
type Resource struct {
	Name            string   `mapstructure:"name"`
	ApplicationPath *string  `mapstructure:"application_path"`
	ResourcePath    *string  `mapstructure:"resource_path"`
	OriginalClass   string   `mapstructure:"original_class"`
	Deprecated      bool     `mapstructure:"deprecated"`
	Accept          []string `mapstructure:"accept"`
	Produce         []string `mapstructure:"produce"`
	Fields          []Param  `mapstructure:"fields"`
	Methods         []Method `mapstructure:"methods"`
}

// Method describes one resource method.
type Method struct {
	HTTPMethod  string   `mapstructure:"http_method"`
	Path        *string  `mapstructure:"path"`
	Accept      []string `mapstructure:"accept"`
	Produce     []string `mapstructure:"produce"`
	RequestBody string   `mapstructure:"request_body"`
	Deprecated  bool     `mapstructure:"deprecated"`
	Description string   `mapstructure:"description"`
	Parameters  []Param  `mapstructure:"parameters"`
}

// Param describes a class field or method parameter. A nil Default means no
// default value.
type Param struct {
	Role    model.ParameterType `mapstructure:"role"`
	Name    string              `mapstructure:"name"`
	Type    string              `mapstructure:"type"`
	Default *string             `mapstructure:"default"`
}

// Load reads a fixture file in any format viper understands, chosen by the
// file extension.
func Load(path string) (*Set, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	set, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	slog.Debug("loaded fixture", "file", path, "resources", len(set.Resources))
	return set, nil
}

// Parse reads a fixture from r. format is a viper config type such as
// "yaml", "json" or "toml".
func Parse(r io.Reader, format string) (*Set, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	set, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return set, nil
}

func decode(v *viper.Viper) (*Set, error) {
	var set Set
	err := v.Unmarshal(&set, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, err
	}
	if len(set.Resources) == 0 {
		return nil, ErrNoResources
	}
	return &set, nil
}

// Key names the resource: its Name, or else its path.
func (r *Resource) Key() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.ResourcePath != nil:
		return *r.ResourcePath
	case r.ApplicationPath != nil:
		return *r.ApplicationPath
	}
	return ""
}

// Build constructs the class result described by r.
func (r *Resource) Build() (*model.ClassResult, error) {
	var b *builder.ClassResultBuilder
	switch {
	case r.ApplicationPath != nil && r.ResourcePath == nil:
		b = builder.WithApplicationPath(*r.ApplicationPath)
	case r.ResourcePath != nil && r.ApplicationPath == nil:
		b = builder.WithResourcePath(*r.ResourcePath)
	default:
		return nil, fmt.Errorf("resource %q: %w", r.Key(), ErrPathConflict)
	}

	b.AndAcceptMediaTypes(r.Accept...).AndResponseMediaTypes(r.Produce...)
	if r.OriginalClass != "" {
		b.AndOriginalClass(r.OriginalClass)
	}
	if r.Deprecated {
		b.AndDeprecated()
	}
	for i, p := range r.Fields {
		if p.Role == "" {
			return nil, fmt.Errorf("resource %q field %d: %w", r.Key(), i, ErrMissingRole)
		}
		b.AndParam(p.Role, p.Name, p.Type, p.Default)
	}
	for i := range r.Methods {
		m, err := r.Methods[i].Build()
		if err != nil {
			return nil, fmt.Errorf("resource %q method %d: %w", r.Key(), i, err)
		}
		b.AndMethods(m)
	}
	return b.Build(), nil
}

// Build constructs the method result described by m.
func (m *Method) Build() (*model.MethodResult, error) {
	if m.HTTPMethod == "" {
		return nil, ErrMissingMethod
	}
	b := builder.WithMethod(m.HTTPMethod).
		AndAcceptMediaTypes(m.Accept...).
		AndResponseMediaTypes(m.Produce...)
	if m.Path != nil {
		b.AndPath(*m.Path)
	}
	if m.RequestBody != "" {
		b.AndRequestBodyType(m.RequestBody)
	}
	if m.Description != "" {
		b.AndDescription(m.Description)
	}
	if m.Deprecated {
		b.AndDeprecated()
	}
	for i, p := range m.Parameters {
		if p.Role == "" {
			return nil, fmt.Errorf("parameter %d: %w", i, ErrMissingRole)
		}
		b.AndParam(p.Role, p.Name, p.Type, p.Default)
	}
	return b.Build(), nil
}

// Build constructs every resource in declaration order.
func (s *Set) Build() ([]*model.ClassResult, error) {
	out := make([]*model.ClassResult, 0, len(s.Resources))
	for i := range s.Resources {
		c, err := s.Resources[i].Build()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
