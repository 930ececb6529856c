// Package generator emits Go source that rebuilds model.ClassResult values
// through builder chains, for use as expected results in tests.
package generator

import (
	"errors"
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"
	"golang.org/x/mod/module"

	"github.com/cmmoran/restresult/internal/naming"
	"github.com/cmmoran/restresult/pkg/model"
)

var (
	ErrInvalidImportPath  = errors.New("invalid import path")
	ErrInvalidPackageName = errors.New("invalid package name")
)

// Resource is a named class result to emit.
type Resource struct {
	Name   string
	Result *model.ClassResult
}

type Generator struct {
	Opts Options
}

// New creates a generator from the default options with opts applied.
func New(opts ...Option) (*Generator, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) (*Generator, error) {
	opts.Normalize()

	for _, p := range []string{opts.ModelImportPath, opts.BuilderImportPath} {
		if err := module.CheckImportPath(p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidImportPath, err)
		}
	}
	if !token.IsIdentifier(opts.PackageName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackageName, opts.PackageName)
	}

	return &Generator{Opts: *opts}, nil
}

// File builds the generated file, one function per resource. Dynamic type
// identifiers are emitted by their type signature only.
func (g *Generator) File(resources []Resource) (*jen.File, error) {
	f := jen.NewFile(g.Opts.PackageName)
	f.HeaderComment("Code generated by restresult. DO NOT EDIT.")
	f.ImportName(g.Opts.ModelImportPath, "model")
	f.ImportName(g.Opts.BuilderImportPath, "builder")

	names := naming.NewRegistry()
	for _, r := range resources {
		if r.Result == nil {
			continue
		}
		body, err := g.classChain(r.Result)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", r.Name, err)
		}
		fn := names.Unique(g.Opts.FuncPrefix + naming.Identifier(r.Name) + g.Opts.FuncSuffix)
		f.Commentf("%s rebuilds resource %q.", fn, r.Name)
		f.Func().Id(fn).Params().Op("*").Qual(g.Opts.ModelImportPath, "ClassResult").Block(
			jen.Return(body),
		)
	}
	return f, nil
}

// Render writes the generated file for resources to w.
func (g *Generator) Render(w io.Writer, resources []Resource) error {
	f, err := g.File(resources)
	if err != nil {
		return fmt.Errorf("generate file: %w", err)
	}
	if err := f.Render(w); err != nil {
		return fmt.Errorf("render generated file: %w", err)
	}
	return nil
}

func (g *Generator) classChain(c *model.ClassResult) (*jen.Statement, error) {
	var (
		s *jen.Statement
		// resource path assignment applied to the built value, for path
		// combinations no entry point produces
		fixup jen.Code
	)
	switch {
	case c.ApplicationPath != nil:
		s = jen.Qual(g.Opts.BuilderImportPath, "WithApplicationPath").Call(jen.Lit(*c.ApplicationPath))
		if c.ResourcePath != nil {
			fixup = jen.Qual(g.Opts.ModelImportPath, "String").Call(jen.Lit(*c.ResourcePath))
		}
	case c.ResourcePath != nil:
		s = jen.Qual(g.Opts.BuilderImportPath, "WithResourcePath").Call(jen.Lit(*c.ResourcePath))
	default:
		s = jen.Qual(g.Opts.BuilderImportPath, "WithResourcePath").Call(jen.Lit(""))
		fixup = jen.Nil()
	}

	if c.OriginalClass != "" {
		s = chain(s, "AndOriginalClass", jen.Lit(c.OriginalClass))
	}
	if c.Deprecated {
		s = chain(s, "AndDeprecated")
	}
	if c.RequestMediaTypes.Len() > 0 {
		s = chain(s, "AndAcceptMediaTypes", lits(c.RequestMediaTypes)...)
	}
	if c.ResponseMediaTypes.Len() > 0 {
		s = chain(s, "AndResponseMediaTypes", lits(c.ResponseMediaTypes)...)
	}
	for i, p := range c.ClassFields {
		var err error
		if s, err = g.paramChain(s, p); err != nil {
			return nil, fmt.Errorf("class field %d: %w", i, err)
		}
	}
	if len(c.Methods) > 0 {
		methods := make([]jen.Code, 0, len(c.Methods))
		for i, m := range c.Methods {
			ms, err := g.methodChain(m)
			if err != nil {
				return nil, fmt.Errorf("method %d: %w", i, err)
			}
			methods = append(methods, ms)
		}
		s = s.Op(".").Line().Id("AndMethods").Custom(jen.Options{
			Open:      "(",
			Close:     ")",
			Separator: ",",
			Multi:     true,
		}, methods...)
	}
	s = chain(s, "Build")

	if fixup == nil {
		return s, nil
	}
	return jen.Func().Params().Op("*").Qual(g.Opts.ModelImportPath, "ClassResult").Block(
		jen.Id("c").Op(":=").Add(s),
		jen.Id("c").Dot("ResourcePath").Op("=").Add(fixup),
		jen.Return(jen.Id("c")),
	).Call(), nil
}

func (g *Generator) methodChain(m *model.MethodResult) (*jen.Statement, error) {
	s := jen.Qual(g.Opts.BuilderImportPath, "WithMethod").Call(jen.Lit(m.HTTPMethod))
	if m.Path != nil {
		s = chain(s, "AndPath", jen.Lit(*m.Path))
	}
	if m.RequestMediaTypes.Len() > 0 {
		s = chain(s, "AndAcceptMediaTypes", lits(m.RequestMediaTypes)...)
	}
	if m.ResponseMediaTypes.Len() > 0 {
		s = chain(s, "AndResponseMediaTypes", lits(m.ResponseMediaTypes)...)
	}
	if m.RequestBodyType != nil {
		s = chain(s, "AndRequestBodyType", jen.Lit(m.RequestBodyType.Type()))
	}
	if m.Description != "" {
		s = chain(s, "AndDescription", jen.Lit(m.Description))
	}
	if m.Deprecated {
		s = chain(s, "AndDeprecated")
	}
	for i, p := range m.Parameters {
		var err error
		if s, err = g.paramChain(s, p); err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
	}
	return chain(s, "Build"), nil
}

var roleNames = map[model.ParameterType]string{
	model.ParameterTypeMatrix: "Matrix",
	model.ParameterTypeQuery:  "Query",
	model.ParameterTypePath:   "Path",
	model.ParameterTypeCookie: "Cookie",
	model.ParameterTypeHeader: "Header",
	model.ParameterTypeForm:   "Form",
}

func (g *Generator) paramChain(s *jen.Statement, p *model.MethodParameter) (*jen.Statement, error) {
	role, ok := roleNames[p.ParameterType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownParameterType, string(p.ParameterType))
	}
	method := "And" + role + "Param"
	args := []jen.Code{jen.Lit(p.Name), jen.Lit(p.TypeIdentifier.Type())}
	if p.DefaultValue != nil {
		method += "WithDefault"
		args = append(args, jen.Lit(*p.DefaultValue))
	}
	return chain(s, method, args...), nil
}

// chain appends ".<method>(args...)" on a new line.
func chain(s *jen.Statement, method string, args ...jen.Code) *jen.Statement {
	return s.Op(".").Line().Id(method).Call(args...)
}

func lits(values model.MediaTypes) []jen.Code {
	out := make([]jen.Code, 0, values.Len())
	for _, v := range values {
		out = append(out, jen.Lit(v))
	}
	return out
}
