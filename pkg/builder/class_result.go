package builder

import (
	"log/slog"

	"github.com/cmmoran/restresult/pkg/model"
)

// ClassResultBuilder accumulates one model.ClassResult.
type ClassResultBuilder struct {
	classResult *model.ClassResult
}

// WithApplicationPath starts a result with the given application path. The
// path is kept verbatim.
func WithApplicationPath(path string) *ClassResultBuilder {
	b := &ClassResultBuilder{classResult: model.NewClassResult()}
	b.classResult.ApplicationPath = &path
	return b
}

// WithResourcePath starts a result with the given resource path. The path is
// kept verbatim.
func WithResourcePath(path string) *ClassResultBuilder {
	b := &ClassResultBuilder{classResult: model.NewClassResult()}
	b.classResult.ResourcePath = &path
	return b
}

func (b *ClassResultBuilder) result() *model.ClassResult {
	if b.classResult == nil {
		usedAfterBuild("ClassResultBuilder")
	}
	return b.classResult
}

// AndMethods adds methods in call order.
func (b *ClassResultBuilder) AndMethods(methods ...*model.MethodResult) *ClassResultBuilder {
	b.result().Add(methods...)
	return b
}

func (b *ClassResultBuilder) AndAcceptMediaTypes(mediaTypes ...string) *ClassResultBuilder {
	b.result().RequestMediaTypes.Add(mediaTypes...)
	return b
}

func (b *ClassResultBuilder) AndResponseMediaTypes(mediaTypes ...string) *ClassResultBuilder {
	b.result().ResponseMediaTypes.Add(mediaTypes...)
	return b
}

func (b *ClassResultBuilder) AndOriginalClass(name string) *ClassResultBuilder {
	b.result().OriginalClass = name
	return b
}

func (b *ClassResultBuilder) AndDeprecated() *ClassResultBuilder {
	b.result().Deprecated = true
	return b
}

func (b *ClassResultBuilder) AndMatrixParam(name, typ string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeMatrix, name, typ, nil)
}

func (b *ClassResultBuilder) AndMatrixParamWithDefault(name, typ, defaultValue string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeMatrix, name, typ, &defaultValue)
}

func (b *ClassResultBuilder) AndQueryParam(name, typ string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeQuery, name, typ, nil)
}

func (b *ClassResultBuilder) AndQueryParamWithDefault(name, typ, defaultValue string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeQuery, name, typ, &defaultValue)
}

func (b *ClassResultBuilder) AndPathParam(name, typ string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypePath, name, typ, nil)
}

func (b *ClassResultBuilder) AndPathParamWithDefault(name, typ, defaultValue string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypePath, name, typ, &defaultValue)
}

func (b *ClassResultBuilder) AndCookieParam(name, typ string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeCookie, name, typ, nil)
}

func (b *ClassResultBuilder) AndCookieParamWithDefault(name, typ, defaultValue string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeCookie, name, typ, &defaultValue)
}

func (b *ClassResultBuilder) AndHeaderParam(name, typ string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeHeader, name, typ, nil)
}

func (b *ClassResultBuilder) AndHeaderParamWithDefault(name, typ, defaultValue string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeHeader, name, typ, &defaultValue)
}

func (b *ClassResultBuilder) AndFormParam(name, typ string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeForm, name, typ, nil)
}

func (b *ClassResultBuilder) AndFormParamWithDefault(name, typ, defaultValue string) *ClassResultBuilder {
	return b.addParam(model.ParameterTypeForm, name, typ, &defaultValue)
}

// AndParam adds a class field for role, which must be one of model.ParameterTypes;
// any other role panics. A nil defaultValue means no default.
func (b *ClassResultBuilder) AndParam(role model.ParameterType, name, typ string, defaultValue *string) *ClassResultBuilder {
	return b.addParam(role, name, typ, defaultValue)
}

func (b *ClassResultBuilder) addParam(role model.ParameterType, name, typ string, defaultValue *string) *ClassResultBuilder {
	c := b.result()
	c.ClassFields = append(c.ClassFields, newParam(role, name, typ, defaultValue))
	return b
}

// Build returns the accumulated result and releases it to the caller.
func (b *ClassResultBuilder) Build() *model.ClassResult {
	c := b.result()
	b.classResult = nil
	slog.Debug("built class result",
		"methods", len(c.Methods),
		"class_fields", len(c.ClassFields),
	)
	return c
}
