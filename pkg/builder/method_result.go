package builder

import "github.com/cmmoran/restresult/pkg/model"

// MethodResultBuilder accumulates one model.MethodResult.
type MethodResultBuilder struct {
	methodResult *model.MethodResult
}

// WithMethod starts a method result for the given HTTP method.
func WithMethod(httpMethod string) *MethodResultBuilder {
	m := model.NewMethodResult()
	m.HTTPMethod = httpMethod
	return &MethodResultBuilder{methodResult: m}
}

func (b *MethodResultBuilder) result() *model.MethodResult {
	if b.methodResult == nil {
		usedAfterBuild("MethodResultBuilder")
	}
	return b.methodResult
}

func (b *MethodResultBuilder) AndPath(path string) *MethodResultBuilder {
	b.result().Path = &path
	return b
}

func (b *MethodResultBuilder) AndAcceptMediaTypes(mediaTypes ...string) *MethodResultBuilder {
	b.result().RequestMediaTypes.Add(mediaTypes...)
	return b
}

func (b *MethodResultBuilder) AndResponseMediaTypes(mediaTypes ...string) *MethodResultBuilder {
	b.result().ResponseMediaTypes.Add(mediaTypes...)
	return b
}

func (b *MethodResultBuilder) AndRequestBodyType(typ string) *MethodResultBuilder {
	id := model.OfType(typ)
	b.result().RequestBodyType = &id
	return b
}

func (b *MethodResultBuilder) AndDeprecated() *MethodResultBuilder {
	b.result().Deprecated = true
	return b
}

func (b *MethodResultBuilder) AndDescription(description string) *MethodResultBuilder {
	b.result().Description = description
	return b
}

func (b *MethodResultBuilder) AndMatrixParam(name, typ string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeMatrix, name, typ, nil)
}

func (b *MethodResultBuilder) AndMatrixParamWithDefault(name, typ, defaultValue string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeMatrix, name, typ, &defaultValue)
}

func (b *MethodResultBuilder) AndQueryParam(name, typ string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeQuery, name, typ, nil)
}

func (b *MethodResultBuilder) AndQueryParamWithDefault(name, typ, defaultValue string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeQuery, name, typ, &defaultValue)
}

func (b *MethodResultBuilder) AndPathParam(name, typ string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypePath, name, typ, nil)
}

func (b *MethodResultBuilder) AndPathParamWithDefault(name, typ, defaultValue string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypePath, name, typ, &defaultValue)
}

func (b *MethodResultBuilder) AndCookieParam(name, typ string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeCookie, name, typ, nil)
}

func (b *MethodResultBuilder) AndCookieParamWithDefault(name, typ, defaultValue string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeCookie, name, typ, &defaultValue)
}

func (b *MethodResultBuilder) AndHeaderParam(name, typ string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeHeader, name, typ, nil)
}

func (b *MethodResultBuilder) AndHeaderParamWithDefault(name, typ, defaultValue string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeHeader, name, typ, &defaultValue)
}

func (b *MethodResultBuilder) AndFormParam(name, typ string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeForm, name, typ, nil)
}

func (b *MethodResultBuilder) AndFormParamWithDefault(name, typ, defaultValue string) *MethodResultBuilder {
	return b.addParam(model.ParameterTypeForm, name, typ, &defaultValue)
}

// AndParam adds a parameter for role, which must be one of model.ParameterTypes;
// any other role panics. A nil defaultValue means no default.
func (b *MethodResultBuilder) AndParam(role model.ParameterType, name, typ string, defaultValue *string) *MethodResultBuilder {
	return b.addParam(role, name, typ, defaultValue)
}

func (b *MethodResultBuilder) addParam(role model.ParameterType, name, typ string, defaultValue *string) *MethodResultBuilder {
	m := b.result()
	m.Parameters = append(m.Parameters, newParam(role, name, typ, defaultValue))
	return b
}

func (b *MethodResultBuilder) Build() *model.MethodResult {
	m := b.result()
	b.methodResult = nil
	return m
}
