// Package builder assembles model.ClassResult and model.MethodResult values
// through fluent, single-use builders.
//
//	res := builder.WithResourcePath("users").
//		AndAcceptMediaTypes("application/json").
//		AndQueryParamWithDefault("limit", model.PrimitiveInt, "20").
//		AndMethods(builder.WithMethod("GET").AndResponseMediaTypes("application/json").Build()).
//		Build()
//
// Build hands the result over to the caller. A builder must not be used
// after Build; doing so panics.
package builder
