package model

// MethodResult is one analyzed resource method.
type MethodResult struct {
	HTTPMethod         string
	Path               *string
	RequestMediaTypes  MediaTypes
	ResponseMediaTypes MediaTypes
	Parameters         []*MethodParameter
	RequestBodyType    *TypeIdentifier
	Deprecated         bool
	Description        string
}

func NewMethodResult() *MethodResult {
	return &MethodResult{
		RequestMediaTypes:  MediaTypes{},
		ResponseMediaTypes: MediaTypes{},
		Parameters:         make([]*MethodParameter, 0),
	}
}

func (m *MethodResult) Equal(o *MethodResult) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.HTTPMethod != o.HTTPMethod ||
		m.Deprecated != o.Deprecated ||
		m.Description != o.Description ||
		!equalOptional(m.Path, o.Path) {
		return false
	}
	if (m.RequestBodyType == nil) != (o.RequestBodyType == nil) ||
		(m.RequestBodyType != nil && *m.RequestBodyType != *o.RequestBodyType) {
		return false
	}
	return m.RequestMediaTypes.Equal(o.RequestMediaTypes) &&
		m.ResponseMediaTypes.Equal(o.ResponseMediaTypes) &&
		equalParameters(m.Parameters, o.Parameters)
}
