package model

// ClassResult is one analyzed resource class.
//
// Collections are live: appending to them mutates the result. ApplicationPath
// and ResourcePath are independent; by convention only one of them is set.
type ClassResult struct {
	ApplicationPath    *string
	ResourcePath       *string
	Methods            []*MethodResult
	RequestMediaTypes  MediaTypes
	ResponseMediaTypes MediaTypes
	ClassFields        []*MethodParameter // declaration order
	OriginalClass      string
	Deprecated         bool
}

// NewClassResult returns an empty result with all collections initialized.
func NewClassResult() *ClassResult {
	return &ClassResult{
		Methods:            make([]*MethodResult, 0),
		RequestMediaTypes:  MediaTypes{},
		ResponseMediaTypes: MediaTypes{},
		ClassFields:        make([]*MethodParameter, 0),
	}
}

// Add appends methods to the result. The same method may be added twice.
func (c *ClassResult) Add(methods ...*MethodResult) {
	c.Methods = append(c.Methods, methods...)
}

// Equal compares two results. Methods are compared as a multiset, class
// fields in order.
func (c *ClassResult) Equal(o *ClassResult) bool {
	if c == nil || o == nil {
		return c == o
	}
	return equalOptional(c.ApplicationPath, o.ApplicationPath) &&
		equalOptional(c.ResourcePath, o.ResourcePath) &&
		c.OriginalClass == o.OriginalClass &&
		c.Deprecated == o.Deprecated &&
		c.RequestMediaTypes.Equal(o.RequestMediaTypes) &&
		c.ResponseMediaTypes.Equal(o.ResponseMediaTypes) &&
		equalParameters(c.ClassFields, o.ClassFields) &&
		equalMethodSets(c.Methods, o.Methods)
}

func equalMethodSets(a, b []*MethodResult) bool {
	if len(a) != len(b) {
		return false
	}
	matched := make([]bool, len(b))
outer:
	for _, m := range a {
		for j, n := range b {
			if !matched[j] && m.Equal(n) {
				matched[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
