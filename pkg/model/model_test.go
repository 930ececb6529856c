package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfType(t *testing.T) {
	assert.Equal(t, OfType("int"), OfType("int"))
	assert.True(t, OfType(JavaString) == OfType("Ljava/lang/String;"))
	assert.NotEqual(t, OfType("int"), OfType("long"))

	id := OfType(JavaString)
	assert.Equal(t, JavaString, id.Type())
	assert.Equal(t, JavaString, id.Name())
	assert.False(t, id.IsDynamic())
	assert.Equal(t, JavaString, id.String())
}

func TestOfDynamic(t *testing.T) {
	a, b := OfDynamic(), OfDynamic()
	assert.True(t, a.IsDynamic())
	assert.Equal(t, JavaObject, a.Type())
	assert.Equal(t, a.Type(), b.Type())
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, OfType(JavaObject), a)
	assert.Contains(t, a.String(), "$")
}

func TestParseParameterType(t *testing.T) {
	tests := []struct {
		in      string
		want    ParameterType
		wantErr bool
	}{
		{in: "query", want: ParameterTypeQuery},
		{in: "PATH", want: ParameterTypePath},
		{in: " Matrix ", want: ParameterTypeMatrix},
		{in: "cookie", want: ParameterTypeCookie},
		{in: "header", want: ParameterTypeHeader},
		{in: "form", want: ParameterTypeForm},
		{in: "body", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseParameterType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownParameterType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParameterTypeText(t *testing.T) {
	for _, pt := range ParameterTypes() {
		text, err := pt.MarshalText()
		require.NoError(t, err)

		var back ParameterType
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, pt, back)
	}

	_, err := ParameterType("BODY").MarshalText()
	assert.ErrorIs(t, err, ErrUnknownParameterType)
	assert.Len(t, ParameterTypes(), 6)
}

func TestMethodParameter(t *testing.T) {
	p := NewMethodParameter(OfType(PrimitiveInt), ParameterTypeQuery)
	assert.Equal(t, OfType(PrimitiveInt), p.TypeIdentifier)
	assert.Equal(t, ParameterTypeQuery, p.ParameterType)
	assert.Empty(t, p.Name)
	assert.False(t, p.HasDefault())

	p.Name = "limit"
	q := NewMethodParameter(OfType(PrimitiveInt), ParameterTypeQuery)
	q.Name = "limit"
	assert.True(t, p.Equal(q))

	q.DefaultValue = String("")
	assert.True(t, q.HasDefault())
	assert.False(t, p.Equal(q), "empty default differs from no default")

	p.DefaultValue = String("")
	assert.True(t, p.Equal(q))
	assert.Equal(t, `QUERY I limit = ""`, p.String())
}

func TestMediaTypes(t *testing.T) {
	var m MediaTypes
	assert.Equal(t, 0, m.Len())

	m.Add("application/json", "text/plain", "application/json")
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"application/json", "text/plain"}, m.Values())
	assert.True(t, m.Contains("text/plain"))

	var o MediaTypes
	o.Add("text/plain", "application/json")
	assert.True(t, m.Equal(o))

	o.Add("application/xml")
	assert.False(t, m.Equal(o))

	values := m.Values()
	values[0] = "changed"
	assert.True(t, m.Contains("application/json"))
}

func TestNewClassResult(t *testing.T) {
	c := NewClassResult()
	assert.NotNil(t, c.Methods)
	assert.NotNil(t, c.RequestMediaTypes)
	assert.NotNil(t, c.ResponseMediaTypes)
	assert.NotNil(t, c.ClassFields)
	assert.Nil(t, c.ApplicationPath)
	assert.Nil(t, c.ResourcePath)
}

func TestClassResultEqual(t *testing.T) {
	get := NewMethodResult()
	get.HTTPMethod = "GET"
	post := NewMethodResult()
	post.HTTPMethod = "POST"
	post.RequestBodyType = &TypeIdentifier{typ: JavaString, name: JavaString}

	field := NewMethodParameter(OfType(JavaString), ParameterTypeHeader)
	field.Name = "X-Tenant"

	a := NewClassResult()
	a.ResourcePath = String("users")
	a.Add(get, post)
	a.RequestMediaTypes.Add("application/json")
	a.ClassFields = append(a.ClassFields, field)

	b := NewClassResult()
	b.ResourcePath = String("users")
	b.Add(post, get)
	b.RequestMediaTypes.Add("application/json")
	b.ClassFields = append(b.ClassFields, field)

	assert.True(t, a.Equal(b), "method order is not significant")
	assert.Empty(t, cmp.Diff(a, b))

	b.Add(get)
	assert.False(t, a.Equal(b))

	c := NewClassResult()
	c.ApplicationPath = String("users")
	assert.False(t, c.Equal(NewClassResult()))
	assert.False(t, c.Equal(nil))
	assert.True(t, (*ClassResult)(nil).Equal(nil))
}

func TestClassFieldOrderIsSignificant(t *testing.T) {
	p := NewMethodParameter(OfType(PrimitiveLong), ParameterTypePath)
	q := NewMethodParameter(OfType(JavaString), ParameterTypeQuery)

	a := NewClassResult()
	a.ClassFields = append(a.ClassFields, p, q)
	b := NewClassResult()
	b.ClassFields = append(b.ClassFields, q, p)

	assert.False(t, a.Equal(b))
}

func TestMethodResultEqual(t *testing.T) {
	a := NewMethodResult()
	a.HTTPMethod = "GET"
	a.Path = String("{id}")
	body := OfType(JavaString)
	a.RequestBodyType = &body

	b := NewMethodResult()
	b.HTTPMethod = "GET"
	b.Path = String("{id}")
	assert.False(t, a.Equal(b))

	other := OfType(JavaString)
	b.RequestBodyType = &other
	assert.True(t, a.Equal(b))

	b.ResponseMediaTypes.Add("application/json")
	assert.False(t, a.Equal(b))
}
