package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/restresult/pkg/builder"
	"github.com/cmmoran/restresult/pkg/model"
)

const usersYAML = `
resources:
  - name: users
    resource_path: users
    original_class: com.example.UsersResource
    accept: [application/json, application/json]
    produce: [application/json]
    fields:
      - role: query
        name: q
        type: Ljava/lang/String;
        default: "5"
      - role: HEADER
        name: X-Tenant
        type: Ljava/lang/String;
    methods:
      - http_method: GET
        path: "{id}"
        produce: [application/json]
        parameters:
          - role: path
            name: id
            type: J
      - http_method: POST
        accept: [application/json]
        request_body: Lcom/example/User;
        deprecated: true
  - application_path: rest
`

func TestParseYAML(t *testing.T) {
	set, err := Parse(strings.NewReader(usersYAML), "yaml")
	require.NoError(t, err)
	require.Len(t, set.Resources, 2)
	assert.Equal(t, "users", set.Resources[0].Key())
	assert.Equal(t, "rest", set.Resources[1].Key())

	results, err := set.Build()
	require.NoError(t, err)
	require.Len(t, results, 2)

	want := builder.WithResourcePath("users").
		AndOriginalClass("com.example.UsersResource").
		AndAcceptMediaTypes("application/json").
		AndResponseMediaTypes("application/json").
		AndQueryParamWithDefault("q", model.JavaString, "5").
		AndHeaderParam("X-Tenant", model.JavaString).
		AndMethods(
			builder.WithMethod("POST").
				AndAcceptMediaTypes("application/json").
				AndRequestBodyType("Lcom/example/User;").
				AndDeprecated().
				Build(),
			builder.WithMethod("GET").
				AndPath("{id}").
				AndResponseMediaTypes("application/json").
				AndPathParam("id", model.PrimitiveLong).
				Build(),
		).
		Build()

	if diff := cmp.Diff(want, results[0]); diff != "" {
		t.Errorf("users mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, builder.WithApplicationPath("rest").Build().Equal(results[1]))
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resources.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "resources": [
    {"resource_path": "items", "fields": [{"role": "cookie", "name": "sid", "type": "I", "default": ""}]}
  ]
}`), 0o644))

	set, err := Load(path)
	require.NoError(t, err)

	results, err := set.Build()
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].ClassFields, 1)

	f := results[0].ClassFields[0]
	assert.Equal(t, model.ParameterTypeCookie, f.ParameterType)
	require.NotNil(t, f.DefaultValue)
	assert.Empty(t, *f.DefaultValue)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read fixture")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{
			name:    "no resources",
			in:      "resources: []\n",
			wantErr: ErrNoResources,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in), "yaml")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseUnknownRole(t *testing.T) {
	in := "resources:\n  - resource_path: a\n    fields:\n      - {role: body, name: b, type: I}\n"
	_, err := Parse(strings.NewReader(in), "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), model.ErrUnknownParameterType.Error())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{
			name:    "both paths",
			in:      "resources:\n  - {application_path: a, resource_path: b}\n",
			wantErr: ErrPathConflict,
		},
		{
			name:    "no path",
			in:      "resources:\n  - {name: nothing}\n",
			wantErr: ErrPathConflict,
		},
		{
			name:    "missing http method",
			in:      "resources:\n  - resource_path: a\n    methods:\n      - {path: x}\n",
			wantErr: ErrMissingMethod,
		},
		{
			name:    "missing field role",
			in:      "resources:\n  - resource_path: a\n    fields:\n      - {name: x, type: I}\n",
			wantErr: ErrMissingRole,
		},
		{
			name:    "missing parameter role",
			in:      "resources:\n  - resource_path: a\n    methods:\n      - http_method: GET\n        parameters:\n          - {name: x, type: I}\n",
			wantErr: ErrMissingRole,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(strings.NewReader(tt.in), "yaml")
			require.NoError(t, err)
			_, err = set.Build()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
