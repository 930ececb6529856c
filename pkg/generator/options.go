package generator

import (
	"path/filepath"
	"strings"
)

const (
	DefaultModelImportPath   = "github.com/cmmoran/restresult/pkg/model"
	DefaultBuilderImportPath = "github.com/cmmoran/restresult/pkg/builder"
)

// Options control generation of expected-result source files.
//
// InFile            – fixture file describing the resources
// OutDir            – output directory
// OutFile           – output filename
// PackageName       – package clause of the generated file
// FuncPrefix        – prepended to every generated function name
// FuncSuffix        – appended to every generated function name
// ModelImportPath   – import path of the model package
// BuilderImportPath – import path of the builder package
type Options struct {
	InFile            string `json:"in_file,omitempty" yaml:"in_file,omitempty" toml:"in_file,omitempty" mapstructure:"in_file,omitempty"`
	OutDir            string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile           string `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	PackageName       string `json:"package_name,omitempty" yaml:"package_name,omitempty" toml:"package_name,omitempty" mapstructure:"package_name,omitempty"`
	FuncPrefix        string `json:"func_prefix,omitempty" yaml:"func_prefix,omitempty" toml:"func_prefix,omitempty" mapstructure:"func_prefix,omitempty"`
	FuncSuffix        string `json:"func_suffix,omitempty" yaml:"func_suffix,omitempty" toml:"func_suffix,omitempty" mapstructure:"func_suffix,omitempty"`
	ModelImportPath   string `json:"model_import_path,omitempty" yaml:"model_import_path,omitempty" toml:"model_import_path,omitempty" mapstructure:"model_import_path,omitempty"`
	BuilderImportPath string `json:"builder_import_path,omitempty" yaml:"builder_import_path,omitempty" toml:"builder_import_path,omitempty" mapstructure:"builder_import_path,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		InFile:            "resources.yaml",
		OutDir:            "expected",
		OutFile:           "expected_gen.go",
		PackageName:       "expected",
		FuncPrefix:        "Expected",
		FuncSuffix:        "Resource",
		ModelImportPath:   DefaultModelImportPath,
		BuilderImportPath: DefaultBuilderImportPath,
	}
}

// Normalize fills unset fields with defaults and resolves relative paths.
func (o *Options) Normalize() {
	d := NewOptions()
	if len(o.InFile) == 0 {
		o.InFile = d.InFile
	}
	if len(o.OutDir) == 0 {
		o.OutDir = d.OutDir
	}
	if strings.Contains(o.OutDir, ".") {
		o.OutDir, _ = filepath.Abs(o.OutDir)
	}
	if len(o.OutFile) == 0 {
		o.OutFile = d.OutFile
	}
	if !strings.HasSuffix(o.OutFile, ".go") {
		o.OutFile += ".go"
	}
	if len(o.PackageName) == 0 {
		o.PackageName = filepath.Base(o.OutDir)
	}
	if len(o.ModelImportPath) == 0 {
		o.ModelImportPath = d.ModelImportPath
	}
	if len(o.BuilderImportPath) == 0 {
		o.BuilderImportPath = d.BuilderImportPath
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInFile(f string) Option      { return func(o *Options) { o.InFile = f } }
func WithOutDir(d string) Option      { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option     { return func(o *Options) { o.OutFile = f } }
func WithPackageName(n string) Option { return func(o *Options) { o.PackageName = n } }
func WithFuncPrefix(p string) Option  { return func(o *Options) { o.FuncPrefix = p } }
func WithFuncSuffix(s string) Option  { return func(o *Options) { o.FuncSuffix = s } }
func WithModelImportPath(p string) Option {
	return func(o *Options) { o.ModelImportPath = strings.TrimSpace(p) }
}
func WithBuilderImportPath(p string) Option {
	return func(o *Options) { o.BuilderImportPath = strings.TrimSpace(p) }
}
