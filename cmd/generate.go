package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/restresult/pkg/action/generate"
	"github.com/cmmoran/restresult/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	// generateCmd represents the restresult generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate expected results",
		Long:  "Generate Go functions that rebuild the resources of a fixture file through builder chains",
		PreRunE: func(c *cobra.Command, args []string) error {
			return bindGeneratorFlags(c)
		},
		RunE: func(c *cobra.Command, args []string) error {
			out, n, err := generate.Generate(generatorOptions())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "wrote %d resource(s) to %s\n", n, out)
			return nil
		},
	}
	addGeneratorFlags(generateCmd)

	return generateCmd
}

// generatorFlags maps flag names to their config keys under "generate".
var generatorFlags = map[string]string{
	"input-file":          "in_file",
	"output-directory":    "out_dir",
	"output-file":         "out_file",
	"package":             "package_name",
	"prefix":              "func_prefix",
	"suffix":              "func_suffix",
	"model-import-path":   "model_import_path",
	"builder-import-path": "builder_import_path",
}

func addGeneratorFlags(c *cobra.Command) {
	d := generator.NewOptions()
	c.Flags().StringP("input-file", "i", d.InFile, "fixture file describing the resources")
	c.Flags().StringP("output-directory", "o", d.OutDir, "directory to write generated code")
	c.Flags().StringP("output-file", "f", d.OutFile, "output file where functions will be written")
	c.Flags().StringP("package", "p", "", "package name of the generated file (defaults to the output directory name)")
	c.Flags().String("prefix", d.FuncPrefix, "prefix of generated function names")
	c.Flags().StringP("suffix", "s", d.FuncSuffix, "suffix of generated function names")
	c.Flags().String("model-import-path", d.ModelImportPath, "import path of the model package")
	c.Flags().String("builder-import-path", d.BuilderImportPath, "import path of the builder package")
}

// bindGeneratorFlags binds the flags of the running command only, so several
// commands can share the same keys.
func bindGeneratorFlags(c *cobra.Command) error {
	for flag, key := range generatorFlags {
		if err := viper.BindPFlag("generate."+key, c.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// generatorOptions resolves each option from flags, env and config.
func generatorOptions() *generator.Options {
	return &generator.Options{
		InFile:            viper.GetString("generate.in_file"),
		OutDir:            viper.GetString("generate.out_dir"),
		OutFile:           viper.GetString("generate.out_file"),
		PackageName:       viper.GetString("generate.package_name"),
		FuncPrefix:        viper.GetString("generate.func_prefix"),
		FuncSuffix:        viper.GetString("generate.func_suffix"),
		ModelImportPath:   viper.GetString("generate.model_import_path"),
		BuilderImportPath: viper.GetString("generate.builder_import_path"),
	}
}
