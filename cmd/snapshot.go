package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cmmoran/restresult/pkg/action/snapshot"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var manifestPath string

	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "manage expected-result snapshots",
	}
	snapshotCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "restresult.manifest.yaml", "snapshot manifest file")

	snapshotCmd.AddCommand(
		newSnapshotCreateCommand(&manifestPath),
		newSnapshotListCommand(&manifestPath),
		newSnapshotDiffCommand(&manifestPath),
	)
	return snapshotCmd
}

func newSnapshotCreateCommand(manifestPath *string) *cobra.Command {
	var name, version string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "generate expected results into a versioned snapshot",
		PreRunE: func(c *cobra.Command, args []string) error {
			return bindGeneratorFlags(c)
		},
		RunE: func(c *cobra.Command, args []string) error {
			out, err := snapshot.Create(generatorOptions(), *manifestPath, name, version)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "snapshot %s %s written to %s\n", name, version, out)
			return nil
		},
	}
	addGeneratorFlags(createCmd)
	createCmd.Flags().StringVarP(&name, "name", "n", "api", "snapshot name")
	createCmd.Flags().StringVarP(&version, "version", "v", "", "snapshot version")
	_ = createCmd.MarkFlagRequired("version")

	return createCmd
}

func newSnapshotListCommand(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		RunE: func(c *cobra.Command, args []string) error {
			m, err := snapshot.List(*manifestPath)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tRESOURCES\tFILE\t")
			for _, s := range m.Snapshots {
				marker := ""
				if role := m.Role(s.Version); role != "" {
					marker = " (" + role + ")"
				}
				fmt.Fprintf(w, "%s\t%s%s\t%d\t%s\t\n", s.Name, s.Version, marker, s.Resources, s.File)
			}
			return w.Flush()
		},
	}
}

func newSnapshotDiffCommand(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		RunE: func(c *cobra.Command, args []string) error {
			diff, err := snapshot.DiffCurrentWithPrevious(*manifestPath)
			if err != nil {
				return err
			}
			if diff == "" {
				fmt.Fprintln(c.OutOrStdout(), "no changes")
				return nil
			}
			printDiff(c.OutOrStdout(), diff)
			return nil
		},
	}
}

var (
	added   = color.New(color.FgGreen)
	removed = color.New(color.FgRed)
)

func printDiff(w io.Writer, diff string) {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "+"):
			_, _ = added.Fprintln(w, line)
		case strings.HasPrefix(trimmed, "-"):
			_, _ = removed.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}
