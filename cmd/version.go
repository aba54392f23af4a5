package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/shuffle/internal/version"
)

// shortVersion is the structured form of --short.
type shortVersion struct {
	Version string `json:"version" yaml:"version"`
}

func newVersionCommand() *cobra.Command {
	var (
		versionFormat string
		versionShort  bool
	)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version information for shuffle including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  shuffle version               # Show version details
  shuffle version --short       # Show short version
  shuffle version --format json # Output as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateFormat(versionFormat, []string{"text", "json", "yaml"}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			info := version.GetBuildInfo()

			var structured interface{} = info
			if versionShort {
				structured = shortVersion{Version: version.GetShortVersion()}
			}

			switch strings.ToLower(versionFormat) {
			case "json":
				return writeJSON(out, structured)
			case "yaml":
				return writeYAML(out, structured)
			}

			if versionShort {
				_, err := fmt.Fprintln(out, version.GetShortVersion())
				return err
			}
			_, err := fmt.Fprintln(out, info.String())
			return err
		},
	}

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json, yaml)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")

	return versionCmd
}
