// Package version reports build metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/toozej/promptbook/pkg/version.Version=v1.2.3"
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set via -ldflags.
var (
	Version = "local"
	Commit  = ""
	Branch  = ""
	BuiltAt = ""
	Builder = ""
)

// Info is the build metadata printed by the version command.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuiltAt   string `json:"builtAt"`
	Builder   string `json:"builder"`
	GoVersion string `json:"goVersion"`
}

// Get returns the build metadata. A binary installed with "go install" has
// no ldflags, so the module version and VCS revision from the embedded build
// info fill the gaps.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Branch:    Branch,
		BuiltAt:   BuiltAt,
		Builder:   Builder,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "local" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuiltAt == "" {
				info.BuiltAt = s.Value
			}
		}
	}
	return info
}

// Command returns the "version" subcommand, which prints Get as JSON.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Long:  `Print the version and build information.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := json.MarshalIndent(Get(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal version info: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
