package commands

import (
	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/spf13/cobra"
)

// VersionInfo describes the CLI build.
type VersionInfo struct {
	Version       string `json:"version"        yaml:"version"`
	Commit        string `json:"commit"         yaml:"commit"`
	Built         string `json:"built"          yaml:"built"`
	ClientVersion string `json:"client_version" yaml:"client_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the congress CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := VersionInfo{
				Version:       version,
				Commit:        commit,
				Built:         date,
				ClientVersion: constants.Version,
			}

			return renderOutput(versionInfo, func() error {
				return renderTable([]string{"Property", "Value"}, [][]string{
					{"Version", versionInfo.Version},
					{"Commit", versionInfo.Commit},
					{"Built", versionInfo.Built},
					{"Client", versionInfo.ClientVersion},
				})
			})
		},
	}
}
