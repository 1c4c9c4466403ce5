// Package app defines the listsync command line: serve, migrate and version.
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/listsync/internal/platform/config"
)

// Build information, set with -ldflags "-X".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

const (
	flagProfile   = "profile"
	flagConfigDir = "config-dir"
	profileEnvVar = "APP_PROFILE"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "listsync",
		Short:         "Keep mailing lists and members in sync with a marketing API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().String(flagProfile, "", "Config profile (defaults to $"+profileEnvVar+")")
	root.PersistentFlags().String(flagConfigDir, "configs", "Directory holding base.yaml and profile files")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig resolves the profile from the flag or environment and loads it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	profile, err := cmd.Flags().GetString(flagProfile)
	if err != nil {
		return nil, fmt.Errorf("reading %s flag: %w", flagProfile, err)
	}
	if profile == "" {
		profile = os.Getenv(profileEnvVar)
	}
	if profile == "" {
		return nil, errors.New("profile is required: pass --profile or set " + profileEnvVar + " (e.g. local, prod)")
	}

	dir, err := cmd.Flags().GetString(flagConfigDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s flag: %w", flagConfigDir, err)
	}

	cfg, err := config.Load(profile, config.WithConfigDir(dir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version:   Version,
				Commit:    Commit,
				BuildDate: BuildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("reading format flag: %w", err)
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			_, err = fmt.Fprintf(out, "listsync %s (commit %s, built %s, %s %s)\n",
				info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Platform)
			return err
		},
	}
	cmd.Flags().String("format", "", "Output format (json)")
	return cmd
}
