package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var versionOutput string

// Version information set by linker during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type versionInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := versionInfo{
			Version:   Version,
			BuildTime: BuildTime,
			GitCommit: GitCommit,
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		}

		switch versionOutput {
		case "json":
			data, err := sonic.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			_, err = os.Stdout.Write([]byte("\n"))
			return err
		case "short":
			fmt.Println(info.Version)
			return nil
		default:
			fmt.Printf("promptlens - Prompt Usage Analytics\n")
			fmt.Printf("Version:     %s\n", info.Version)
			if info.GitCommit != "unknown" {
				fmt.Printf("Git Commit:  %s\n", info.GitCommit)
			}
			if info.BuildTime != "unknown" {
				fmt.Printf("Build Time:  %s\n", info.BuildTime)
			}
			fmt.Printf("Go Version:  %s\n", info.GoVersion)
			fmt.Printf("OS/Arch:     %s/%s\n", info.OS, info.Arch)
			return nil
		}
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "default", "output format (default, json, short)")
	rootCmd.AddCommand(versionCmd)
}
