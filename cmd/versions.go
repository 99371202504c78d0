package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"limeal.fr/vlauncher/pkg/launcher"
)

var releaseOnly bool

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the versions available in the remote manifest",
	Long: `List the versions available in the remote manifest.

The versions command fetches the remote version manifest and prints every
version identifier it advertises, newest first.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		resolver := launcher.NewManifestResolver(launcher.NewFetcher())

		versions, err := resolver.Versions(releaseOnly)
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		latest, err := resolver.LatestRelease()
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		for _, version := range versions {
			if version == latest {
				fmt.Println(version + " (latest release)")
				continue
			}
			fmt.Println(version)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().BoolVarP(&releaseOnly, "release-only", "r", false, "Only list release versions")
}
