package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"limeal.fr/vlauncher/pkg/profile"
)

var profileJava string
var profilePath string
var profileJvmArgs []string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage launch profiles",
	Long:  `Manage launch profiles. A profile binds a name to a version, a game directory, a java runtime and extra JVM arguments.`,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name> <version>",
	Short: "Create a launch profile",
	Long: `Create a launch profile.

Arguments:
  <name>     The profile name.
  <version>  The minecraft version the profile launches.

When a profile with the same name already exists you are asked to confirm the
overwrite. The created profile becomes the current selection.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := loadStore()
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		java := profileJava
		if java == "" {
			java = profile.BundledJava
		}

		saved, err := store.Add(profile.Profile{
			Name:          args[0],
			Version:       args[1],
			MinecraftPath: profilePath,
			Java:          java,
			UserJvmArgs:   profileJvmArgs,
		}, confirmOverwrite)
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}
		if !saved {
			fmt.Println("Profile unchanged")
			return
		}
		fmt.Println("Profile saved: " + args[0])
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a launch profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := loadStore()
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		if err := store.Remove(args[0]); err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}
		fmt.Println("Profile removed: " + args[0])
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List launch profiles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := loadStore()
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		if len(store.Profiles) == 0 {
			fmt.Println("No profiles, create one with 'vlauncher profile create'")
			return
		}

		current := store.Current()
		for _, p := range store.Profiles {
			marker := "  "
			if current != nil && p.Name == current.Name {
				marker = "* "
			}
			fmt.Println(marker + p.String())
		}
	},
}

func loadStore() (*profile.Store, error) {
	root, err := installRoot()
	if err != nil {
		return nil, err
	}

	store := profile.NewStore(root)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func confirmOverwrite(name string) bool {
	fmt.Printf("Profile %s already exists, overwrite? [y/N] ", name)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCreateCmd.Flags().StringVarP(&profileJava, "java", "j", "", "The path to the java executable (default: bundled runtime)")
	profileCreateCmd.Flags().StringVar(&profilePath, "path", "", "Override the game directory for this profile")
	profileCreateCmd.Flags().StringArrayVar(&profileJvmArgs, "jvm-arg", nil, "Extra JVM argument, repeatable")
}
