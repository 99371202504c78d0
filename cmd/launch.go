package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"limeal.fr/vlauncher/pkg/authenticator"
	"limeal.fr/vlauncher/pkg/launcher"
	"limeal.fr/vlauncher/pkg/profile"
	"limeal.fr/vlauncher/pkg/utils"
)

var launchVersion string
var launchPlayer string
var launchJava string
var launchJvmArgs []string
var launchAuth string

var launchCmd = &cobra.Command{
	Use:   "launch [profile_name]",
	Short: "Download, verify and launch a minecraft version",
	Long: `Download, verify and launch a minecraft version.

Arguments:
  [profile_name]  The profile to launch. Defaults to the last-selected profile.

The launch command resolves the version from the remote manifest, downloads and
verifies every missing artifact, provisions a java runtime when the profile
uses the bundled one, writes the launch script and supervises the game process
until it exits. Ctrl+C terminates the game and all of its children.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root, err := installRoot()
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		store := profile.NewStore(root)
		if err := store.Load(); err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		version := launchVersion
		javaPath := launchJava
		jvmArgs := launchJvmArgs
		gameRoot := root

		if version == "" {
			selected := store.Current()
			if len(args) == 1 {
				if err := store.Select(args[0]); err != nil {
					fmt.Println("❌ " + err.Error())
					return
				}
				selected = store.Current()
			}
			if selected == nil {
				fmt.Println("❌ No profile found, create one with 'vlauncher profile create' or pass --version")
				return
			}
			version = selected.Version
			if !selected.UsesBundledJava() && javaPath == "" {
				javaPath = selected.Java
			}
			if selected.MinecraftPath != "" {
				gameRoot = selected.MinecraftPath
			}
			jvmArgs = append(append([]string{}, selected.UserJvmArgs...), launchJvmArgs...)
		}

		if launchPlayer != "" {
			store.State.PlayerName = launchPlayer
		}
		if store.State.PlayerName == "" {
			fmt.Println("❌ Player name is empty, set one with --player")
			return
		}

		// State is persisted before the pipeline so a failed download does not
		// lose the selection.
		if err := store.Save(); err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		instance, err := launcher.NewLauncher(gameRoot)
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		opts := launcher.DownloadOptions{
			Version:      version,
			PlayerName:   store.State.PlayerName,
			ExtraJVMArgs: jvmArgs,
			JavaPath:     javaPath,
			Progress: func(current int64, total int64, description string) {
				if debug {
					fmt.Printf("[%d/%d] %s\n", current, total, description)
					return
				}
				if total == launcher.EstimateUnknown {
					return
				}
				utils.PrintProgress("download", current, total, description)
			},
			Log: func(message string) {
				fmt.Println(message)
			},
		}

		if launchAuth != "" {
			username, password, ok := strings.Cut(launchAuth, ":")
			if !ok {
				fmt.Println("❌ Invalid --auth value, expected <username>:<password>")
				return
			}
			opts.Auth = authenticator.NewYggdrasilAuthenticator()
			opts.AuthUsername = username
			opts.AuthPassword = password
		}

		script, err := instance.Download(opts)
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		done := make(chan struct{})
		instance.Supervisor.OnExit = func() {
			close(done)
		}

		if err := instance.Play(script); err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		select {
		case <-done:
			fmt.Println("Game exited")
		case <-interrupt:
			fmt.Println("Terminating game")
			instance.Supervisor.Terminate()
			<-done
		}
	},
}

func installRoot() (string, error) {
	if rootDir != "" {
		return rootDir, nil
	}
	return launcher.DefaultRoot()
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().StringVarP(&launchVersion, "version", "v", "", "Launch a version directly without a profile")
	launchCmd.Flags().StringVarP(&launchPlayer, "player", "p", "", "The player display name (persisted)")
	launchCmd.Flags().StringVarP(&launchJava, "java", "j", "", "The path to the java executable")
	launchCmd.Flags().StringArrayVar(&launchJvmArgs, "jvm-arg", nil, "Extra JVM argument, repeatable")
	launchCmd.Flags().StringVarP(&launchAuth, "auth", "a", "", "Authenticate as <username>:<password> instead of offline mode")
}
