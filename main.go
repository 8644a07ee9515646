// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// loadSession reads the config and opens a session, letting an explicit
// --kind flag win over the configured key kind.
func loadSession(cmd *cobra.Command) (*Config, Session) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		c := defaultConfig
		config = &c
	}

	kind := config.Tree.KeyKind
	if f := cmd.Flags().Lookup("kind"); f != nil && f.Changed {
		kind = f.Value.String()
	}
	session, err := NewSession(kind)
	if err != nil {
		log.Fatalf("Error creating tree: %v", err)
	}
	return config, session
}

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ███████╗ ██████╗ ██████╗ ██████╗ ███████╗
██╔══██╗██║   ██║██║     ██╔════╝██╔════╝██╔═══██╗██╔══██╗██╔════╝
███████║██║   ██║██║     ███████╗██║     ██║   ██║██████╔╝█████╗
██╔══██║╚██╗ ██╔╝██║     ╚════██║██║     ██║   ██║██╔═══╝ ██╔══╝
██║  ██║ ╚████╔╝ ███████╗███████║╚██████╗╚██████╔╝██║     ███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚══════╝ ╚═════╝ ╚═════╝ ╚═╝     ╚══════╝
Self-balancing tree explorer [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Walk through the classic rotation cascade",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Insert 10 20 30 40 50 25, then delete 50 40 10, printing the tree after every step"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, _ := loadSession(cmd)
			if err := runDemo(os.Stdout, config.RenderOptions()); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}

	var cmdBuild = &cobra.Command{
		Use:   "build",
		Short: "Build a tree from keys and print it",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Build inserts --keys and the keys of --file, applies --delete, then prints and verifies the tree`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, session := loadSession(cmd)

			inserts, err := splitCommand(cmd.Flag("keys").Value.String())
			if err != nil {
				log.Fatalf("Error reading --keys: %v", err)
			}
			if path := cmd.Flag("file").Value.String(); path != "" {
				fileKeys, err := readKeyFile(path)
				if err != nil {
					log.Fatalf("Error reading key file: %v", err)
				}
				inserts = append(inserts, fileKeys...)
			}
			deletes, err := splitCommand(cmd.Flag("delete").Value.String())
			if err != nil {
				log.Fatalf("Error reading --delete: %v", err)
			}

			if err := buildTree(os.Stdout, session, inserts, deletes, config.RenderOptions()); err != nil {
				log.Fatalf("Build failed: %v", err)
			}
		},
	}
	cmdBuild.Flags().String("keys", "", "keys to insert, separated by spaces")
	cmdBuild.Flags().String("file", "", "file with keys to insert, one or more per line")
	cmdBuild.Flags().String("delete", "", "keys to delete after inserting")
	cmdBuild.Flags().String("kind", "", fmt.Sprintf("key kind (%s)", keyKindNames()))

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive tree prompt",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Shell reads tree commands from stdin; type 'help' at the prompt"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, session := loadSession(cmd)
			sh := NewShell(session, NewRenderCache(config.RenderCacheTTL()), config.RenderOptions())

			interactive := true
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				interactive = false
			}
			if err := RunShell(sh, os.Stdin, os.Stdout, interactive); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}
	cmdShell.Flags().String("kind", "", fmt.Sprintf("key kind (%s)", keyKindNames()))
	cmdShell.Flags().Bool("quiet", false, "no banner or prompt, for piped input")

	var cmdUI = &cobra.Command{
		Use:   "ui",
		Short: "Launches the full-screen tree visualizer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "UI opens a terminal visualizer that redraws the tree after every command"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, session := loadSession(cmd)
			sh := NewShell(session, NewRenderCache(config.RenderCacheTTL()), config.RenderOptions())
			if err := runBubbleTeaApp(sh); err != nil {
				log.Fatalf("Error running UI: %v", err)
			}
		},
	}
	cmdUI.Flags().String("kind", "", fmt.Sprintf("key kind (%s)", keyKindNames()))

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Random insert/delete workload with invariant checks",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Stress inserts distinct random keys, deletes a share of them and verifies the tree after each phase"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, _ := loadSession(cmd)

			opts := StressOptions{
				Size:         config.Stress.Size,
				DeleteRatio:  config.Stress.DeleteRatio,
				Seed:         config.Stress.Seed,
				ShowProgress: true,
			}
			if cmd.Flags().Changed("n") {
				opts.Size, _ = cmd.Flags().GetInt("n")
			}
			if cmd.Flags().Changed("delete-ratio") {
				opts.DeleteRatio, _ = cmd.Flags().GetFloat64("delete-ratio")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				opts.ShowProgress = false
			}

			report, err := RunStress(opts)
			if err != nil {
				log.Fatalf("%sStress run failed:%s %v", Error, Reset, err)
			}
			report.Print(os.Stdout)
		},
	}
	cmdStress.Flags().Int("n", 0, "number of distinct keys to insert (default from config)")
	cmdStress.Flags().Float64("delete-ratio", 0, "share of keys to delete afterwards (default from config)")
	cmdStress.Flags().Int64("seed", 0, "random seed (default from config, 0 = time-based)")
	cmdStress.Flags().Bool("quiet", false, "hide progress bars")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlscope usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlscope CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints the active configuration and creates the default file if missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlscope version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlscope",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the demo when no subcommand is provided
			cmdDemo.Run(cmd, args)
		},
	}
	rootCmd.AddCommand(cmdDemo, cmdBuild, cmdShell, cmdUI, cmdStress, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
