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
	"strconv"

	"github.com/cybrota/bstree/bst"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var demoValues = []int{15, 6, 18, 3, 7, 17, 20, 2, 4, 13, 9}

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	InitializeColors(config.Display.Color)
	return config
}

// treeFromFlagsAndArgs builds a tree from --values followed by positional args
func treeFromFlagsAndArgs(cmd *cobra.Command, args []string) *bst.Tree[int] {
	raw := args
	if flagValues, _ := cmd.Flags().GetString("values"); flagValues != "" {
		raw = append([]string{flagValues}, args...)
	}

	values, err := parseValues(raw)
	if err != nil {
		log.Fatalf("Error parsing values: %v", err)
	}
	tree, err := buildTree(values)
	if err != nil {
		log.Fatalf("Error building tree: %v", err)
	}
	return tree
}

func main() {
	asciiLogo := `
 _         _
| |__  ___| |_ _ __ ___  ___
| '_ \/ __| __| '__/ _ \/ _ \
| |_) \__ \ |_| | |  __/  __/
|_.__/|___/\__|_|  \___|\___|
Binary search tree with a single corrective rotation at the root [Version: %s%s%s]

`

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Insert the sample sequence and print traversal, height and searches",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			tree, err := buildTree(demoValues)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}

			if err := printTree(os.Stdout, tree, config, NewStyles()); err != nil {
				log.Fatalf("Error printing tree: %v", err)
			}
			fmt.Println()
			for _, v := range []int{7, 15, 3, 2, 99} {
				fmt.Println(searchReport(tree, v))
			}
		},
	}

	var cmdInsert = &cobra.Command{
		Use:   "insert [values...]",
		Short: "Insert values in order and print the in-order traversal",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			tree := treeFromFlagsAndArgs(cmd, args)
			if err := printTree(os.Stdout, tree, config, NewStyles()); err != nil {
				log.Fatalf("Error printing tree: %v", err)
			}
			if tree.IsUnbalanced() {
				fmt.Printf("%sRoot is still unbalanced after the last corrective rotation%s\n", Warning, Reset)
			}
		},
	}

	var cmdSearch = &cobra.Command{
		Use:   "search [value]",
		Short: "Search a value in the tree built from --values",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			loadConfigOrDefault()
			needle, err := strconv.Atoi(args[0])
			if err != nil {
				log.Fatalf("Invalid search value %q: %v", args[0], err)
			}
			tree := treeFromFlagsAndArgs(cmd, nil)
			fmt.Print(searchReport(tree, needle))
		},
	}

	var cmdRender = &cobra.Command{
		Use:   "render [values...]",
		Short: "Print the tree as a grid of depth rows and in-order columns",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			tree := treeFromFlagsAndArgs(cmd, args)
			fmt.Print(formatGrid(tree.Render(), config.Render.CellPadding))
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load [file]",
		Short: "Insert values read from a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			quiet, _ := cmd.Flags().GetBool("quiet")
			values, err := readValuesFile(args[0], !quiet)
			if err != nil {
				log.Fatalf("Error reading values: %v", err)
			}
			tree, err := buildTree(values)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
			fmt.Fprintln(os.Stderr)
			if err := printTree(os.Stdout, tree, config, NewStyles()); err != nil {
				log.Fatalf("Error printing tree: %v", err)
			}
		},
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui [values...]",
		Short: "Build and inspect a tree interactively",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			tree := treeFromFlagsAndArgs(cmd, args)
			if err := runBubbleTeaApp(tree, config); err != nil {
				log.Fatalf("Error running TUI: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating ~/.bstree.yaml if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			loadConfigOrDefault()
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bstree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bstree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	for _, c := range []*cobra.Command{cmdInsert, cmdSearch, cmdRender, cmdTUI} {
		c.Flags().String("values", "", "values to insert, e.g. \"15 6 18\"")
	}
	cmdLoad.Flags().Bool("quiet", false, "do not draw a progress bar")

	var rootCmd = &cobra.Command{
		Use:     "bstree",
		Version: version,
		Long:    fmt.Sprintf(asciiLogo, Green, version, Reset),
		Run: func(cmd *cobra.Command, args []string) {
			// Default to demo when no subcommand is provided
			cmdDemo.Run(cmd, args)
		},
	}
	rootCmd.AddCommand(cmdDemo, cmdInsert, cmdSearch, cmdRender, cmdLoad, cmdTUI, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
