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
	"os"
	"path/filepath"

	"github.com/cybrota/bstree/bst"
	"gopkg.in/yaml.v3"
)

const configFileName = ".bstree.yaml"

type DisplayConfig struct {
	RootMarker string `yaml:"root_marker"`
	Color      bool   `yaml:"color"`
}

type RenderConfig struct {
	CellPadding int `yaml:"cell_padding"`
}

type TUIConfig struct {
	CacheMinutes int `yaml:"cache_minutes"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Render  RenderConfig  `yaml:"render"`
	TUI     TUIConfig     `yaml:"tui"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		RootMarker: bst.DefaultRootMarker,
		Color:      true,
	},
	Render: RenderConfig{
		CellPadding: 1,
	},
	TUI: TUIConfig{
		CacheMinutes: 30,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.bstree.yaml. A missing file yields the defaults. An
// unreadable or invalid file yields the defaults together with the error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFile(configPath)
}

func loadConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return defaults(), fmt.Errorf("failed to read %s: %v", configPath, err)
	}

	// keys missing from the file keep their default values
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}
	if config.Render.CellPadding < 0 {
		config.Render.CellPadding = 0
	}
	if config.TUI.CacheMinutes <= 0 {
		config.TUI.CacheMinutes = defaultConfig.TUI.CacheMinutes
	}

	return config, nil
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		fmt.Printf("⚠️  %v. Showing default settings.\n\n", err)
	}

	fmt.Printf("🔧 bstree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")
	fmt.Printf("  • %sdisplay.root_marker%s: %q\n", Green, Reset, config.Display.RootMarker)
	fmt.Printf("  • %sdisplay.color%s: %t\n", Green, Reset, config.Display.Color)
	fmt.Printf("  • %srender.cell_padding%s: %d\n", Green, Reset, config.Render.CellPadding)
	fmt.Printf("  • %stui.cache_minutes%s: %d\n\n", Green, Reset, config.TUI.CacheMinutes)
}
