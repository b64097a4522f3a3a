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
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	testCases := []struct {
		name     string
		content  *string
		expected Config
		wantErr  bool
	}{
		{
			name:     "missing file uses defaults",
			content:  nil,
			expected: defaultConfig,
		},
		{
			name:     "invalid yaml uses defaults",
			content:  ptr("display: [unterminated"),
			expected: defaultConfig,
			wantErr:  true,
		},
		{
			name:    "partial file keeps other defaults",
			content: ptr("display:\n  root_marker: \" (root)\"\n"),
			expected: Config{
				Display: DisplayConfig{RootMarker: " (root)", Color: true},
				Render:  defaultConfig.Render,
				TUI:     defaultConfig.TUI,
			},
		},
		{
			name:    "out of range numbers are clamped",
			content: ptr("display:\n  color: false\nrender:\n  cell_padding: -3\ntui:\n  cache_minutes: 0\n"),
			expected: Config{
				Display: DisplayConfig{RootMarker: defaultConfig.Display.RootMarker, Color: false},
				Render:  RenderConfig{CellPadding: 0},
				TUI:     defaultConfig.TUI,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			if tc.content != nil {
				if err := os.WriteFile(path, []byte(*tc.content), 0644); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			}

			config, err := loadConfigFile(path)
			if tc.wantErr != (err != nil) {
				t.Fatalf("loadConfigFile error = %v; want error: %v", err, tc.wantErr)
			}
			if *config != tc.expected {
				t.Errorf("loadConfigFile() = %+v; want %+v", *config, tc.expected)
			}
		})
	}
}

func TestLoadConfigFileUnreadable(t *testing.T) {
	// a directory exists but cannot be read as a file
	path := t.TempDir()

	config, err := loadConfigFile(path)
	if err == nil {
		t.Errorf("loadConfigFile(%q) returned no error", path)
	}
	if config == nil || *config != defaultConfig {
		t.Errorf("loadConfigFile(%q) = %+v; want defaults alongside the error", path, config)
	}
}

func TestCreateDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile returned error: %v", err)
	}

	config, _ := loadConfigFile(path)
	if *config != defaultConfig {
		t.Errorf("round trip = %+v; want %+v", *config, defaultConfig)
	}
}

func TestDefaultsAreIndependentCopies(t *testing.T) {
	a := defaults()
	a.Display.RootMarker = "changed"
	if defaults().Display.RootMarker != defaultConfig.Display.RootMarker {
		t.Errorf("mutating a defaults() copy changed the shared default")
	}
}

func ptr(s string) *string {
	return &s
}
