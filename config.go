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
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/avlscope/avl"
	"gopkg.in/yaml.v3"
)

const configEnvVar = "AVLSCOPE_CONFIG"

type TreeConfig struct {
	KeyKind string `yaml:"key_kind"`
}

type RenderConfig struct {
	ShowHeight  bool   `yaml:"show_height"`
	ShowBalance bool   `yaml:"show_balance"`
	CacheTTL    string `yaml:"cache_ttl"`
}

type StressConfig struct {
	Size        int     `yaml:"size"`
	DeleteRatio float64 `yaml:"delete_ratio"`
	Seed        int64   `yaml:"seed"` // 0 picks a time-based seed
}

type Config struct {
	Tree   TreeConfig   `yaml:"tree"`
	Render RenderConfig `yaml:"render"`
	Stress StressConfig `yaml:"stress"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		KeyKind: "int",
	},
	Render: RenderConfig{
		ShowHeight:  true,
		ShowBalance: true,
		CacheTTL:    "10m",
	},
	Stress: StressConfig{
		Size:        10000,
		DeleteRatio: 0.3,
	},
}

// LoadConfig reads the YAML config. A missing or unreadable file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	config := defaultConfig

	configPath, err := getConfigPath()
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Cannot read %s: %v. Using default settings.", configPath, err)
		}
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Cannot parse %s: %v. Using default settings.", configPath, err)
		config = defaultConfig
		return &config, nil
	}

	config.normalize()
	return &config, nil
}

// normalize replaces out-of-range values with their defaults.
func (c *Config) normalize() {
	if _, err := NewSession(c.Tree.KeyKind); err != nil {
		log.Printf("Config: %v. Falling back to %q.", err, defaultConfig.Tree.KeyKind)
		c.Tree.KeyKind = defaultConfig.Tree.KeyKind
	}
	if c.Stress.Size <= 0 {
		c.Stress.Size = defaultConfig.Stress.Size
	}
	if c.Stress.DeleteRatio < 0 || c.Stress.DeleteRatio > 1 {
		c.Stress.DeleteRatio = defaultConfig.Stress.DeleteRatio
	}
}

func (c *Config) RenderOptions() avl.RenderOptions {
	return avl.RenderOptions{
		ShowHeight:  c.Render.ShowHeight,
		ShowBalance: c.Render.ShowBalance,
	}
}

func (c *Config) RenderCacheTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Render.CacheTTL)
	if err != nil || ttl <= 0 {
		return renderCacheExpiration
	}
	return ttl
}

func getConfigPath() (string, error) {
	if p := os.Getenv(configEnvVar); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".avlscope.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 avlscope Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🌳 %sTree:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %skey_kind%s: %s\n", Green, Reset, config.Tree.KeyKind)
	for _, k := range KeyKinds() {
		fmt.Fprintf(w, "    %-7s %s\n", k.Name, k.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "🖨  %sRender:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sshow_height%s: %t\n", Green, Reset, config.Render.ShowHeight)
	fmt.Fprintf(w, "  • %sshow_balance%s: %t\n", Green, Reset, config.Render.ShowBalance)
	fmt.Fprintf(w, "  • %scache_ttl%s: %s\n\n", Green, Reset, config.RenderCacheTTL())

	fmt.Fprintf(w, "🏋 %sStress:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %ssize%s: %d\n", Green, Reset, config.Stress.Size)
	fmt.Fprintf(w, "  • %sdelete_ratio%s: %.2f\n", Green, Reset, config.Stress.DeleteRatio)
	if config.Stress.Seed == 0 {
		fmt.Fprintf(w, "  • %sseed%s: time-based\n\n", Green, Reset)
	} else {
		fmt.Fprintf(w, "  • %sseed%s: %d\n\n", Green, Reset, config.Stress.Seed)
	}

	fmt.Fprintf(w, "💡 Edit %s to change these values, e.g.:\n", configPath)
	fmt.Fprintf(w, "   tree:\n     key_kind: string\n")
}
