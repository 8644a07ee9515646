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
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorScheme is the palette used by the visualizer.
type ColorScheme struct {
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Title       lipgloss.Color
	Prompt      lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode

	// ANSI escapes for plain terminal output. Empty until InitializeColors runs.
	Green, Info, Warning, Error, Reset string
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Border:      lipgloss.Color("245"),
		BorderFocus: lipgloss.Color("25"),
		Title:       lipgloss.Color("25"),
		Prompt:      lipgloss.Color("162"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
		Success:     lipgloss.Color("28"),
		Error:       lipgloss.Color("160"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Title:       lipgloss.Color("39"), // Bright cyan/blue, more visible on dark backgrounds
		Prompt:      lipgloss.Color("205"),
		Text:        lipgloss.Color("252"),
		TextMuted:   lipgloss.Color("243"),
		Success:     lipgloss.Color("46"),
		Error:       lipgloss.Color("196"),
	}
}

// InitializeColors detects terminal mode and sets up the palette and the
// ANSI escapes.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}
