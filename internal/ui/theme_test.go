package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "dark" || names[1] != "light" {
		t.Fatalf("ThemeNames() = %v, want [dark light]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("dark"); got != "light" {
		t.Fatalf("NextTheme(dark) = %q, want light", got)
	}
	if got := NextTheme("light"); got != "dark" {
		t.Fatalf("NextTheme(light) = %q, want dark", got)
	}
	if got := NextTheme("unknown"); got != "dark" {
		t.Fatalf("NextTheme(unknown) = %q, want dark", got)
	}
}

func TestGetTheme(t *testing.T) {
	dark := GetTheme("dark")
	if dark.Name != "dark" {
		t.Fatalf("GetTheme(dark).Name = %q, want dark", dark.Name)
	}

	light := GetTheme("light")
	if light.Name != "light" {
		t.Fatalf("GetTheme(light).Name = %q, want light", light.Name)
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "dark" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want dark (fallback)", unknown.Name)
	}
}

func TestThemesHaveDistinctPalettes(t *testing.T) {
	if GetTheme("dark").Text == GetTheme("light").Text {
		t.Fatal("dark and light themes share the same text color")
	}
}
