package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to unicode", "", StyleUnicode},
		{"unknown style defaults to unicode", "invalid", StyleUnicode},
		{"case sensitive - NERD defaults to unicode", "NERD", StyleUnicode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Errorf("Init(%q): expected nerd icons", tt.style)
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Errorf("Init(%q): expected unicode icons", tt.style)
				}
			case StyleNone:
				if current != noneIcons {
					t.Errorf("Init(%q): expected none icons", tt.style)
				}
			}
		})
	}

	Init("unicode")
}

func TestAccessorsFollowActiveSet(t *testing.T) {
	Init("none")
	if Home() != noneIcons.Home {
		t.Errorf("Home() = %q, want %q", Home(), noneIcons.Home)
	}
	if Add() != noneIcons.Add {
		t.Errorf("Add() = %q, want %q", Add(), noneIcons.Add)
	}

	Init("unicode")
	if Favorite() != unicodeIcons.Favorite {
		t.Errorf("Favorite() = %q, want %q", Favorite(), unicodeIcons.Favorite)
	}
}

func TestEverySetIsFullyPopulated(t *testing.T) {
	for name, set := range map[string]Icons{
		"nerd":    nerdIcons,
		"unicode": unicodeIcons,
		"none":    noneIcons,
	} {
		if set.Home == "" || set.Search == "" || set.Library == "" ||
			set.Profile == "" || set.Settings == "" || set.Add == "" ||
			set.Edit == "" || set.Favorite == "" || set.Bell == "" {
			t.Errorf("%s icon set has empty entries", name)
		}
	}
}
