// Package icons provides ready-made glyph sets for navigation tabs and
// action buttons. Hosts pass any string as an icon; this package only
// covers the common cases across terminal font capabilities.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Home     string
	Search   string
	Library  string
	Profile  string
	Settings string
	Add      string
	Edit     string
	Favorite string
	Bell     string
}

var (
	nerdIcons = Icons{
		Home:     "", // nf-fa-home
		Search:   "", // nf-fa-search
		Library:  "", // nf-fa-book
		Profile:  "", // nf-fa-user
		Settings: "", // nf-fa-gear
		Add:      "", // nf-fa-plus
		Edit:     "", // nf-fa-edit
		Favorite: "󰣐",      // nf-md-heart
		Bell:     "", // nf-fa-bell
	}

	unicodeIcons = Icons{
		Home:     "⌂",
		Search:   "🔍",
		Library:  "📚",
		Profile:  "👤",
		Settings: "⚙",
		Add:      "＋",
		Edit:     "✎",
		Favorite: "♥",
		Bell:     "🔔",
	}

	noneIcons = Icons{
		Home:     "H",
		Search:   "S",
		Library:  "L",
		Profile:  "P",
		Settings: "*",
		Add:      "+",
		Edit:     "e",
		Favorite: "<3",
		Bell:     "!",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Home returns the home icon.
func Home() string {
	return current.Home
}

// Search returns the search icon.
func Search() string {
	return current.Search
}

// Library returns the library icon.
func Library() string {
	return current.Library
}

// Profile returns the profile icon.
func Profile() string {
	return current.Profile
}

// Settings returns the settings icon.
func Settings() string {
	return current.Settings
}

// Add returns the add icon, the usual choice for an action button.
func Add() string {
	return current.Add
}

// Edit returns the edit icon.
func Edit() string {
	return current.Edit
}

// Favorite returns the favorite/heart icon.
func Favorite() string {
	return current.Favorite
}

// Bell returns the notification icon.
func Bell() string {
	return current.Bell
}
