package defaults

import "sitebuilder-backend/shared/database/models"

// ThemePreset is a predefined theme configuration for quick setup
type ThemePreset struct {
	Name       string             `json:"name"`
	ThemeMode  string             `json:"theme_mode"`
	Colors     models.ThemeColors `json:"colors"`
	Typography string             `json:"typography"`
}

// ThemePresets lists the predefined themes, first entry is the default
var ThemePresets = []ThemePreset{
	{
		Name:      "Modern Blue",
		ThemeMode: models.ThemeModeLight,
		Colors: models.ThemeColors{
			Primary:   "#3B82F6",
			Secondary: "#8B5CF6",
			Tertiary:  "#10B981",
		},
		Typography: models.TypographySansSerif,
	},
	{
		Name:      "Classic Dark",
		ThemeMode: models.ThemeModeDark,
		Colors: models.ThemeColors{
			Primary:   "#60A5FA",
			Secondary: "#A78BFA",
			Tertiary:  "#34D399",
		},
		Typography: models.TypographySerif,
	},
	{
		Name:      "Bold Orange",
		ThemeMode: models.ThemeModeLight,
		Colors: models.ThemeColors{
			Primary:   "#F97316",
			Secondary: "#EF4444",
			Tertiary:  "#F59E0B",
		},
		Typography: models.TypographySansSerif,
	},
	{
		Name:      "Minimal",
		ThemeMode: models.ThemeModeLight,
		Colors: models.ThemeColors{
			Primary:   "#000000",
			Secondary: "#4B5563",
			Tertiary:  "#9CA3AF",
		},
		Typography: models.TypographySansSerif,
	},
	{
		Name:      "Elegant",
		ThemeMode: models.ThemeModeLight,
		Colors: models.ThemeColors{
			Primary:   "#7C3AED",
			Secondary: "#EC4899",
			Tertiary:  "#F472B6",
		},
		Typography: models.TypographyScript,
	},
}

// DefaultTheme returns the default preset (Modern Blue)
func DefaultTheme() ThemePreset {
	return ThemePresets[0]
}

// PresetByName finds a preset by its name
func PresetByName(name string) (ThemePreset, bool) {
	for _, preset := range ThemePresets {
		if preset.Name == name {
			return preset, true
		}
	}
	return ThemePreset{}, false
}
