package config

// Theme defines the colors used by the CLI board renderer
type Theme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	Accent       string `yaml:"accent"`
	ColumnBorder string `yaml:"column_border"`
	CardBorder   string `yaml:"card_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// DefaultTheme returns the default color scheme (purple theme)
func DefaultTheme() *Theme {
	return &Theme{
		Preset:       "default",
		Accent:       "#874BFD",
		ColumnBorder: "#5F87D7",
		CardBorder:   "#585858",
		Title:        "#D75FD7",
		Subtle:       "#585858",
		Normal:       "#D0D0D0",
		InfoFg:       "#00AFFF",
		InfoBg:       "#00005F",
		ErrorFg:      "#FF0000",
		ErrorBg:      "#5F0000",
	}
}

// MonochromeTheme returns a black and white color scheme
func MonochromeTheme() *Theme {
	return &Theme{
		Preset:       "monochrome",
		Accent:       "#FFFFFF",
		ColumnBorder: "#BCBCBC",
		CardBorder:   "#808080",
		Title:        "#FFFFFF",
		Subtle:       "#808080",
		Normal:       "#D0D0D0",
		InfoFg:       "#FFFFFF",
		InfoBg:       "#303030",
		ErrorFg:      "#FFFFFF",
		ErrorBg:      "#000000",
	}
}

// ThemePreset returns a preset theme by name
func ThemePreset(name string) *Theme {
	switch name {
	case "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (t *Theme) ApplyDefaults() {
	preset := ThemePreset(t.Preset)

	fill := func(field *string, value string) {
		if *field == "" {
			*field = value
		}
	}
	fill(&t.Preset, preset.Preset)
	fill(&t.Accent, preset.Accent)
	fill(&t.ColumnBorder, preset.ColumnBorder)
	fill(&t.CardBorder, preset.CardBorder)
	fill(&t.Title, preset.Title)
	fill(&t.Subtle, preset.Subtle)
	fill(&t.Normal, preset.Normal)
	fill(&t.InfoFg, preset.InfoFg)
	fill(&t.InfoBg, preset.InfoBg)
	fill(&t.ErrorFg, preset.ErrorFg)
	fill(&t.ErrorBg, preset.ErrorBg)
}
