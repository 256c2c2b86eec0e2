package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const DefaultColorTheme = "default"

var ColorThemes = []string{DefaultColorTheme, "ocean", "forest", "sunset", "purple"}

type Preferences struct {
	Theme      Theme  `json:"theme"`
	ColorTheme string `json:"colorTheme"`
}

type SetColorThemeRequest struct {
	ColorTheme string `json:"colorTheme" validate:"required,oneof=default ocean forest sunset purple"`
}
