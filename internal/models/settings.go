package models

type View string

const (
	ViewPOS   View = "POS"
	ViewKDS   View = "KDS"
	ViewAdmin View = "ADMIN"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)
