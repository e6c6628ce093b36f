package domain

import "time"

type Theme string

const (
	ThemeLight Theme = "claro"
	ThemeDark  Theme = "escuro"
	ThemeGray  Theme = "cinza"
)

const DefaultStoreName = "Açaí Manager"

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeGray:
		return true
	}
	return false
}

type StoreConfig struct {
	StoreName string    `json:"store_name"`
	LogoURL   string    `json:"logo_url"`
	Theme     Theme     `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		StoreName: DefaultStoreName,
		Theme:     ThemeLight,
	}
}

type UpdateStoreConfigRequest struct {
	StoreName *string `json:"store_name"`
	LogoURL   *string `json:"logo_url"`
	Theme     *string `json:"theme"`
}
