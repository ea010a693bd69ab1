package render

import (
	"encoding/json"
	"fmt"
	"os"
)

// Theme maps normalized employer names to logo assets and CSS color
// classes. It is plain configuration; unmapped employers get the
// default color and no logo.
type Theme struct {
	Logos        map[string]string `json:"logos"`
	Colors       map[string]string `json:"colors"`
	DefaultColor string            `json:"defaultColor"`
}

// DefaultTheme returns the built-in employer→asset mapping.
func DefaultTheme() Theme {
	return Theme{
		Logos: map[string]string{
			"SFEIR":                             "assets/logos/sfeir.png",
			"Mixdata":                           "assets/logos/mixdata.jpg",
			"Canal+":                            "assets/logos/canal.svg",
			"Viseo Technologies":                "assets/logos/viseo.jpg",
			"Capgemini":                         "assets/logos/capgemini.svg",
			"Maison du Temps et de la Mobilité": "assets/logos/belfort.jpg",
		},
		Colors: map[string]string{
			"SFEIR":                             "c-sf",
			"Mixdata":                           "c-mx",
			"Canal+":                            "c-ca",
			"Viseo Technologies":                "c-vi",
			"Capgemini":                         "c-cg",
			"Maison du Temps et de la Mobilité": "c-ot",
		},
		DefaultColor: "c-sf",
	}
}

// Logo returns the logo path for a company, relative to the output
// directory (generated documents live one level below the assets).
func (t Theme) Logo(company string) string {
	if p := t.Logos[company]; p != "" {
		return "../" + p
	}
	return ""
}

// Color returns the CSS color class for a company.
func (t Theme) Color(company string) string {
	if c := t.Colors[company]; c != "" {
		return c
	}
	return t.DefaultColor
}

// LoadTheme reads a theme mapping from a JSON file.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("render: read theme: %w", err)
	}
	t := DefaultTheme()
	if err := json.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("render: parse theme %s: %w", path, err)
	}
	return t, nil
}
