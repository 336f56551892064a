package utils

import (
	"fmt"
	"html/template"
	"time"
)

func TemplateHelpers() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("02/01/2006")
		},
		"formatDateTime": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("02/01/2006 15:04")
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
	}
}
