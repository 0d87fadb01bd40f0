// Package web embeds the HTML templates and builds the fiber view engine.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templateFS embed.FS

// Layout is the wrapping template every page renders into.
const Layout = "layouts/main"

// NewEngine returns the template engine. Reload re-parses templates on every
// render, which is only useful while editing them.
func NewEngine(reload bool) *html.Engine {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.Reload(reload)
	for name, fn := range Funcs() {
		engine.AddFunc(name, fn)
	}
	return engine
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"comma":   comma,
		"date":    func(t time.Time) string { return t.Format("02 Jan 2006") },
		"upper":   strings.ToUpper,
		"percent": func(f float64) string { return fmt.Sprintf("%.0f%%", f) },
		"width":   func(f float64) template.CSS { return template.CSS(fmt.Sprintf("width: %.1f%%", f)) },
		"swatch":  func(color string) template.CSS { return template.CSS("background: " + color) },
		"query": func(q string) template.URL {
			if q == "" {
				return template.URL("/")
			}
			return template.URL("/?" + q)
		},
	}
}

func comma(v any) string {
	switch n := v.(type) {
	case int:
		return humanize.Comma(int64(n))
	case int64:
		return humanize.Comma(n)
	}
	return fmt.Sprint(v)
}
