package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"smart-mockdata/app/dashboard/middlewares"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer 每个页面单独解析，和公共布局组合
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, file := range files {
		if file == layoutFile {
			continue
		}

		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render 每次渲染都复制一份模板，把当前请求的 CSRF token 绑定到 csrfField
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	page, err := t.Clone()
	if err != nil {
		return fmt.Errorf("clone template %s: %w", name, err)
	}

	token, _ := c.Get(middlewares.CSRFContextKey).(string)
	page.Funcs(template.FuncMap{
		"csrfField": func() template.HTML { return csrfField(token) },
	})

	return page.ExecuteTemplate(w, "layout", data)
}

func csrfField(token string) template.HTML {
	return template.HTML(`<input type="hidden" name="` + middlewares.CSRFField + `" value="` + template.HTMLEscapeString(token) + `">`)
}

var funcs = template.FuncMap{
	"deref":     func(b *bool) bool { return b != nil && *b },
	"csrfField": func() template.HTML { return "" },
}
