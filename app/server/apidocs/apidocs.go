package apidocs

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path"
	"slices"

	"github.com/labstack/echo/v4"
)

type Opts func(*config)

// Doc 中间件的配置
type config struct {
	// 文档 JSON 的地址
	SpecURL string
	// 返回 false 时响应 403
	Authorizer func(*http.Request) bool
}

// WithAuthorizer 限制谁可以查看文档
func WithAuthorizer(f func(*http.Request) bool) Opts {
	return func(cfg *config) {
		cfg.Authorizer = f
	}
}

func prepare(basePath string, cfg *config) (string, string) {
	docPath := path.Join(basePath, "apidocs")

	// html
	tmpl := template.Must(template.New("apidoc").Parse(pageTemplate))
	buf := bytes.NewBuffer(nil)
	_ = tmpl.Execute(buf, cfg)

	return docPath, buf.String()
}

// Doc 在 basePath 下提供文档页面和文档 JSON ，其它请求交给后续处理
func Doc(basePath string, apiJSON []byte, opts ...Opts) echo.MiddlewareFunc {
	cfg := &config{
		SpecURL: path.Join(basePath, "apispec.json"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	docPath, uiHTML := prepare(basePath, cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqPath := c.Request().URL.Path
			if slices.Contains([]string{docPath, cfg.SpecURL}, reqPath) {
				if cfg.Authorizer != nil && !cfg.Authorizer(c.Request()) {
					return c.String(http.StatusForbidden, "Forbidden")
				}

				if reqPath == docPath {
					return c.HTML(http.StatusOK, uiHTML)
				}
				return c.JSONBlob(http.StatusOK, apiJSON)
			}

			if next == nil {
				return c.String(http.StatusNotFound, fmt.Sprintf("%q not found", reqPath))
			}

			return next(c)
		}
	}
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>Smart MockData API</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
