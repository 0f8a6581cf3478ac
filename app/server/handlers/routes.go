package handlers

import "github.com/labstack/echo/v4"

// RegisterHandlers 挂载全部接口，除认证和健康检查外都需要 auth 中间件
func (a *App) RegisterHandlers(e *echo.Echo, base string, auth echo.MiddlewareFunc) {
	g := e.Group(base)

	g.GET("/healthcheck", a.HealthCheck)
	g.POST("/auth/signin", a.AuthSignIn)
	g.POST("/auth/signup", a.AuthSignUp)

	r := g.Group("", auth)

	r.GET("/users", a.UserList)
	r.POST("/users", a.UserCreate)
	r.GET("/users/:id", a.UserGet)
	r.PUT("/users/:id", a.UserUpdate)
	r.DELETE("/users/:id", a.UserDelete)

	r.GET("/books", a.BookList)
	r.POST("/books", a.BookCreate)
	r.GET("/books/search", a.BookSearch)
	r.GET("/books/search/query", a.BookSearchQuery)
	r.GET("/books/:id", a.BookGet)
	r.PUT("/books/:id", a.BookUpdate)
	r.DELETE("/books/:id", a.BookDelete)

	r.GET("/categories", a.CategoryList)
	r.POST("/categories", a.CategoryCreate)
	r.GET("/categories/active", a.CategoryListActive)
	r.GET("/categories/search", a.CategorySearch)
	r.GET("/categories/search/query", a.CategorySearchQuery)
	r.GET("/categories/:id", a.CategoryGet)
	r.PUT("/categories/:id", a.CategoryUpdate)
	r.DELETE("/categories/:id", a.CategoryDelete)

	r.GET("/apis", a.ApiList)
	r.POST("/apis", a.ApiCreate)
	r.GET("/apis/active", a.ApiListActive)
	r.GET("/apis/method/:method", a.ApiListByMethod)
	r.GET("/apis/:id", a.ApiGet)
	r.PUT("/apis/:id", a.ApiUpdate)
	r.DELETE("/apis/:id", a.ApiDelete)
}
