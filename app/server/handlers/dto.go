package handlers

import (
	"slices"
	"smart-mockdata/app/server/models"
	"smart-mockdata/app/server/utils"
	"strings"
)

// 请求与响应结构，字段名与控制台使用的 JSON 保持一致

type Ref struct {
	ID uint `json:"id"`
}

type UserInfo struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Roles    []string `json:"roles"`
	IsActive bool     `json:"isActive"`
}

type UserInfoInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` // 更新时留空表示不修改
	Role     string `json:"role"`
	IsActive *bool  `json:"isActive"`
}

type CategoryInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type CategoryInfoInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

type BookInfo struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	ISBN        string        `json:"isbn,omitempty"`
	Description string        `json:"description"`
	Price       *float64      `json:"price,omitempty"`
	Published   bool          `json:"published"`
	Category    *CategoryInfo `json:"category,omitempty"`
}

type BookInfoInput struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	ISBN        string   `json:"isbn"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Published   *bool    `json:"published"`
	Category    *Ref     `json:"category"`
}

type ApiEndpointInfo struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Method       string `json:"method"`
	RequiresAuth bool   `json:"requiresAuth"`
	IsActive     bool   `json:"isActive"`
}

type ApiEndpointInfoInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Method       string `json:"method"`
	RequiresAuth *bool  `json:"requiresAuth"`
	IsActive     *bool  `json:"isActive"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginToken struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
}

var httpMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"}

func userInfo(user *models.User) UserInfo {
	roles := []string(user.Roles)
	if roles == nil {
		roles = []string{}
	}
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role(),
		Roles:    roles,
		IsActive: user.IsActive,
	}
}

func categoryInfo(category *models.Category) CategoryInfo {
	return CategoryInfo{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
	}
}

func bookInfo(book *models.Book) BookInfo {
	info := BookInfo{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		Price:       book.Price,
		Published:   book.Published,
	}
	if book.ISBN != nil {
		info.ISBN = *book.ISBN
	}
	if book.Category != nil {
		category := categoryInfo(book.Category)
		info.Category = &category
	}
	return info
}

func apiEndpointInfo(api *models.ApiEndpoint) ApiEndpointInfo {
	return ApiEndpointInfo{
		ID:           api.ID,
		Name:         api.Name,
		Description:  api.Description,
		URL:          api.URL,
		Method:       api.Method,
		RequiresAuth: api.RequiresAuth,
		IsActive:     api.IsActive,
	}
}

func mapList[M any, R any](list []M, f func(*M) R) []R {
	res := make([]R, 0, len(list))
	for i := range list {
		res = append(res, f(&list[i]))
	}
	return res
}

// roles 单一角色展开为角色列表，未知角色视为普通用户
func roles(role string) []string {
	if strings.ToUpper(strings.TrimSpace(role)) == models.RoleAdmin {
		return []string{models.RoleAdmin}
	}
	return []string{models.RoleUser}
}

func (req *UserInfoInput) validate(creating bool) string {
	switch {
	case strings.TrimSpace(req.Username) == "":
		return "Username is required"
	case strings.TrimSpace(req.Email) == "":
		return "Email is required"
	case creating && req.Password == "":
		return "Password is required"
	}
	return ""
}

func (req *UserInfoInput) mapFields(user *models.User) {
	user.Username = strings.TrimSpace(req.Username)
	user.Email = strings.TrimSpace(req.Email)
	if req.Role != "" || user.Roles == nil {
		user.Roles = roles(req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
}

func (req *CategoryInfoInput) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "Name is required"
	}
	return ""
}

func (req *CategoryInfoInput) mapFields(category *models.Category) {
	category.Name = strings.TrimSpace(req.Name)
	category.Description = req.Description
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
}

func (req *BookInfoInput) validate() string {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return "Title is required"
	case strings.TrimSpace(req.Author) == "":
		return "Author is required"
	case req.Price != nil && *req.Price < 0:
		return "Price must not be negative"
	}
	return ""
}

func (req *BookInfoInput) mapFields(book *models.Book) {
	book.Title = strings.TrimSpace(req.Title)
	book.Author = strings.TrimSpace(req.Author)
	if isbn := strings.TrimSpace(req.ISBN); isbn != "" {
		book.ISBN = utils.P(isbn)
	} else {
		book.ISBN = nil
	}
	book.Description = req.Description
	book.Price = req.Price
	if req.Published != nil {
		book.Published = *req.Published
	}
	if req.Category != nil && req.Category.ID != 0 {
		book.CategoryID = utils.P(req.Category.ID)
	} else {
		book.CategoryID = nil
	}
	// 分类以 CategoryID 为准，避免关联对象覆盖
	book.Category = nil
}

func (req *ApiEndpointInfoInput) validate() string {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return "Name is required"
	case strings.TrimSpace(req.URL) == "":
		return "URL is required"
	case strings.TrimSpace(req.Method) == "":
		return "HTTP method is required"
	case !slices.Contains(httpMethods, strings.ToUpper(strings.TrimSpace(req.Method))):
		return "Unsupported HTTP method"
	}
	return ""
}

func (req *ApiEndpointInfoInput) mapFields(api *models.ApiEndpoint) {
	api.Name = strings.TrimSpace(req.Name)
	api.Description = req.Description
	api.URL = strings.TrimSpace(req.URL)
	api.Method = strings.ToUpper(strings.TrimSpace(req.Method))
	if req.RequiresAuth != nil {
		api.RequiresAuth = *req.RequiresAuth
	}
	if req.IsActive != nil {
		api.IsActive = *req.IsActive
	}
}
