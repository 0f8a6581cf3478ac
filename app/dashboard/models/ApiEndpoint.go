package models

type ApiEndpoint struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url"`
	Method       string `json:"method"`
	RequiresAuth *bool  `json:"requiresAuth,omitempty"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

type ApiEndpointInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Method       string `json:"method"`
	RequiresAuth bool   `json:"requiresAuth"`
	IsActive     bool   `json:"isActive"`
}

// HTTPMethods API 记录允许的请求方法
var HTTPMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"}

func IsHTTPMethod(m string) bool {
	for _, hm := range HTTPMethods {
		if hm == m {
			return true
		}
	}
	return false
}
