package schema

import (
	"fmt"
	"smart-mockdata/app/dashboard/models"
	"strconv"
	"strings"
)

// Payload 把通用表单的值组装为要提交的记录
func Payload(kind models.Kind, values Values) (any, error) {
	switch kind {
	case models.KindUser:
		return &models.UserInput{
			Username: values["username"],
			Email:    values["email"],
			Password: values["password"],
			Role:     values["role"],
			IsActive: values.Bool("isActive"),
		}, nil
	case models.KindBook:
		published := values.Bool("published")
		in := &models.BookInput{
			Title:       values["title"],
			Author:      values["author"],
			ISBN:        values["isbn"],
			Description: values["description"],
			Published:   &published,
		}
		// categoryId 不直接提交，转为 category: {id}
		if raw := strings.TrimSpace(values["categoryId"]); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 0)
			if err != nil {
				return nil, fmt.Errorf("invalid category id %q: %w", raw, err)
			}
			in.Category = &models.Ref{ID: uint(id)}
		}
		return in, nil
	case models.KindCategory:
		return &models.CategoryInput{
			Name:        values["name"],
			Description: values["description"],
			IsActive:    values.Bool("isActive"),
		}, nil
	case models.KindApi:
		method := values["method"]
		if method == "" {
			method = "GET"
		}
		return &models.ApiEndpointInput{
			Name:         values["name"],
			Description:  values["description"],
			URL:          values["url"],
			Method:       method,
			RequiresAuth: values.Bool("requiresAuth"),
			IsActive:     values.Bool("isActive"),
		}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}
