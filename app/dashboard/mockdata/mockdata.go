// Package mockdata synthesizes records for the generic create dialog without contacting the backend.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/schema"
	"strconv"
	"strings"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generate 生成一条随机记录，书籍从已有分类中随机挑选一个
func Generate(kind models.Kind, categories []models.Category, r *rand.Rand) schema.Values {
	switch kind {
	case models.KindUser:
		role := "USER"
		if r.Float64() > 0.8 {
			role = "ADMIN"
		}
		return schema.Values{
			"username": "user_" + suffix(r, 8),
			"email":    fmt.Sprintf("user%d@example.com", r.IntN(1000)),
			"password": "password123",
			"role":     role,
			"isActive": flag(r, 0.3),
		}
	case models.KindBook:
		categoryID := ""
		if len(categories) > 0 {
			categoryID = strconv.FormatUint(uint64(categories[r.IntN(len(categories))].ID), 10)
		}
		return schema.Values{
			"title":       fmt.Sprintf("Book %d", r.IntN(1000)),
			"author":      fmt.Sprintf("Author %d", r.IntN(100)),
			"isbn":        "ISBN-" + strings.ToUpper(suffix(r, 12)),
			"description": "This is a mock description for the generated book.",
			"categoryId":  categoryID,
			"published":   flag(r, 0.5),
		}
	case models.KindCategory:
		return schema.Values{
			"name":        fmt.Sprintf("Category %d", r.IntN(100)),
			"description": "Mock category description",
			"isActive":    flag(r, 0.2),
		}
	case models.KindApi:
		n := r.IntN(1000)
		return schema.Values{
			"name":         fmt.Sprintf("Endpoint %d", n),
			"description":  "Mock endpoint description",
			"url":          fmt.Sprintf("/api/mock/%d", n),
			"method":       models.HTTPMethods[r.IntN(len(models.HTTPMethods))],
			"requiresAuth": flag(r, 0.5),
			"isActive":     flag(r, 0.2),
		}
	}
	return schema.Values{}
}

func suffix(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.IntN(len(alphabet))]
	}
	return string(b)
}

// flag 随机数大于阈值时为 true
func flag(r *rand.Rand, threshold float64) string {
	return strconv.FormatBool(r.Float64() > threshold)
}
