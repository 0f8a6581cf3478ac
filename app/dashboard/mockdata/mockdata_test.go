package mockdata

import (
	"math/rand/v2"
	"regexp"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/schema"
	"testing"
)

func TestGenerateFillsEveryField(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	cats := []models.Category{{ID: 7, Name: "Fiction"}}

	for _, kind := range models.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			s := schema.Structures(kind, cats)
			values := Generate(kind, cats, r)

			for _, f := range s {
				if _, ok := values[f.Name()]; !ok {
					t.Errorf("field %s not generated", f.Name())
				}
			}
			if missing := s.Missing(values); len(missing) != 0 {
				t.Errorf("required fields left blank: %v", missing)
			}
		})
	}
}

func TestGenerateShapes(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	user := Generate(models.KindUser, nil, r)
	if !regexp.MustCompile(`^user_[0-9a-z]{8}$`).MatchString(user["username"]) {
		t.Errorf("username = %q", user["username"])
	}
	if !regexp.MustCompile(`^user\d+@example\.com$`).MatchString(user["email"]) {
		t.Errorf("email = %q", user["email"])
	}

	book := Generate(models.KindBook, nil, r)
	if !regexp.MustCompile(`^ISBN-[0-9A-Z]{12}$`).MatchString(book["isbn"]) {
		t.Errorf("isbn = %q", book["isbn"])
	}
	if book["categoryId"] != "" {
		t.Errorf("categoryId = %q without categories", book["categoryId"])
	}
}

func TestGenerateBookPicksExistingCategory(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	cats := []models.Category{{ID: 4}, {ID: 9}}

	for i := 0; i < 20; i++ {
		id := Generate(models.KindBook, cats, r)["categoryId"]
		if id != "4" && id != "9" {
			t.Fatalf("categoryId = %q, not an existing category", id)
		}
	}
}
