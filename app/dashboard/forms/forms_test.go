package forms

import (
	"context"
	"errors"
	"go.uber.org/zap"
	"net/url"
	"smart-mockdata/app/dashboard/models"
	"testing"
)

type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(m string) { r.successes = append(r.successes, m) }
func (r *recorder) Error(m string)   { r.errors = append(r.errors, m) }

type fakeService struct {
	categories    []models.Category
	categoriesErr error
	saveErr       error

	calls    int
	book     *models.BookInput
	category *models.CategoryInput
	api      *models.ApiEndpointInput
	user     *models.UserInput
	updated  uint
}

func (s *fakeService) ListCategories(context.Context) ([]models.Category, error) {
	return s.categories, s.categoriesErr
}

func (s *fakeService) CreateBook(_ context.Context, in *models.BookInput) (*models.Book, error) {
	s.calls++
	s.book = in
	return &models.Book{}, s.saveErr
}

func (s *fakeService) UpdateBook(_ context.Context, id uint, in *models.BookInput) (*models.Book, error) {
	s.calls++
	s.book, s.updated = in, id
	return &models.Book{}, s.saveErr
}

func (s *fakeService) CreateCategory(_ context.Context, in *models.CategoryInput) (*models.Category, error) {
	s.calls++
	s.category = in
	return &models.Category{}, s.saveErr
}

func (s *fakeService) UpdateCategory(_ context.Context, id uint, in *models.CategoryInput) (*models.Category, error) {
	s.calls++
	s.category, s.updated = in, id
	return &models.Category{}, s.saveErr
}

func (s *fakeService) CreateApi(_ context.Context, in *models.ApiEndpointInput) (*models.ApiEndpoint, error) {
	s.calls++
	s.api = in
	return &models.ApiEndpoint{}, s.saveErr
}

func (s *fakeService) UpdateApi(_ context.Context, id uint, in *models.ApiEndpointInput) (*models.ApiEndpoint, error) {
	s.calls++
	s.api, s.updated = in, id
	return &models.ApiEndpoint{}, s.saveErr
}

func (s *fakeService) CreateUser(_ context.Context, in *models.UserInput) (*models.User, error) {
	s.calls++
	s.user = in
	return &models.User{}, s.saveErr
}

func (s *fakeService) UpdateUser(_ context.Context, id uint, in *models.UserInput) (*models.User, error) {
	s.calls++
	s.user, s.updated = in, id
	return &models.User{}, s.saveErr
}

func TestBookFormOpenPopulates(t *testing.T) {
	price := 12.5
	svc := &fakeService{categories: []models.Category{{ID: 2, Name: "Fiction"}}}
	f := NewBookForm(zap.NewNop(), svc, &recorder{})

	f.Open(context.Background(), &models.Book{ID: 5, Title: "Dune", Author: "Herbert", Price: &price, Category: &models.Category{ID: 2}})

	if !f.Editing() || f.ID() != 5 {
		t.Errorf("editing = %v, id = %d", f.Editing(), f.ID())
	}
	if f.Title != "Dune" || f.Price != "12.5" || f.CategoryID != "2" || f.ISBN != "" {
		t.Errorf("populated form = %+v", f)
	}
	if len(f.Categories) != 1 {
		t.Errorf("categories not loaded")
	}

	f.Open(context.Background(), nil)
	if f.Editing() || f.Title != "" || f.Price != "" {
		t.Errorf("reset form = %+v", f)
	}
}

func TestBookFormOpensWhenCategoriesFail(t *testing.T) {
	n := &recorder{}
	f := NewBookForm(zap.NewNop(), &fakeService{categoriesErr: errors.New("boom")}, n)

	f.Open(context.Background(), &models.Book{ID: 1, Title: "Dune"})

	if f.Title != "Dune" {
		t.Error("form did not open")
	}
	if len(n.errors) != 1 || n.errors[0] != "Failed to load categories" {
		t.Errorf("notices = %v", n.errors)
	}
}

func TestBookFormInvalidDoesNotCallBackend(t *testing.T) {
	svc := &fakeService{}
	f := NewBookForm(zap.NewNop(), svc, &recorder{})
	f.Open(context.Background(), nil)
	f.Set(url.Values{"title": {"Dune"}, "author": {" "}, "isbn": {"x"}, "price": {"cheap"}})

	err := f.Submit(context.Background(), nil)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	if svc.calls != 0 {
		t.Error("backend called with an invalid form")
	}
	if f.Errors["author"] != "Author is required" || f.Errors["price"] != "Price must be a number" {
		t.Errorf("errors = %v", f.Errors)
	}
}

func TestBookFormSubmit(t *testing.T) {
	svc := &fakeService{}
	n := &recorder{}
	refreshed := false
	f := NewBookForm(zap.NewNop(), svc, n)
	f.Open(context.Background(), nil)
	f.Set(url.Values{"title": {"Dune"}, "author": {"Herbert"}, "isbn": {"978"}, "price": {""}, "categoryId": {"3"}})

	if err := f.Submit(context.Background(), func(context.Context) { refreshed = true }); err != nil {
		t.Fatal(err)
	}

	if svc.book.Price != nil {
		t.Errorf("empty price sent as %v", *svc.book.Price)
	}
	if svc.book.Category == nil || svc.book.Category.ID != 3 {
		t.Errorf("category = %+v", svc.book.Category)
	}
	if !refreshed {
		t.Error("success callback not run")
	}
	if len(n.successes) != 1 || n.successes[0] != "Book created successfully!" {
		t.Errorf("notices = %v", n.successes)
	}
}

func TestBookFormUpdateFailure(t *testing.T) {
	svc := &fakeService{saveErr: errors.New("500")}
	n := &recorder{}
	refreshed := false
	f := NewBookForm(zap.NewNop(), svc, n)
	f.Open(context.Background(), &models.Book{ID: 9, Title: "a", Author: "b", ISBN: "c"})

	if err := f.Submit(context.Background(), func(context.Context) { refreshed = true }); err == nil {
		t.Fatal("expected an error")
	}
	if svc.updated != 9 {
		t.Errorf("updated id = %d", svc.updated)
	}
	if refreshed {
		t.Error("success callback run after failure")
	}
	if len(n.errors) != 1 || n.errors[0] != "Failed to update book" {
		t.Errorf("notices = %v", n.errors)
	}
}

func TestCategoryFormDefaults(t *testing.T) {
	f := NewCategoryForm(zap.NewNop(), &fakeService{}, &recorder{})

	f.Open(context.Background(), nil)
	if !f.IsActive {
		t.Error("new category should default to active")
	}

	f.Open(context.Background(), &models.Category{ID: 1, Name: "Fiction"})
	if f.IsActive {
		t.Error("missing isActive on an existing record should be false")
	}
	if f.Description != "" {
		t.Errorf("description = %q", f.Description)
	}
}

func TestCategoryFormRequiresName(t *testing.T) {
	svc := &fakeService{}
	f := NewCategoryForm(zap.NewNop(), svc, &recorder{})
	f.Open(context.Background(), nil)
	f.Set(url.Values{"name": {""}})

	if err := f.Submit(context.Background(), nil); !errors.Is(err, ErrInvalid) || svc.calls != 0 {
		t.Errorf("err = %v, calls = %d", err, svc.calls)
	}
}

func TestApiFormMethod(t *testing.T) {
	svc := &fakeService{}
	f := NewApiForm(zap.NewNop(), svc, &recorder{})

	f.Open(context.Background(), &models.ApiEndpoint{ID: 2, Name: "list", URL: "/x"})
	if f.Method != "GET" {
		t.Errorf("missing method should default to GET, got %q", f.Method)
	}

	f.Set(url.Values{"name": {"list"}, "url": {"/x"}, "method": {"TRACE"}})
	if f.Validate() {
		t.Error("TRACE accepted")
	}

	f.Set(url.Values{"name": {"list"}, "url": {"/x"}, "method": {"patch"}, "isActive": {"on"}})
	if err := f.Submit(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if svc.api.Method != "PATCH" || !svc.api.IsActive || svc.updated != 2 {
		t.Errorf("payload = %+v, updated = %d", svc.api, svc.updated)
	}
}

func TestUserFormPasswordOnCreateOnly(t *testing.T) {
	f := NewUserForm(zap.NewNop(), &fakeService{}, &recorder{})

	f.Open(context.Background(), nil)
	f.Set(url.Values{"username": {"alice"}, "email": {"alice@example.com"}})
	if f.Validate() || !f.Errors.Has("password") {
		t.Errorf("create without password accepted: %v", f.Errors)
	}

	f.Open(context.Background(), &models.User{ID: 3, Username: "alice", Email: "alice@example.com"})
	f.Set(url.Values{"username": {"alice"}, "email": {"alice@example.com"}})
	if !f.Validate() {
		t.Errorf("edit without password rejected: %v", f.Errors)
	}

	f.Set(url.Values{"username": {"alice"}, "email": {"not-an-email"}})
	if f.Validate() || f.Errors["email"] != "Email is invalid" {
		t.Errorf("errors = %v", f.Errors)
	}
}

func TestLoginFormValidation(t *testing.T) {
	tests := []struct {
		username, password string
		wantUser, wantPass string
	}{
		{"", "", "Username is required", "Password is required"},
		{"ab", "12345", "Username must be at least 3 characters", "Password must be at least 6 characters"},
		{"abc", "123456", "", ""},
	}

	for _, tt := range tests {
		f := &LoginForm{}
		f.Set(url.Values{"username": {tt.username}, "password": {tt.password}})
		ok := f.Validate()

		if f.Errors["username"] != tt.wantUser || f.Errors["password"] != tt.wantPass {
			t.Errorf("%q/%q: errors = %v", tt.username, tt.password, f.Errors)
		}
		if ok != (tt.wantUser == "" && tt.wantPass == "") {
			t.Errorf("%q/%q: Validate = %v", tt.username, tt.password, ok)
		}
	}
}
