package inits

import (
	"fmt"
	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"smart-mockdata/app/server/models"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Book{},
		&models.ApiEndpoint{},
	)
}

func initData(db *gorm.DB) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 {
		users := []struct {
			username, email, password string
			roles                     []string
		}{
			{"admin", "admin@example.com", "admin123", []string{models.RoleAdmin}},
			{"user", "user@example.com", "user123", []string{models.RoleUser}},
		}
		for _, u := range users {
			// 创建密码
			var password string
			if password, err = argon2id.CreateHash(u.password, argon2id.DefaultParams); err != nil {
				return fmt.Errorf("failed to generate password: %w", err)
			}

			// 插入记录
			if err = db.Create(&models.User{
				Username: u.username,
				Email:    u.email,
				Password: password,
				Roles:    u.roles,
				IsActive: true,
			}).Error; err != nil {
				return fmt.Errorf("failed to create user %s: %w", u.username, err)
			}
		}
	}

	// 初始化分类
	if err = db.Model(&models.Category{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get category count: %w", err)
	} else if counter == 0 {
		if err = db.Create([]*models.Category{
			{Name: "Fiction", Description: "Fictional literature and novels", IsActive: true},
			{Name: "Non-Fiction", Description: "Non-fictional books and educational content", IsActive: true},
			{Name: "Science", Description: "Scientific books and research", IsActive: true},
		}).Error; err != nil {
			return fmt.Errorf("failed to create initial categories: %w", err)
		}
	}

	// 初始化书籍，依赖上面的分类
	if err = db.Model(&models.Book{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get book count: %w", err)
	} else if counter == 0 {
		var fiction, nonFiction models.Category
		if err = db.First(&fiction, "name = ?", "Fiction").Error; err != nil {
			return fmt.Errorf("failed to find category Fiction: %w", err)
		}
		if err = db.First(&nonFiction, "name = ?", "Non-Fiction").Error; err != nil {
			return fmt.Errorf("failed to find category Non-Fiction: %w", err)
		}

		if err = db.Create([]*models.Book{
			{
				Title:       "The Great Gatsby",
				Author:      "F. Scott Fitzgerald",
				Description: "A story of the fabulously wealthy Jay Gatsby and his love for the beautiful Daisy Buchanan.",
				CategoryID:  &fiction.ID,
				Published:   true,
			},
			{
				Title:       "To Kill a Mockingbird",
				Author:      "Harper Lee",
				Description: "The story of young Scout Finch and her father Atticus in a racially divided Alabama town.",
				CategoryID:  &fiction.ID,
				Published:   true,
			},
			{
				Title:       "Sapiens",
				Author:      "Yuval Noah Harari",
				Description: "A brief history of humankind from ancient humans to the present day.",
				CategoryID:  &nonFiction.ID,
				Published:   true,
			},
		}).Error; err != nil {
			return fmt.Errorf("failed to create initial books: %w", err)
		}
	}

	// 初始化 API 记录
	if err = db.Model(&models.ApiEndpoint{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get api endpoint count: %w", err)
	} else if counter == 0 {
		if err = db.Create([]*models.ApiEndpoint{
			{Name: "Sign In", Description: "Exchange credentials for an access token", URL: "/api/auth/signin", Method: "POST", IsActive: true},
			{Name: "List Books", Description: "All books with their categories", URL: "/api/books", Method: "GET", RequiresAuth: true, IsActive: true},
			{Name: "Active Categories", Description: "Categories that are currently active", URL: "/api/categories/active", Method: "GET", RequiresAuth: true, IsActive: true},
			{Name: "Delete Book", Description: "Remove a book by id", URL: "/api/books/{id}", Method: "DELETE", RequiresAuth: true},
		}).Error; err != nil {
			return fmt.Errorf("failed to create initial api endpoints: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
