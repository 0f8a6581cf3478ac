// Package dashboard owns the state of the admin console: loaded lists, active tab, search results.
package dashboard

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"math/rand/v2"
	"smart-mockdata/app/dashboard/forms"
	"smart-mockdata/app/dashboard/mockdata"
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/schema"
	"smart-mockdata/app/dashboard/search"
	"strings"
	"sync"
	"time"
)

// BannerLoadFailed 加载失败时页面顶部的提示
const BannerLoadFailed = "Failed to load data. Please check your connection and try again."

// Backend 控制台用到的后端接口
type Backend interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListApis(ctx context.Context) ([]models.ApiEndpoint, error)

	CreateUser(ctx context.Context, in *models.UserInput) (*models.User, error)
	CreateBook(ctx context.Context, in *models.BookInput) (*models.Book, error)
	CreateCategory(ctx context.Context, in *models.CategoryInput) (*models.Category, error)
	CreateApi(ctx context.Context, in *models.ApiEndpointInput) (*models.ApiEndpoint, error)

	DeleteUser(ctx context.Context, id uint) error
	DeleteBook(ctx context.Context, id uint) error
	DeleteCategory(ctx context.Context, id uint) error
	DeleteApi(ctx context.Context, id uint) error

	SearchBooks(ctx context.Context, params models.BookSearch) ([]models.Book, error)
	SearchBooksByQuery(ctx context.Context, q string) ([]models.Book, error)
	SearchCategories(ctx context.Context, name string) ([]models.Category, error)
	SearchCategoriesByQuery(ctx context.Context, q string) ([]models.Category, error)
	ListApisByMethod(ctx context.Context, method string) ([]models.ApiEndpoint, error)
}

// Notifier 向页面推送提示
type Notifier interface {
	Success(message string)
	Info(message string)
	Error(message string)
}

// Dashboard 保存控制台的全部状态，可被多个请求并发访问
type Dashboard struct {
	l   *zap.Logger
	b   Backend
	n   Notifier
	bar *search.Bar

	mu      sync.Mutex
	rng     *rand.Rand
	active  models.Kind
	data    Records
	loading bool
	loaded  bool
	banner  string

	query   string  // 当前生效的搜索内容
	results Records // 搜索结果，只有当前标签页对应的列表有意义

	// 每次加载和搜索都领取一个序号，完成时序号已过期的结果直接丢弃
	fetchGen  uint64
	searchGen uint64
}

// New 创建控制台，默认显示用户列表，数据在第一次 Refresh 时拉取
func New(l *zap.Logger, b Backend, n Notifier) *Dashboard {
	seed := uint64(time.Now().UnixNano())
	d := &Dashboard{
		l:      l,
		b:      b,
		n:      n,
		rng:    rand.New(rand.NewPCG(seed, seed>>32)),
		active: models.KindUser,
	}
	d.bar = search.NewBar(d.Search, d.onModeChange)
	return d
}

func (d *Dashboard) Bar() *search.Bar {
	return d.bar
}

// Refresh 并行加载四个列表，任意一个失败则全部不更新
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.fetchGen++
	gen := d.fetchGen
	d.loading = true
	d.banner = ""
	d.mu.Unlock()

	var next Records
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		next.Users, err = d.b.ListUsers(gctx)
		return
	})
	g.Go(func() (err error) {
		next.Books, err = d.b.ListBooks(gctx)
		return
	})
	g.Go(func() (err error) {
		next.Categories, err = d.b.ListCategories(gctx)
		return
	})
	g.Go(func() (err error) {
		next.Apis, err = d.b.ListApis(gctx)
		return
	})
	err := g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.fetchGen {
		d.l.Debug("discarding stale fetch result", zap.Uint64("generation", gen))
		return nil
	}
	d.loading = false

	if err != nil {
		d.l.Error("error fetching data", zap.Error(err))
		d.banner = BannerLoadFailed
		d.n.Error("Failed to load data")
		return err
	}

	d.data = next
	d.loaded = true
	d.n.Success("Data loaded successfully!")
	return nil
}

// Loaded 至少成功加载过一次
func (d *Dashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.loaded
}

func (d *Dashboard) Active() models.Kind {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.active
}

// SetTab 切换标签页，同时清空搜索
func (d *Dashboard) SetTab(kind models.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.active = kind
	d.clearSearchLocked()
	d.bar.Reset()
}

func (d *Dashboard) onModeChange(_ context.Context, _ search.Mode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearSearchLocked()
}

func (d *Dashboard) clearSearchLocked() {
	d.searchGen++
	d.query = ""
	d.results = Records{}
}

// Search 按当前模式和标签页分发搜索请求，空白内容恢复未过滤的列表
func (d *Dashboard) Search(ctx context.Context, q string) {
	d.mu.Lock()
	d.clearSearchLocked()
	gen := d.searchGen
	d.query = q
	kind := d.active
	mode := d.bar.Mode()
	d.mu.Unlock()

	if strings.TrimSpace(q) == "" {
		return
	}

	res, handled, err := d.dispatch(ctx, mode, kind, q)

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.searchGen {
		d.l.Debug("discarding stale search result", zap.String("query", q))
		return
	}

	if err != nil {
		d.l.Error("search error", zap.String("mode", string(mode)), zap.String("kind", string(kind)), zap.String("query", q), zap.Error(err))
		d.n.Error("Search failed. Please try again.")
		d.results = Records{}
		return
	}

	d.results = res
	if handled && res.Len(kind) == 0 {
		d.n.Info("No results found for your search query")
	}
}

// dispatch 不支持的组合返回空结果且 handled 为 false
func (d *Dashboard) dispatch(ctx context.Context, mode search.Mode, kind models.Kind, q string) (res Records, handled bool, err error) {
	switch mode {
	case search.ModeBasic:
		switch kind {
		case models.KindBook:
			res.Books, err = d.b.SearchBooks(ctx, models.BookSearch{Title: q})
			return res, true, err
		case models.KindCategory:
			res.Categories, err = d.b.SearchCategories(ctx, q)
			return res, true, err
		}
	case search.ModeAdvanced:
		switch kind {
		case models.KindBook:
			res.Books, err = d.b.SearchBooks(ctx, models.BookSearch{Title: q, Author: q})
			return res, true, err
		case models.KindCategory:
			res.Categories, err = d.b.SearchCategories(ctx, q)
			return res, true, err
		}
	case search.ModeQuery:
		switch kind {
		case models.KindBook:
			res.Books, err = d.b.SearchBooksByQuery(ctx, q)
			return res, true, err
		case models.KindCategory:
			res.Categories, err = d.b.SearchCategoriesByQuery(ctx, q)
			return res, true, err
		case models.KindApi:
			res.Apis, err = d.b.ListApisByMethod(ctx, strings.ToUpper(q))
			return res, true, err
		}
	}
	return res, false, nil
}

// displayLocked 有搜索内容时显示搜索结果，否则显示完整列表
func (d *Dashboard) displayLocked() *Records {
	if strings.TrimSpace(d.query) != "" {
		return &d.results
	}
	return &d.data
}

// Delete 删除成功后只从内存列表中移除该记录，不重新加载
func (d *Dashboard) Delete(ctx context.Context, kind models.Kind, id uint) error {
	var err error
	switch kind {
	case models.KindUser:
		err = d.b.DeleteUser(ctx, id)
	case models.KindBook:
		err = d.b.DeleteBook(ctx, id)
	case models.KindCategory:
		err = d.b.DeleteCategory(ctx, id)
	case models.KindApi:
		err = d.b.DeleteApi(ctx, id)
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
	if err != nil {
		d.l.Error("error deleting item", zap.String("kind", string(kind)), zap.Uint("id", id), zap.Error(err))
		d.n.Error("Failed to delete " + string(kind))
		return err
	}

	d.mu.Lock()
	d.data.remove(kind, id)
	d.results.remove(kind, id)
	d.mu.Unlock()

	d.n.Success(Label(kind) + " deleted successfully!")
	return nil
}

// Structure 通用对话框的字段结构
func (d *Dashboard) Structure(kind models.Kind) schema.Structure {
	d.mu.Lock()
	defer d.mu.Unlock()

	return schema.Structures(kind, d.data.Categories)
}

// MockValues 为通用对话框生成一条随机记录，不访问后端
func (d *Dashboard) MockValues(kind models.Kind) schema.Values {
	d.mu.Lock()
	values := mockdata.Generate(kind, d.data.Categories, d.rng)
	d.mu.Unlock()

	d.n.Success("AI mock data generated!")
	return values
}

// ValidateDialog 检查通用对话框的必填字段
func (d *Dashboard) ValidateDialog(kind models.Kind, values schema.Values) forms.Errors {
	errs := forms.Errors{}
	s := d.Structure(kind)
	for _, name := range s.Missing(values) {
		for _, f := range s {
			if f.Name() == name {
				errs[name] = f.Label() + " is required"
			}
		}
	}
	return errs
}

// CreateFromDialog 提交通用对话框，成功后重新加载全部数据
func (d *Dashboard) CreateFromDialog(ctx context.Context, kind models.Kind, values schema.Values) error {
	if errs := d.ValidateDialog(kind, values); len(errs) > 0 {
		return forms.ErrInvalid
	}

	payload, err := schema.Payload(kind, values)
	if err != nil {
		d.n.Error("Failed to create " + string(kind))
		return fmt.Errorf("%w: %v", forms.ErrInvalid, err)
	}

	switch in := payload.(type) {
	case *models.UserInput:
		_, err = d.b.CreateUser(ctx, in)
	case *models.BookInput:
		_, err = d.b.CreateBook(ctx, in)
	case *models.CategoryInput:
		_, err = d.b.CreateCategory(ctx, in)
	case *models.ApiEndpointInput:
		_, err = d.b.CreateApi(ctx, in)
	}
	if err != nil {
		d.l.Error("error creating item", zap.String("kind", string(kind)), zap.Error(err))
		d.n.Error("Failed to create " + string(kind))
		return err
	}

	d.n.Success(Label(kind) + " created successfully!")
	_ = d.Refresh(ctx)
	return nil
}

// OnFormSuccess 专用表单提交成功后的回调
func (d *Dashboard) OnFormSuccess(ctx context.Context) {
	_ = d.Refresh(ctx)
}

func (d *Dashboard) FindUser(id uint) (*models.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return find([][]models.User{d.data.Users, d.results.Users}, func(u models.User) bool { return u.ID == id })
}

func (d *Dashboard) FindBook(id uint) (*models.Book, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return find([][]models.Book{d.data.Books, d.results.Books}, func(b models.Book) bool { return b.ID == id })
}

func (d *Dashboard) FindCategory(id uint) (*models.Category, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return find([][]models.Category{d.data.Categories, d.results.Categories}, func(c models.Category) bool { return c.ID == id })
}

func (d *Dashboard) FindApi(id uint) (*models.ApiEndpoint, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return find([][]models.ApiEndpoint{d.data.Apis, d.results.Apis}, func(a models.ApiEndpoint) bool { return a.ID == id })
}

// Reset 登出后清空所有状态，进行中的请求结果会被丢弃
func (d *Dashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.fetchGen++
	d.clearSearchLocked()
	d.active = models.KindUser
	d.data = Records{}
	d.loading = false
	d.loaded = false
	d.banner = ""
	d.bar.Reset()
}
