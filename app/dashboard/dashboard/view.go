package dashboard

import (
	"smart-mockdata/app/dashboard/models"
	"smart-mockdata/app/dashboard/search"
	"strconv"
	"strings"
)

// View 渲染一次页面所需的快照
type View struct {
	Tabs    []Tab
	Active  Tab
	Counts  map[models.Kind]int
	Cards   []Card
	Loading bool
	Banner  string

	Query       string
	Mode        search.Mode
	Modes       []search.Mode
	History     []string
	Placeholder string

	Table Table
}

// Card 顶部的数量统计卡片
type Card struct {
	Tab   Tab
	Count int
}

type Table struct {
	Kind    models.Kind
	Columns []string
	Rows    []Row
	Empty   string // 没有记录时的提示
}

type Row struct {
	ID    uint
	Cells []string
}

func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	tab := TabOf(d.active)
	cards := make([]Card, 0, len(Tabs))
	for _, t := range Tabs {
		cards = append(cards, Card{Tab: t, Count: d.data.Len(t.Kind)})
	}

	return View{
		Tabs:   Tabs,
		Active: tab,
		Counts: map[models.Kind]int{
			models.KindUser:     len(d.data.Users),
			models.KindBook:     len(d.data.Books),
			models.KindCategory: len(d.data.Categories),
			models.KindApi:      len(d.data.Apis),
		},
		Cards:       cards,
		Loading:     d.loading,
		Banner:      d.banner,
		Query:       d.bar.Query(),
		Mode:        d.bar.Mode(),
		Modes:       search.Modes,
		History:     d.bar.History(),
		Placeholder: "Search " + strings.ToLower(tab.Title) + "...",
		Table:       buildTable(d.active, d.displayLocked()),
	}
}

func buildTable(kind models.Kind, r *Records) Table {
	t := Table{Kind: kind, Empty: "No " + string(kind) + "s found"}
	switch kind {
	case models.KindUser:
		t.Columns = []string{"Username", "Email", "Role", "IsActive"}
		for _, u := range r.Users {
			t.Rows = append(t.Rows, Row{ID: u.ID, Cells: []string{text(u.Username), text(u.Email), text(u.Role), yesNo(u.IsActive)}})
		}
	case models.KindBook:
		t.Columns = []string{"Title", "Author", "Isbn", "Description", "Price", "Published", "Category"}
		for _, b := range r.Books {
			category := "N/A"
			if b.Category != nil {
				category = text(b.Category.Name)
			}
			t.Rows = append(t.Rows, Row{ID: b.ID, Cells: []string{
				text(b.Title), text(b.Author), text(b.ISBN), text(b.Description), price(b.Price), yesNo(b.Published), category,
			}})
		}
	case models.KindCategory:
		t.Columns = []string{"Name", "Description", "IsActive"}
		for _, c := range r.Categories {
			t.Rows = append(t.Rows, Row{ID: c.ID, Cells: []string{text(c.Name), text(c.Description), yesNo(c.IsActive)}})
		}
	case models.KindApi:
		t.Columns = []string{"Name", "Description", "Url", "Method", "RequiresAuth", "IsActive"}
		for _, a := range r.Apis {
			t.Rows = append(t.Rows, Row{ID: a.ID, Cells: []string{
				text(a.Name), text(a.Description), text(a.URL), text(a.Method), yesNo(a.RequiresAuth), yesNo(a.IsActive),
			}})
		}
	}
	return t
}

func text(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return "N/A"
	case *b:
		return "Yes"
	default:
		return "No"
	}
}

func price(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
