// Package search holds the search bar state: query text, mode and recent history.
package search

import (
	"context"
	"strings"
	"sync"
)

type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeAdvanced Mode = "advanced"
	ModeQuery    Mode = "query"
)

var Modes = []Mode{ModeBasic, ModeAdvanced, ModeQuery}

func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// HistorySize 最多保留的历史查询条数
const HistorySize = 5

type Bar struct {
	mu      sync.Mutex
	query   string
	mode    Mode
	history []string // 最近的在前，不重复

	onSearch     func(ctx context.Context, query string)
	onModeChange func(ctx context.Context, mode Mode)
}

func NewBar(onSearch func(ctx context.Context, query string), onModeChange func(ctx context.Context, mode Mode)) *Bar {
	return &Bar{
		mode:         ModeBasic,
		onSearch:     onSearch,
		onModeChange: onModeChange,
	}
}

// Commit 提交查询：空白内容忽略，否则写入历史并通知上层（原样传递）
func (b *Bar) Commit(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	b.mu.Lock()
	b.query = text
	history := []string{text}
	for _, h := range b.history {
		if h != text {
			history = append(history, h)
		}
	}
	if len(history) > HistorySize {
		history = history[:HistorySize]
	}
	b.history = history
	b.mu.Unlock()

	b.notify(ctx, text)
	return true
}

// Clear 清空输入，并以空字符串通知上层恢复未过滤的数据
func (b *Bar) Clear(ctx context.Context) {
	b.mu.Lock()
	b.query = ""
	b.mu.Unlock()

	b.notify(ctx, "")
}

// Recall 点击历史记录：重新搜索，历史顺序不变
func (b *Bar) Recall(ctx context.Context, text string) {
	b.mu.Lock()
	b.query = text
	b.mu.Unlock()

	b.notify(ctx, text)
}

// SetMode 切换模式时清空当前输入
func (b *Bar) SetMode(ctx context.Context, mode Mode) {
	b.mu.Lock()
	b.mode = mode
	b.query = ""
	b.mu.Unlock()

	if b.onModeChange != nil {
		b.onModeChange(ctx, mode)
	}
}

// Reset 重置输入，历史和模式保留
func (b *Bar) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.query = ""
}

func (b *Bar) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.query
}

func (b *Bar) Mode() Mode {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.mode
}

func (b *Bar) History() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.history...)
}

func (b *Bar) notify(ctx context.Context, text string) {
	if b.onSearch != nil {
		b.onSearch(ctx, text)
	}
}
