// Package notice collects transient notifications shown once on the next rendered page.
package notice

import (
	"github.com/google/uuid"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

type Notice struct {
	ID      string
	Level   Level
	Message string
}

type Board struct {
	mu    sync.Mutex
	items []Notice
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) Push(level Level, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = append(b.items, Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
	})
}

func (b *Board) Success(message string) { b.Push(LevelSuccess, message) }
func (b *Board) Info(message string)    { b.Push(LevelInfo, message) }
func (b *Board) Error(message string)   { b.Push(LevelError, message) }

// Drain 取出全部通知并清空，渲染后即消失
func (b *Board) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := b.items
	b.items = nil
	return items
}
