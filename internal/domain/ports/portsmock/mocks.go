// Package portsmock содержит тестовые реализации интерфейсов ports
// на основе testify/mock.
package portsmock

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"usmelt/internal/domain/models"
	"usmelt/internal/domain/ports"
)

var (
	_ ports.PortEnumerator  = (*Enumerator)(nil)
	_ ports.RegistryStorage = (*Storage)(nil)
	_ ports.Operator        = (*Operator)(nil)
	_ ports.Logger          = (*Logger)(nil)
)

// Enumerator - мок ports.PortEnumerator. Ожидания задаются через On("ListPorts").
type Enumerator struct {
	mock.Mock
}

func (m *Enumerator) ListPorts() ([]models.PortObservation, error) {
	args := m.Called()
	obs, _ := args.Get(0).([]models.PortObservation)
	return obs, args.Error(1)
}

// Storage - мок ports.RegistryStorage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Load() (models.Registry, error) {
	args := m.Called()
	reg, _ := args.Get(0).(models.Registry)
	return reg, args.Error(1)
}

func (m *Storage) Save(reg models.Registry) error {
	return m.Called(reg).Error(0)
}

// Operator - мок ports.Operator. Confirm вызывается с текстом подсказки.
type Operator struct {
	mock.Mock
}

func (m *Operator) Confirm(ctx context.Context, msg string) error {
	return m.Called(ctx, msg).Error(0)
}

// Logger запоминает отформатированные сообщения по уровням.
type Logger struct {
	mu    sync.Mutex
	Lines map[string][]string
}

// NewLogger создаёт пустой журнал.
func NewLogger() *Logger {
	return &Logger{Lines: make(map[string][]string)}
}

func (l *Logger) add(level, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines[level] = append(l.Lines[level], fmt.Sprintf(msg, args...))
}

// Get возвращает сообщения указанного уровня.
func (l *Logger) Get(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.Lines[level]...)
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.add("debug", msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.add("info", msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.add("warn", msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.add("error", msg, args...) }
