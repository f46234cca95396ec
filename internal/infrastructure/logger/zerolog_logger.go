package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"usmelt/internal/domain/ports"
)

// Config задаёт уровень и приёмник журнала.
type Config struct {
	Level     string `yaml:"level"`
	Component string `yaml:"-"`

	// Output - "stderr" (по умолчанию) или "stdout".
	Output string `yaml:"output"`

	// JSON отключает консольное форматирование.
	JSON bool `yaml:"json"`
}

// ZerologLogger реализует интерфейс ports.Logger поверх zerolog.
type ZerologLogger struct {
	logger zerolog.Logger
}

// New создаёт логгер по конфигурации. Неизвестный уровень - ошибка.
func New(cfg Config) (*ZerologLogger, error) {
	var out io.Writer = os.Stderr
	if strings.EqualFold(cfg.Output, "stdout") {
		out = os.Stdout
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
	}

	return NewWithWriter(out, level, cfg.Component), nil
}

// NewWithWriter создаёт логгер, пишущий в w. Используется в тестах.
func NewWithWriter(w io.Writer, level zerolog.Level, component string) *ZerologLogger {
	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if component != "" {
		ctx = ctx.Str("component", component)
	}
	return &ZerologLogger{logger: ctx.Logger()}
}

// Nop возвращает логгер, отбрасывающий все сообщения.
func Nop() *ZerologLogger {
	return &ZerologLogger{logger: zerolog.Nop()}
}

var _ ports.Logger = (*ZerologLogger)(nil)

// With возвращает дочерний логгер с дополнительным полем.
func (l *ZerologLogger) With(key, value string) *ZerologLogger {
	return &ZerologLogger{logger: l.logger.With().Str(key, value).Logger()}
}

// Driver возвращает функцию для tg5012a.Config.Logger: трассировка обмена
// с прибором пишется на уровне debug.
func (l *ZerologLogger) Driver() func(msg string) {
	return func(msg string) {
		l.logger.Debug().Msg(msg)
	}
}

func (l *ZerologLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug().Msgf(msg, args...)
}

func (l *ZerologLogger) Info(msg string, args ...interface{}) {
	l.logger.Info().Msgf(msg, args...)
}

func (l *ZerologLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn().Msgf(msg, args...)
}

func (l *ZerologLogger) Error(msg string, args ...interface{}) {
	l.logger.Error().Msgf(msg, args...)
}

// Fatal пишет сообщение и завершает программу.
func (l *ZerologLogger) Fatal(msg string, args ...interface{}) {
	l.logger.Fatal().Msgf(msg, args...)
}
