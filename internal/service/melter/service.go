package melter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usmelt/internal/domain/ports"
	"usmelt/pkg/tg5012a"
)

// ErrInvalidWidth - длительность импульса должна быть положительной.
var ErrInvalidWidth = errors.New("melter: pulse width must be positive")

// Settings - параметры одиночного импульса в режиме пакета.
type Settings struct {
	Channel   tg5012a.Channel
	Period    float64 // с, короткий период позволяет быстро повторить импульс
	Amplitude float64 // В
	Edge      float64 // с, фронт и спад
}

// DefaultSettings: канал 1, период 10 мс, 5 В, фронты 10 нс.
func DefaultSettings() Settings {
	return Settings{
		Channel:   tg5012a.Channel1,
		Period:    10e-3,
		Amplitude: 5,
		Edge:      10e-9,
	}
}

// Service готовит генератор к выдаче одиночных импульсов по ручному
// запуску и выдаёт их.
type Service struct {
	pg  *tg5012a.Session
	log ports.Logger
}

// NewService создает новый экземпляр Service над подключённой сессией.
func NewService(pg *tg5012a.Session, log ports.Logger) *Service {
	return &Service{pg: pg, log: log}
}

// Batch строит серию команд настройки: импульсная форма, пакет из одного
// периода, ручной запуск, выход включён. До запуска импульса не будет.
func Batch(st Settings) *tg5012a.ChannelBatch {
	return tg5012a.NewChannelBatch(st.Channel).
		Wave(tg5012a.WavePulse).
		PulsePeriod(st.Period).
		Amplitude(st.Amplitude).
		Offset(0).
		PulseRise(st.Edge).
		PulseFall(st.Edge).
		Burst(tg5012a.BurstNCycle).
		BurstCount(1).
		TriggerSource(tg5012a.TriggerManual).
		Output(tg5012a.OutputOn)
}

// Setup применяет настройки к генератору.
func (s *Service) Setup(ctx context.Context, st Settings) error {
	if err := Batch(st).Apply(ctx, s.pg); err != nil {
		return fmt.Errorf("melter: setup: %w", err)
	}
	s.log.Info("Pulse generator ready: channel %s, %gV, period %gs", st.Channel, st.Amplitude, st.Period)
	return nil
}

// Fire выбирает канал ch, задаёт на нём длительность импульса и выдаёт
// один импульс. Канал выбирается при каждом вызове.
func (s *Service) Fire(ctx context.Context, ch tg5012a.Channel, width time.Duration) error {
	if width <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidWidth, width)
	}
	s.log.Info("Melting with pulse length: %s on channel %s", width, ch)
	if err := tg5012a.NewChannelBatch(ch).PulseWidth(width.Seconds()).Apply(ctx, s.pg); err != nil {
		return fmt.Errorf("melter: pulse width: %w", err)
	}
	if err := s.pg.Trigger(ctx); err != nil {
		return fmt.Errorf("melter: trigger: %w", err)
	}
	return nil
}
