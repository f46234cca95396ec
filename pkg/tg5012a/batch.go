package tg5012a

import (
	"context"
	"fmt"
)

type batchStep func(ctx context.Context, s *Session) error

// ChannelBatch - последовательность канальных команд, закреплённая за одним
// каналом. Аргументы проверяются при добавлении шага; Apply выбирает канал
// один раз и выполняет шаги по порядку. Если хотя бы один шаг не прошёл
// проверку, Apply возвращает ошибку без обмена с прибором.
//
//	err := tg5012a.NewChannelBatch(tg5012a.Channel2).
//		Wave(tg5012a.WaveSine).
//		Frequency(1e3).
//		Amplitude(2).
//		Output(tg5012a.OutputOn).
//		Apply(ctx, session)
type ChannelBatch struct {
	channel Channel
	steps   []batchStep
	err     error
}

// NewChannelBatch создаёт пустую серию команд для канала ch.
func NewChannelBatch(ch Channel) *ChannelBatch {
	return &ChannelBatch{channel: ch, err: ch.validate()}
}

// Channel возвращает канал, за которым закреплена серия.
func (b *ChannelBatch) Channel() Channel { return b.channel }

// Len возвращает число шагов в серии.
func (b *ChannelBatch) Len() int { return len(b.steps) }

// Err возвращает первую ошибку проверки аргументов.
func (b *ChannelBatch) Err() error { return b.err }

func (b *ChannelBatch) add(validation error, step batchStep) *ChannelBatch {
	if b.err == nil && validation != nil {
		b.err = validation
	}
	b.steps = append(b.steps, step)
	return b
}

// Apply выбирает канал и выполняет шаги по порядку, останавливаясь на
// первой ошибке.
func (b *ChannelBatch) Apply(ctx context.Context, s *Session) error {
	if b.err != nil {
		return b.err
	}
	if err := s.SelectChannel(ctx, b.channel); err != nil {
		return err
	}
	for i, step := range b.steps {
		if err := step(ctx, s); err != nil {
			return fmt.Errorf("channel %s step %d: %w", b.channel, i, err)
		}
	}
	return nil
}

// Wave добавляет выбор формы сигнала (WAVE).
func (b *ChannelBatch) Wave(w Waveform) *ChannelBatch {
	return b.add(w.validate(), func(ctx context.Context, s *Session) error { return s.Wave(ctx, w) })
}

// Frequency добавляет установку частоты в Гц (FREQ).
func (b *ChannelBatch) Frequency(hz float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.Frequency(ctx, hz) })
}

// Period добавляет установку периода в секундах (PER).
func (b *ChannelBatch) Period(sec float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.Period(ctx, sec) })
}

// Amplitude добавляет установку амплитуды (AMPL).
func (b *ChannelBatch) Amplitude(v float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.Amplitude(ctx, v) })
}

// Offset добавляет установку постоянного смещения в вольтах (DCOFFS).
func (b *ChannelBatch) Offset(volts float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.Offset(ctx, volts) })
}

// High добавляет установку верхнего уровня (HILVL).
func (b *ChannelBatch) High(volts float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.High(ctx, volts) })
}

// Low добавляет установку нижнего уровня (LOLVL).
func (b *ChannelBatch) Low(volts float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.Low(ctx, volts) })
}

// Output добавляет управление выходом (OUTPUT).
func (b *ChannelBatch) Output(m OutputMode) *ChannelBatch {
	return b.add(m.validate(), func(ctx context.Context, s *Session) error { return s.Output(ctx, m) })
}

// OutputLoad добавляет установку сопротивления нагрузки в омах (ZLOAD).
func (b *ChannelBatch) OutputLoad(ohms float64) *ChannelBatch {
	return b.add(validateLoad(ohms), func(ctx context.Context, s *Session) error { return s.OutputLoad(ctx, ohms) })
}

// SquareSymmetry добавляет симметрию меандра в процентах (SQRSYMM).
func (b *ChannelBatch) SquareSymmetry(percent float64) *ChannelBatch {
	return b.add(validatePercent("square symmetry", percent), func(ctx context.Context, s *Session) error {
		return s.SquareSymmetry(ctx, percent)
	})
}

// RampSymmetry добавляет симметрию пилы в процентах (RMPSYMM).
func (b *ChannelBatch) RampSymmetry(percent float64) *ChannelBatch {
	return b.add(validatePercent("ramp symmetry", percent), func(ctx context.Context, s *Session) error {
		return s.RampSymmetry(ctx, percent)
	})
}

// Phase добавляет установку фазы в градусах (PHASE).
func (b *ChannelBatch) Phase(degrees float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.Phase(ctx, degrees) })
}

// PulsePeriod добавляет период импульсов (PULSPER).
func (b *ChannelBatch) PulsePeriod(sec float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.PulsePeriod(ctx, sec) })
}

// PulseWidth добавляет длительность импульса (PULSWID).
func (b *ChannelBatch) PulseWidth(sec float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.PulseWidth(ctx, sec) })
}

// PulseSymmetry добавляет симметрию импульса в процентах (PULSSYMM).
func (b *ChannelBatch) PulseSymmetry(percent float64) *ChannelBatch {
	return b.add(validatePercent("pulse symmetry", percent), func(ctx context.Context, s *Session) error {
		return s.PulseSymmetry(ctx, percent)
	})
}

// PulseRise добавляет время фронта (PULSRISE).
func (b *ChannelBatch) PulseRise(sec float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.PulseRise(ctx, sec) })
}

// PulseFall добавляет время спада (PULSFALL).
func (b *ChannelBatch) PulseFall(sec float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.PulseFall(ctx, sec) })
}

// PulseDelay добавляет задержку импульса (PULSDLY).
func (b *ChannelBatch) PulseDelay(sec float64) *ChannelBatch {
	return b.add(nil, func(ctx context.Context, s *Session) error { return s.PulseDelay(ctx, sec) })
}

// Burst добавляет режим пакета (BST).
func (b *ChannelBatch) Burst(m BurstMode) *ChannelBatch {
	return b.add(m.validate(), func(ctx context.Context, s *Session) error { return s.Burst(ctx, m) })
}

// BurstCount добавляет число периодов в пакете (BSTCOUNT).
func (b *ChannelBatch) BurstCount(n int) *ChannelBatch {
	return b.add(validateBurstCount(n), func(ctx context.Context, s *Session) error { return s.BurstCount(ctx, n) })
}

// TriggerSource добавляет источник запуска (TRGSRC).
func (b *ChannelBatch) TriggerSource(src TriggerSource) *ChannelBatch {
	return b.add(src.validate(), func(ctx context.Context, s *Session) error { return s.TriggerSource(ctx, src) })
}
