package tg5012a

import (
	"context"
	"strconv"
)

// PulseFrequency устанавливает частоту импульсов в Гц.
func (s *Session) PulseFrequency(ctx context.Context, hz float64) error {
	return s.Set(ctx, "PULSFREQ", formatNumber(hz))
}

// PulsePeriod устанавливает период импульсов в секундах.
func (s *Session) PulsePeriod(ctx context.Context, sec float64) error {
	return s.Set(ctx, "PULSPER", formatNumber(sec))
}

// PulseWidth устанавливает длительность импульса в секундах.
func (s *Session) PulseWidth(ctx context.Context, sec float64) error {
	return s.Set(ctx, "PULSWID", formatNumber(sec))
}

// PulseSymmetry устанавливает симметрию импульса в процентах.
func (s *Session) PulseSymmetry(ctx context.Context, percent float64) error {
	if err := validatePercent("pulse symmetry", percent); err != nil {
		return err
	}
	return s.Set(ctx, "PULSSYMM", formatNumber(percent))
}

// PulseEdge устанавливает оба фронта импульса в секундах; 0 - минимально допустимое значение.
func (s *Session) PulseEdge(ctx context.Context, sec float64) error {
	return s.Set(ctx, "PULSEDGE", formatNumber(sec))
}

// PulseRange выбирает диапазон фронтов.
func (s *Session) PulseRange(ctx context.Context, r PulseRange) error {
	if err := r.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "PULSRANGE", strconv.Itoa(int(r)))
}

// PulseRise устанавливает передний фронт в секундах.
func (s *Session) PulseRise(ctx context.Context, sec float64) error {
	return s.Set(ctx, "PULSRISE", formatNumber(sec))
}

// PulseFall устанавливает задний фронт в секундах.
func (s *Session) PulseFall(ctx context.Context, sec float64) error {
	return s.Set(ctx, "PULSFALL", formatNumber(sec))
}

// PulseDelay устанавливает задержку импульса в секундах.
func (s *Session) PulseDelay(ctx context.Context, sec float64) error {
	return s.Set(ctx, "PULSDLY", formatNumber(sec))
}

// PulseSettings - параметры для Pulse.
type PulseSettings struct {
	Frequency float64
	Width     float64
	Rise      float64
	Fall      float64
	High      float64
	Low       float64
	Delay     float64
	Phase     float64
	Output    OutputMode
}

// DefaultPulseSettings: 1 Гц, 100 мс, фронты 1 мс, 0..1 В, выход включён.
func DefaultPulseSettings() PulseSettings {
	return PulseSettings{
		Frequency: 1,
		Width:     0.1,
		Rise:      0.001,
		Fall:      0.001,
		High:      1,
		Low:       0,
		Output:    OutputOn,
	}
}

// Pulse переводит активный канал в режим импульсов с заданными параметрами.
func (s *Session) Pulse(ctx context.Context, p PulseSettings) error {
	if err := p.Output.validate(); err != nil {
		return err
	}
	steps := []func(context.Context) error{
		func(ctx context.Context) error { return s.Wave(ctx, WavePulse) },
		func(ctx context.Context) error { return s.Frequency(ctx, p.Frequency) },
		func(ctx context.Context) error { return s.PulseWidth(ctx, p.Width) },
		func(ctx context.Context) error { return s.PulseRise(ctx, p.Rise) },
		func(ctx context.Context) error { return s.PulseFall(ctx, p.Fall) },
		func(ctx context.Context) error { return s.PulseDelay(ctx, p.Delay) },
		func(ctx context.Context) error { return s.High(ctx, p.High) },
		func(ctx context.Context) error { return s.Low(ctx, p.Low) },
		func(ctx context.Context) error { return s.Phase(ctx, p.Phase) },
		func(ctx context.Context) error { return s.Output(ctx, p.Output) },
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}
