package tg5012a

import (
	"context"
	"fmt"
	"strconv"
)

// SelectChannel делает канал активным (CHN). Все канальные команды после
// этого действуют на него, пока канал не будет выбран заново.
func (s *Session) SelectChannel(ctx context.Context, ch Channel) error {
	if err := ch.validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setLocked(ctx, "CHN", []string{ch.String()}); err != nil {
		return err
	}
	s.channel = ch
	return nil
}

// Channel запрашивает активный канал у прибора (CHN?).
func (s *Session) Channel(ctx context.Context) (Channel, error) {
	resp, err := s.Query(ctx, "CHN?")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(resp)
	if err != nil {
		return 0, fmt.Errorf("%w: CHN? returned %q", ErrRead, resp)
	}
	return Channel(n), nil
}

// Wave устанавливает форму сигнала.
func (s *Session) Wave(ctx context.Context, w Waveform) error {
	if err := w.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "WAVE", string(w))
}

// Frequency устанавливает частоту в Гц.
func (s *Session) Frequency(ctx context.Context, hz float64) error {
	return s.Set(ctx, "FREQ", formatNumber(hz))
}

// Period устанавливает период в секундах.
func (s *Session) Period(ctx context.Context, sec float64) error {
	return s.Set(ctx, "PER", formatNumber(sec))
}

// AmplitudeRange устанавливает режим диапазона амплитуды.
func (s *Session) AmplitudeRange(ctx context.Context, r AmplitudeRange) error {
	if err := r.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "AMPLRNG", string(r))
}

// AmplitudeUnit устанавливает единицы амплитуды.
func (s *Session) AmplitudeUnit(ctx context.Context, u AmplitudeUnit) error {
	if err := u.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "AMPUNIT", string(u))
}

// Amplitude устанавливает амплитуду в текущих единицах.
func (s *Session) Amplitude(ctx context.Context, v float64) error {
	return s.Set(ctx, "AMPL", formatNumber(v))
}

// Offset устанавливает постоянное смещение в вольтах.
func (s *Session) Offset(ctx context.Context, volts float64) error {
	return s.Set(ctx, "DCOFFS", formatNumber(volts))
}

// High устанавливает верхний уровень в вольтах.
func (s *Session) High(ctx context.Context, volts float64) error {
	return s.Set(ctx, "HILVL", formatNumber(volts))
}

// Low устанавливает нижний уровень в вольтах.
func (s *Session) Low(ctx context.Context, volts float64) error {
	return s.Set(ctx, "LOLVL", formatNumber(volts))
}

// Output включает, выключает или инвертирует выход.
func (s *Session) Output(ctx context.Context, m OutputMode) error {
	if err := m.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "OUTPUT", string(m))
}

// OutputLoad устанавливает сопротивление нагрузки в омах (1..10000).
func (s *Session) OutputLoad(ctx context.Context, ohms float64) error {
	if err := validateLoad(ohms); err != nil {
		return err
	}
	return s.Set(ctx, "ZLOAD", formatNumber(ohms))
}

// OutputLoadOpen устанавливает нагрузку "холостой ход".
func (s *Session) OutputLoadOpen(ctx context.Context) error {
	return s.Set(ctx, "ZLOAD", "OPEN")
}

// SquareSymmetry устанавливает скважность меандра в процентах.
func (s *Session) SquareSymmetry(ctx context.Context, percent float64) error {
	if err := validatePercent("square symmetry", percent); err != nil {
		return err
	}
	return s.Set(ctx, "SQRSYMM", formatNumber(percent))
}

// RampSymmetry устанавливает симметрию пилы в процентах.
func (s *Session) RampSymmetry(ctx context.Context, percent float64) error {
	if err := validatePercent("ramp symmetry", percent); err != nil {
		return err
	}
	return s.Set(ctx, "RMPSYMM", formatNumber(percent))
}

// SyncOutput включает или выключает выход SYNC.
func (s *Session) SyncOutput(ctx context.Context, sw Switch) error {
	if err := sw.validate("sync output"); err != nil {
		return err
	}
	return s.Set(ctx, "SYNCOUT", string(sw))
}

// SyncType выбирает сигнал на выходе SYNC.
func (s *Session) SyncType(ctx context.Context, t SyncType) error {
	if err := t.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "SYNCTYPE", string(t))
}

// Phase устанавливает фазу в градусах.
func (s *Session) Phase(ctx context.Context, degrees float64) error {
	return s.Set(ctx, "PHASE", formatNumber(degrees))
}

// Align выравнивает нулевую фазу обоих каналов.
func (s *Session) Align(ctx context.Context) error {
	return s.Set(ctx, "ALIGN")
}
