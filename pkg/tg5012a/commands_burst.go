package tg5012a

import (
	"context"
	"strconv"
)

// Burst устанавливает режим пачки для активного канала.
func (s *Session) Burst(ctx context.Context, m BurstMode) error {
	if err := m.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "BST", string(m))
}

// BurstCount устанавливает число периодов в пачке (1..1000000).
func (s *Session) BurstCount(ctx context.Context, n int) error {
	if err := validateBurstCount(n); err != nil {
		return err
	}
	return s.Set(ctx, "BSTCOUNT", strconv.Itoa(n))
}

// BurstPhase устанавливает начальную фазу пачки в градусах (-360..360).
func (s *Session) BurstPhase(ctx context.Context, degrees float64) error {
	if err := inRange("burst phase", degrees, -360, 360); err != nil {
		return err
	}
	return s.Set(ctx, "BSTPHASE", formatNumber(degrees))
}

// TriggerSource выбирает источник запуска пачки.
func (s *Session) TriggerSource(ctx context.Context, src TriggerSource) error {
	if err := src.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "TRGSRC", string(src))
}

// TriggerPeriod устанавливает период внутреннего запуска в секундах.
func (s *Session) TriggerPeriod(ctx context.Context, sec float64) error {
	return s.Set(ctx, "TRGPER", formatNumber(sec))
}

// TriggerPolarity выбирает фронт внешнего запуска.
func (s *Session) TriggerPolarity(ctx context.Context, p Polarity) error {
	if err := p.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "TRGPOL", string(p))
}

// Trigger выполняет ручной запуск (*TRG).
func (s *Session) Trigger(ctx context.Context) error {
	return s.Set(ctx, "*TRG")
}
