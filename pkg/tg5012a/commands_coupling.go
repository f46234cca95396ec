package tg5012a

import "context"

// AmplitudeCoupling связывает амплитуды каналов.
func (s *Session) AmplitudeCoupling(ctx context.Context, sw Switch) error {
	if err := sw.validate("amplitude coupling"); err != nil {
		return err
	}
	return s.Set(ctx, "AMPLCPLNG", string(sw))
}

// OutputCoupling связывает включение выходов каналов.
func (s *Session) OutputCoupling(ctx context.Context, sw Switch) error {
	if err := sw.validate("output coupling"); err != nil {
		return err
	}
	return s.Set(ctx, "OUTPUTCPLNG", string(sw))
}

// FrequencyCoupling связывает частоты каналов.
func (s *Session) FrequencyCoupling(ctx context.Context, sw Switch) error {
	if err := sw.validate("frequency coupling"); err != nil {
		return err
	}
	return s.Set(ctx, "FRQCPLSWT", string(sw))
}

// FrequencyCouplingType выбирает связь частот: отношение или смещение.
func (s *Session) FrequencyCouplingType(ctx context.Context, t CouplingType) error {
	if err := t.validate("frequency coupling type"); err != nil {
		return err
	}
	return s.Set(ctx, "FRQCPLTYP", string(t))
}

// FrequencyCouplingRatio задаёт отношение частоты второго канала к первому.
func (s *Session) FrequencyCouplingRatio(ctx context.Context, ratio float64) error {
	return s.Set(ctx, "FRQCPLRAT", formatNumber(ratio))
}

// FrequencyCouplingOffset задаёт смещение частоты второго канала в Гц.
func (s *Session) FrequencyCouplingOffset(ctx context.Context, hz float64) error {
	return s.Set(ctx, "FRQCPLOFS", formatNumber(hz))
}

// PulseFrequencyCoupling связывает частоты импульсов каналов.
func (s *Session) PulseFrequencyCoupling(ctx context.Context, sw Switch) error {
	if err := sw.validate("pulse frequency coupling"); err != nil {
		return err
	}
	return s.Set(ctx, "PLSFRQCPLSWT", string(sw))
}

// PulseFrequencyCouplingType выбирает связь частот импульсов: отношение или смещение.
func (s *Session) PulseFrequencyCouplingType(ctx context.Context, t CouplingType) error {
	if err := t.validate("pulse frequency coupling type"); err != nil {
		return err
	}
	return s.Set(ctx, "PLSFRQCPLTYP", string(t))
}

// PulseFrequencyCouplingRatio задаёт отношение частот импульсов каналов.
func (s *Session) PulseFrequencyCouplingRatio(ctx context.Context, ratio float64) error {
	return s.Set(ctx, "PLSFRQCPLRAT", formatNumber(ratio))
}

// PulseFrequencyCouplingOffset задаёт смещение частоты импульсов второго канала в Гц.
func (s *Session) PulseFrequencyCouplingOffset(ctx context.Context, hz float64) error {
	return s.Set(ctx, "PLSFRQCPLOFS", formatNumber(hz))
}

// Tracking устанавливает слежение второго канала за первым.
func (s *Session) Tracking(ctx context.Context, m TrackingMode) error {
	if err := m.validate(); err != nil {
		return err
	}
	return s.Set(ctx, "TRACKING", string(m))
}
