package tg5012a

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidArgumentsPerformNoWrites(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		call func(s *Session) error
	}{
		{"channel 0", func(s *Session) error { return s.SelectChannel(ctx, 0) }},
		{"channel 3", func(s *Session) error { return s.SelectChannel(ctx, 3) }},
		{"waveform", func(s *Session) error { return s.Wave(ctx, "SAWTOOTH") }},
		{"lower-case waveform", func(s *Session) error { return s.Wave(ctx, "sine") }},
		{"amplitude range", func(s *Session) error { return s.AmplitudeRange(ctx, "FIXED") }},
		{"amplitude unit", func(s *Session) error { return s.AmplitudeUnit(ctx, "MV") }},
		{"output", func(s *Session) error { return s.Output(ctx, "TOGGLE") }},
		{"output load low", func(s *Session) error { return s.OutputLoad(ctx, 0.5) }},
		{"output load high", func(s *Session) error { return s.OutputLoad(ctx, 10001) }},
		{"output load NaN", func(s *Session) error { return s.OutputLoad(ctx, math.NaN()) }},
		{"sync output", func(s *Session) error { return s.SyncOutput(ctx, "MAYBE") }},
		{"sync type", func(s *Session) error { return s.SyncType(ctx, "GATE") }},
		{"pulse range 0", func(s *Session) error { return s.PulseRange(ctx, 0) }},
		{"pulse range 4", func(s *Session) error { return s.PulseRange(ctx, 4) }},
		{"amplitude coupling", func(s *Session) error { return s.AmplitudeCoupling(ctx, "1") }},
		{"output coupling", func(s *Session) error { return s.OutputCoupling(ctx, "") }},
		{"frequency coupling", func(s *Session) error { return s.FrequencyCoupling(ctx, "YES") }},
		{"frequency coupling type", func(s *Session) error { return s.FrequencyCouplingType(ctx, "SUM") }},
		{"pulse frequency coupling", func(s *Session) error { return s.PulseFrequencyCoupling(ctx, "on") }},
		{"pulse frequency coupling type", func(s *Session) error { return s.PulseFrequencyCouplingType(ctx, "DIFF") }},
		{"tracking", func(s *Session) error { return s.Tracking(ctx, "MIRROR") }},
		{"burst mode", func(s *Session) error { return s.Burst(ctx, "SINGLE") }},
		{"burst count", func(s *Session) error { return s.BurstCount(ctx, 0) }},
		{"burst phase", func(s *Session) error { return s.BurstPhase(ctx, 361) }},
		{"trigger source", func(s *Session) error { return s.TriggerSource(ctx, "BUS") }},
		{"trigger polarity", func(s *Session) error { return s.TriggerPolarity(ctx, "UP") }},
		{"save slot", func(s *Session) error { return s.SaveSetup(ctx, 10) }},
		{"recall slot", func(s *Session) error { return s.RecallSetup(ctx, -1) }},
		{"pulse output", func(s *Session) error {
			p := DefaultPulseSettings()
			p.Output = "HIGH"
			return s.Pulse(ctx, p)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fake := connectFake(t, checkedConfig())

			err := tt.call(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Empty(t, fake.Written)
		})
	}
}

func TestSymmetryBoundaries(t *testing.T) {
	ctx := context.Background()
	setters := map[string]func(s *Session, v float64) error{
		"SQRSYMM":  func(s *Session, v float64) error { return s.SquareSymmetry(ctx, v) },
		"RMPSYMM":  func(s *Session, v float64) error { return s.RampSymmetry(ctx, v) },
		"PULSSYMM": func(s *Session, v float64) error { return s.PulseSymmetry(ctx, v) },
	}

	for cmd, set := range setters {
		t.Run(cmd, func(t *testing.T) {
			s, fake := connectFake(t, Config{})

			require.NoError(t, set(s, 0))
			require.NoError(t, set(s, 100))
			assert.ErrorIs(t, set(s, -1), ErrInvalidArgument)
			assert.ErrorIs(t, set(s, 101), ErrInvalidArgument)
			assert.Equal(t, []string{cmd + " 0", cmd + " 100"}, fake.Written)
		})
	}
}

func TestOutputLoadBoundaries(t *testing.T) {
	ctx := context.Background()
	s, fake := connectFake(t, Config{})

	require.NoError(t, s.OutputLoad(ctx, 1))
	require.NoError(t, s.OutputLoad(ctx, 10000))
	require.NoError(t, s.OutputLoad(ctx, 50))
	require.NoError(t, s.OutputLoadOpen(ctx))
	assert.Equal(t, []string{"ZLOAD 1", "ZLOAD 10000", "ZLOAD 50", "ZLOAD OPEN"}, fake.Written)
}

func TestTypedCommandLines(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		call func(s *Session) error
		want string
	}{
		{func(s *Session) error { return s.Wave(ctx, WaveTriangle) }, "WAVE TRIANG"},
		{func(s *Session) error { return s.Frequency(ctx, 1e3) }, "FREQ 1000"},
		{func(s *Session) error { return s.Period(ctx, 10e-3) }, "PER 0.01"},
		{func(s *Session) error { return s.AmplitudeRange(ctx, RangeHold) }, "AMPLRNG HOLD"},
		{func(s *Session) error { return s.AmplitudeUnit(ctx, UnitDbm) }, "AMPUNIT DBM"},
		{func(s *Session) error { return s.Amplitude(ctx, 2.5) }, "AMPL 2.5"},
		{func(s *Session) error { return s.Offset(ctx, -0.5) }, "DCOFFS -0.5"},
		{func(s *Session) error { return s.High(ctx, 5) }, "HILVL 5"},
		{func(s *Session) error { return s.Low(ctx, 0) }, "LOLVL 0"},
		{func(s *Session) error { return s.Output(ctx, OutputInvert) }, "OUTPUT INVERT"},
		{func(s *Session) error { return s.SyncOutput(ctx, On) }, "SYNCOUT ON"},
		{func(s *Session) error { return s.SyncType(ctx, SyncBurst) }, "SYNCTYPE BURST"},
		{func(s *Session) error { return s.Phase(ctx, 90) }, "PHASE 90"},
		{func(s *Session) error { return s.Align(ctx) }, "ALIGN"},
		{func(s *Session) error { return s.PulseFrequency(ctx, 100) }, "PULSFREQ 100"},
		{func(s *Session) error { return s.PulsePeriod(ctx, 10e-3) }, "PULSPER 0.01"},
		{func(s *Session) error { return s.PulseWidth(ctx, 20e-6) }, "PULSWID 2e-05"},
		{func(s *Session) error { return s.PulseEdge(ctx, 0) }, "PULSEDGE 0"},
		{func(s *Session) error { return s.PulseRange(ctx, PulseRangeSub) }, "PULSRANGE 2"},
		{func(s *Session) error { return s.PulseRise(ctx, 10e-9) }, "PULSRISE 1e-08"},
		{func(s *Session) error { return s.PulseFall(ctx, 10e-9) }, "PULSFALL 1e-08"},
		{func(s *Session) error { return s.PulseDelay(ctx, 0.001) }, "PULSDLY 0.001"},
		{func(s *Session) error { return s.AmplitudeCoupling(ctx, On) }, "AMPLCPLNG ON"},
		{func(s *Session) error { return s.OutputCoupling(ctx, Off) }, "OUTPUTCPLNG OFF"},
		{func(s *Session) error { return s.FrequencyCoupling(ctx, On) }, "FRQCPLSWT ON"},
		{func(s *Session) error { return s.FrequencyCouplingType(ctx, CouplingOffset) }, "FRQCPLTYP OFFSET"},
		{func(s *Session) error { return s.FrequencyCouplingRatio(ctx, 2) }, "FRQCPLRAT 2"},
		{func(s *Session) error { return s.FrequencyCouplingOffset(ctx, 10) }, "FRQCPLOFS 10"},
		{func(s *Session) error { return s.PulseFrequencyCoupling(ctx, Off) }, "PLSFRQCPLSWT OFF"},
		{func(s *Session) error { return s.PulseFrequencyCouplingType(ctx, CouplingRatio) }, "PLSFRQCPLTYP RATIO"},
		{func(s *Session) error { return s.PulseFrequencyCouplingRatio(ctx, 0.5) }, "PLSFRQCPLRAT 0.5"},
		{func(s *Session) error { return s.PulseFrequencyCouplingOffset(ctx, 1) }, "PLSFRQCPLOFS 1"},
		{func(s *Session) error { return s.Tracking(ctx, TrackingEqual) }, "TRACKING EQUAL"},
		{func(s *Session) error { return s.Burst(ctx, BurstNCycle) }, "BST NCYC"},
		{func(s *Session) error { return s.BurstCount(ctx, 1) }, "BSTCOUNT 1"},
		{func(s *Session) error { return s.BurstPhase(ctx, -90) }, "BSTPHASE -90"},
		{func(s *Session) error { return s.TriggerSource(ctx, TriggerManual) }, "TRGSRC MAN"},
		{func(s *Session) error { return s.TriggerPeriod(ctx, 0.1) }, "TRGPER 0.1"},
		{func(s *Session) error { return s.TriggerPolarity(ctx, PolarityNegative) }, "TRGPOL NEG"},
		{func(s *Session) error { return s.Trigger(ctx) }, "*TRG"},
		{func(s *Session) error { return s.ClearStatus(ctx) }, "*CLS"},
		{func(s *Session) error { return s.Reset(ctx) }, "*RST"},
		{func(s *Session) error { return s.SaveSetup(ctx, 1) }, "*SAV 1"},
		{func(s *Session) error { return s.RecallSetup(ctx, 9) }, "*RCL 9"},
		{func(s *Session) error { return s.Beep(ctx) }, "BEEP"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, fake := connectFake(t, Config{})
			require.NoError(t, tt.call(s))
			assert.Equal(t, []string{tt.want}, fake.Written)
		})
	}
}

func TestWaitForCompletion(t *testing.T) {
	s, fake := connectFake(t, Config{})
	fake.Replies["*OPC?"] = "1"

	resp, err := s.WaitForCompletion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", resp)
}

func TestPulseSequence(t *testing.T) {
	s, fake := connectFake(t, Config{})

	p := DefaultPulseSettings()
	p.Width = 20e-6
	require.NoError(t, s.Pulse(context.Background(), p))

	assert.Equal(t, []string{
		"WAVE PULSE",
		"FREQ 1",
		"PULSWID 2e-05",
		"PULSRISE 0.001",
		"PULSFALL 0.001",
		"PULSDLY 0",
		"HILVL 1",
		"LOLVL 0",
		"PHASE 0",
		"OUTPUT ON",
	}, fake.Written)
}

func TestPulseStopsOnExecutionError(t *testing.T) {
	s, fake := connectFake(t, Config{ErrorCheck: true})
	fake.Replies["EER?"] = "4"

	err := s.Pulse(context.Background(), DefaultPulseSettings())
	assert.ErrorIs(t, err, ErrExecution)
	assert.Equal(t, []string{"WAVE PULSE", "EER?"}, fake.Written)
}
