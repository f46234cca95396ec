package tg5012a

import "strconv"

// Channel - номер выходного канала генератора.
type Channel int

const (
	Channel1 Channel = 1
	Channel2 Channel = 2
)

func (c Channel) String() string { return strconv.Itoa(int(c)) }

func (c Channel) validate() error {
	if c != Channel1 && c != Channel2 {
		return &ValidationError{Param: "channel", Value: c.String(), Allowed: "one of [1 2]"}
	}
	return nil
}

// Waveform - форма несущей (WAVE).
type Waveform string

const (
	WaveSine     Waveform = "SINE"
	WaveSquare   Waveform = "SQUARE"
	WaveTriangle Waveform = "TRIANG"
	WaveRamp     Waveform = "RAMP"
	WavePulse    Waveform = "PULSE"
	WaveNoise    Waveform = "NOISE"
	WaveArb      Waveform = "ARB"
)

// Switch - значения ON/OFF для переключателей.
type Switch string

const (
	On  Switch = "ON"
	Off Switch = "OFF"
)

// AmplitudeRange - режим диапазона амплитуды (AMPLRNG).
type AmplitudeRange string

const (
	RangeAuto AmplitudeRange = "AUTO"
	RangeHold AmplitudeRange = "HOLD"
)

// AmplitudeUnit - единицы амплитуды (AMPUNIT).
type AmplitudeUnit string

const (
	UnitVpp  AmplitudeUnit = "VPP"
	UnitVrms AmplitudeUnit = "VRMS"
	UnitDbm  AmplitudeUnit = "DBM"
)

// OutputMode - состояние выхода (OUTPUT).
type OutputMode string

const (
	OutputOn     OutputMode = "ON"
	OutputOff    OutputMode = "OFF"
	OutputNormal OutputMode = "NORMAL"
	OutputInvert OutputMode = "INVERT"
)

// SyncType - источник сигнала на выходе SYNC (SYNCTYPE).
type SyncType string

const (
	SyncAuto       SyncType = "AUTO"
	SyncCarrier    SyncType = "CARRIER"
	SyncModulation SyncType = "MODULATION"
	SyncSweep      SyncType = "SWEEP"
	SyncBurst      SyncType = "BURST"
	SyncTrigger    SyncType = "TRIGGER"
)

// CouplingType - тип связи частот каналов.
type CouplingType string

const (
	CouplingRatio  CouplingType = "RATIO"
	CouplingOffset CouplingType = "OFFSET"
)

// TrackingMode - режим слежения каналов (TRACKING).
type TrackingMode string

const (
	TrackingOff    TrackingMode = "OFF"
	TrackingEqual  TrackingMode = "EQUAL"
	TrackingInvert TrackingMode = "INVERT"
)

// BurstMode - режим пачки (BST).
type BurstMode string

const (
	BurstOff      BurstMode = "OFF"
	BurstInfinite BurstMode = "INFINITE"
	BurstNCycle   BurstMode = "NCYC"
	BurstGated    BurstMode = "GATED"
)

// TriggerSource - источник запуска (TRGSRC).
type TriggerSource string

const (
	TriggerInternal TriggerSource = "INT"
	TriggerExternal TriggerSource = "EXT"
	TriggerManual   TriggerSource = "MAN"
)

// Polarity - полярность фронта запуска (TRGPOL).
type Polarity string

const (
	PolarityPositive Polarity = "POS"
	PolarityNegative Polarity = "NEG"
)

// PulseRange - диапазон фронтов импульса (PULSRANGE):
// 1 - от 5 нс до 99.9 нс, 2 - от 100 нс до 1.999 мкс, 3 - от 2 мкс до 40 мкс.
type PulseRange int

const (
	PulseRangeNano  PulseRange = 1
	PulseRangeSub   PulseRange = 2
	PulseRangeMicro PulseRange = 3
)

// Диапазоны числовых аргументов.
const (
	minLoadOhms   = 1
	maxLoadOhms   = 10000
	minBurstCount = 1
	maxBurstCount = 1000000
	maxSetupSlot  = 9
)

func (w Waveform) validate() error {
	return oneOf("waveform", w, WaveSine, WaveSquare, WaveTriangle, WaveRamp, WavePulse, WaveNoise, WaveArb)
}

func (r AmplitudeRange) validate() error {
	return oneOf("amplitude range", r, RangeAuto, RangeHold)
}

func (u AmplitudeUnit) validate() error {
	return oneOf("amplitude unit", u, UnitVpp, UnitVrms, UnitDbm)
}

func (m OutputMode) validate() error {
	return oneOf("output", m, OutputOn, OutputOff, OutputNormal, OutputInvert)
}

func (t SyncType) validate() error {
	return oneOf("sync type", t, SyncAuto, SyncCarrier, SyncModulation, SyncSweep, SyncBurst, SyncTrigger)
}

func (t CouplingType) validate(param string) error {
	return oneOf(param, t, CouplingRatio, CouplingOffset)
}

func (sw Switch) validate(param string) error {
	return oneOf(param, sw, On, Off)
}

func (m TrackingMode) validate() error {
	return oneOf("tracking", m, TrackingOff, TrackingEqual, TrackingInvert)
}

func (m BurstMode) validate() error {
	return oneOf("burst mode", m, BurstOff, BurstInfinite, BurstNCycle, BurstGated)
}

func (src TriggerSource) validate() error {
	return oneOf("trigger source", src, TriggerInternal, TriggerExternal, TriggerManual)
}

func (p Polarity) validate() error {
	return oneOf("trigger polarity", p, PolarityPositive, PolarityNegative)
}

func (r PulseRange) validate() error {
	if r < PulseRangeNano || r > PulseRangeMicro {
		return &ValidationError{Param: "pulse range", Value: strconv.Itoa(int(r)), Allowed: "one of [1 2 3]"}
	}
	return nil
}

func validatePercent(param string, v float64) error {
	return inRange(param, v, 0, 100)
}

func validateLoad(ohms float64) error {
	return inRange("output load", ohms, minLoadOhms, maxLoadOhms)
}

func validateBurstCount(n int) error {
	return inRange("burst count", float64(n), minBurstCount, maxBurstCount)
}
