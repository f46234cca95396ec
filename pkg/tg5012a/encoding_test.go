package tg5012a

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{1e3, "1000"},
		{10e-3, "0.01"},
		{10e-9, "1e-08"},
		{20e-6, "2e-05"},
		{1e9, "1e+09"},
		{-2.5, "-2.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in))
	}
}

func TestEncodeLine(t *testing.T) {
	data, err := encodeLine("FREQ 1000")
	require.NoError(t, err)
	assert.Equal(t, []byte("FREQ 1000\n"), data)

	_, err = encodeLine("AMPL 5µ")
	assert.ErrorIs(t, err, ErrNonASCII)
}

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "0\r\n", "0"},
		{"lf", "1\n", "1"},
		{"padded", "  THURLBY THANDAR,TG5012A \r\n", "THURLBY THANDAR,TG5012A"},
		{"empty", "\r\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeLine([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusCode(t *testing.T) {
	code, err := parseStatusCode("EER?", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	_, err = parseStatusCode("QER?", "")
	assert.ErrorIs(t, err, ErrRead)
}

func TestDecodeLineRejectsNonASCII(t *testing.T) {
	tests := [][]byte{
		{'1', 0x80, '\n'},
		{'1', 0x80, 0xff, '\n'},
		[]byte("TG5012A \xe2\x84\xa2\r\n"),
	}
	for _, in := range tests {
		_, err := decodeLine(in)
		assert.ErrorIs(t, err, ErrRead, "%q", in)
	}
}
