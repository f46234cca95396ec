package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleOperatorConfirm(t *testing.T) {
	var out bytes.Buffer
	op := NewOperator(strings.NewReader("\n\n"), &out)

	require.NoError(t, op.Confirm(context.Background(), "Unplug pg"))
	require.NoError(t, op.Confirm(context.Background(), "Plug in pg"))
	assert.Contains(t, out.String(), "Unplug pg")
	assert.Contains(t, out.String(), "Plug in pg")
}

func TestConsoleOperatorEOF(t *testing.T) {
	op := NewOperator(strings.NewReader(""), io.Discard)

	err := op.Confirm(context.Background(), "Unplug pg")
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsoleOperatorCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	op := NewOperator(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, op.Confirm(ctx, "Unplug pg"), context.Canceled)
}

func TestConsoleOperatorResumesPendingRead(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	op := NewOperator(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- op.Confirm(ctx, "Unplug pg") }()
	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)

	go func() { _, _ = w.Write([]byte("\n")) }()
	assert.NoError(t, op.Confirm(context.Background(), "Plug in pg"))
}
