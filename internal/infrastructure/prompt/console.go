package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"usmelt/internal/domain/ports"
)

var messageStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFB86C")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#BD93F9")).
	Padding(0, 1)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))

// ConsoleOperator запрашивает подтверждение оператора в терминале:
// выводит сообщение и ждёт нажатия Enter.
type ConsoleOperator struct {
	in  *bufio.Reader
	out io.Writer

	// pending - незавершённое чтение, оставшееся после отмены ctx.
	pending chan error
}

// NewConsoleOperator создаёт оператора поверх stdin/stdout.
func NewConsoleOperator() *ConsoleOperator {
	return NewOperator(os.Stdin, os.Stdout)
}

// NewOperator создаёт оператора с произвольными потоками ввода и вывода.
func NewOperator(in io.Reader, out io.Writer) *ConsoleOperator {
	return &ConsoleOperator{in: bufio.NewReader(in), out: out}
}

var _ ports.Operator = (*ConsoleOperator)(nil)

// Confirm блокируется до ввода строки или отмены ctx.
func (o *ConsoleOperator) Confirm(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintln(o.out, messageStyle.Render(msg))
	fmt.Fprint(o.out, hintStyle.Render("Press Enter to continue..."))

	done := o.pending
	if done == nil {
		done = make(chan error, 1)
		go func() {
			_, err := o.in.ReadString('\n')
			done <- err
		}()
	}

	select {
	case <-ctx.Done():
		o.pending = done
		fmt.Fprintln(o.out)
		return ctx.Err()
	case err := <-done:
		o.pending = nil
		fmt.Fprintln(o.out)
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		return nil
	}
}
