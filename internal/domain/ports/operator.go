package ports

import "context"

// Operator - канал взаимодействия с человеком при обнаружении устройства.
// Confirm показывает сообщение и блокируется до подтверждения.
type Operator interface {
	Confirm(ctx context.Context, msg string) error
}
