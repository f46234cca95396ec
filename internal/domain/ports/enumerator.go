package ports

import "usmelt/internal/domain/models"

// PortEnumerator перечисляет коммуникационные порты системы.
// Каждый вызов заново опрашивает ОС, результат не кэшируется.
type PortEnumerator interface {
	ListPorts() ([]models.PortObservation, error)
}
