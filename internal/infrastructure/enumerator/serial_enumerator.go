package enumerator

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"

	"usmelt/internal/domain/models"
	"usmelt/internal/domain/ports"
)

// NoHardwareID - идентификатор оборудования для портов, не являющихся USB.
const NoHardwareID = "n/a"

// SerialEnumerator реализует ports.PortEnumerator через go.bug.st/serial.
type SerialEnumerator struct {
	list func() ([]*enumerator.PortDetails, error)
}

// NewSerialEnumerator создаёт перечислитель системных COM-портов.
func NewSerialEnumerator() *SerialEnumerator {
	return &SerialEnumerator{list: enumerator.GetDetailedPortsList}
}

var _ ports.PortEnumerator = (*SerialEnumerator)(nil)

// ListPorts опрашивает ОС при каждом вызове.
func (e *SerialEnumerator) ListPorts() ([]models.PortObservation, error) {
	details, err := e.list()
	if err != nil {
		return nil, fmt.Errorf("enumerator: %w", err)
	}
	res := make([]models.PortObservation, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		res = append(res, models.PortObservation{
			DeviceIdentifier: d.Name,
			HardwareID:       HardwareID(d),
		})
	}
	return res, nil
}

// HardwareID строит идентификатор вида "USB VID:PID=103E:0460 SER=123".
func HardwareID(d *enumerator.PortDetails) string {
	if !d.IsUSB {
		return NoHardwareID
	}
	id := fmt.Sprintf("USB VID:PID=%s:%s", strings.ToUpper(d.VID), strings.ToUpper(d.PID))
	if d.SerialNumber != "" {
		id += " SER=" + d.SerialNumber
	}
	return id
}
