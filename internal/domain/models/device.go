package models

// DeviceInfo описывает физический порт, за которым закреплено логическое
// имя устройства. Совпадение HardwareID означает тот же физический прибор.
type DeviceInfo struct {
	PortIdentifier string
	HardwareID     string
}

// PortObservation - снимок одного порта в момент перечисления.
// Сравнивается по полному совпадению полей.
type PortObservation struct {
	DeviceIdentifier string
	HardwareID       string
}

// Registry сопоставляет логические имена устройств с портами.
// Значение nil означает "имя известно, прибор сейчас не обнаружен",
// отсутствующий ключ - "устройство никогда не обнаруживалось".
type Registry map[string]*DeviceInfo

// Resolved сообщает, все ли имена из names сопоставлены с присутствующим прибором.
func (r Registry) Resolved(names []string) bool {
	for _, name := range names {
		if r[name] == nil {
			return false
		}
	}
	return true
}

// Clone возвращает поверхностную копию реестра.
func (r Registry) Clone() Registry {
	if r == nil {
		return nil
	}
	res := make(Registry, len(r))
	for name, info := range r {
		res[name] = info
	}
	return res
}

// DuplicatePorts возвращает все наблюдения, чей DeviceIdentifier встречается
// более одного раза, в исходном порядке.
func DuplicatePorts(obs []PortObservation) []PortObservation {
	counts := make(map[string]int, len(obs))
	for _, o := range obs {
		counts[o.DeviceIdentifier]++
	}
	var res []PortObservation
	for _, o := range obs {
		if counts[o.DeviceIdentifier] > 1 {
			res = append(res, o)
		}
	}
	return res
}
