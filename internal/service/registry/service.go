package registry

import (
	"fmt"

	"usmelt/internal/domain/models"
	"usmelt/internal/domain/ports"
)

// DuplicatePortsHint ссылается на описание обхода повторяющихся COM-портов в Windows.
const DuplicatePortsHint = "Check https://filipemaia.github.io/sheetjet/known_issues.html#duplicate-com-ports-under-windows for a workaround."

// Service отвечает за загрузку, проверку и сохранение реестра устройств.
type Service struct {
	storage ports.RegistryStorage
	ports   ports.PortEnumerator
	log     ports.Logger
}

// NewService создает новый экземпляр Service.
func NewService(storage ports.RegistryStorage, enum ports.PortEnumerator, log ports.Logger) *Service {
	return &Service{
		storage: storage,
		ports:   enum,
		log:     log,
	}
}

// Load загружает реестр из хранилища. Ошибка чтения или пустое хранилище
// дают nil: ошибка только пишется в журнал.
func (s *Service) Load() models.Registry {
	reg, err := s.storage.Load()
	if err != nil {
		s.log.Warn("Could not read device registry: %v", err)
		return nil
	}
	if len(reg) == 0 {
		return nil
	}
	return reg
}

// ValidateAgainstLivePorts сверяет присутствующие записи с текущим списком
// портов. Записи, чей HardwareID не найден, становятся nil. Возвращается
// новый реестр, исходный не изменяется.
func (s *Service) ValidateAgainstLivePorts(reg models.Registry) (models.Registry, error) {
	obs, err := s.ports.ListPorts()
	if err != nil {
		return nil, fmt.Errorf("registry: list ports: %w", err)
	}
	WarnDuplicates(s.log, obs)

	res := reg.Clone()
	if res == nil {
		res = models.Registry{}
	}
	for name, info := range res {
		if info == nil {
			continue
		}
		found := false
		for _, o := range obs {
			if o.HardwareID == info.HardwareID {
				s.log.Debug("Found %s with hwid %s at %s", name, o.HardwareID, o.DeviceIdentifier)
				found = true
			}
		}
		if !found {
			s.log.Warn("Could not find %s with hwid %s", name, info.HardwareID)
			res[name] = nil
		}
	}
	return res, nil
}

// Save сохраняет присутствующие записи реестра.
func (s *Service) Save(reg models.Registry) error {
	present := make(models.Registry, len(reg))
	for name, info := range reg {
		if info != nil {
			present[name] = info
		}
	}
	if err := s.storage.Save(present); err != nil {
		return fmt.Errorf("registry: save: %w", err)
	}
	return nil
}

// WarnDuplicates пишет предупреждение о каждом повторяющемся имени порта.
// Повторы не прерывают работу.
func WarnDuplicates(log ports.Logger, obs []models.PortObservation) {
	dups := models.DuplicatePorts(obs)
	if len(dups) == 0 {
		return
	}
	log.Warn("Found repeated device names:")
	for _, o := range dups {
		log.Warn("device:%s hwid:%s", o.DeviceIdentifier, o.HardwareID)
	}
	log.Warn(DuplicatePortsHint)
}
