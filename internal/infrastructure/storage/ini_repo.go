package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/ini.v1"

	"usmelt/internal/domain/models"
	"usmelt/internal/domain/ports"
)

const (
	keyPortIdentifier = "port_identifier"
	keyHardwareID     = "hardware_id"
)

// ErrReservedName - имя устройства совпадает с безымянной секцией INI-файла
// и не переживёт сохранение и загрузку.
var ErrReservedName = errors.New("storage: device name " + ini.DefaultSection + " is reserved")

// IniRegistryRepository реализует интерфейс ports.RegistryStorage поверх
// INI-файла: секция на устройство, ключи port_identifier и hardware_id.
type IniRegistryRepository struct {
	mu       sync.Mutex
	filePath string
}

// NewIniRegistryRepository создаёт репозиторий с указанным путём к файлу.
// Файл может ещё не существовать.
func NewIniRegistryRepository(filePath string) *IniRegistryRepository {
	return &IniRegistryRepository{filePath: filePath}
}

var _ ports.RegistryStorage = (*IniRegistryRepository)(nil)

// Path возвращает путь к файлу реестра.
func (r *IniRegistryRepository) Path() string { return r.filePath }

// Load читает реестр. Отсутствующий файл - пустой реестр без ошибки.
// Секция без одного из ключей загружается как отсутствующая запись (nil).
func (r *IniRegistryRepository) Load() (models.Registry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.filePath); errors.Is(err, os.ErrNotExist) {
		return models.Registry{}, nil
	}

	f, err := ini.Load(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла реестра: %w", err)
	}

	reg := make(models.Registry)
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		if !sec.HasKey(keyPortIdentifier) || !sec.HasKey(keyHardwareID) {
			reg[sec.Name()] = nil
			continue
		}
		reg[sec.Name()] = &models.DeviceInfo{
			PortIdentifier: sec.Key(keyPortIdentifier).String(),
			HardwareID:     sec.Key(keyHardwareID).String(),
		}
	}
	return reg, nil
}

// Save перезаписывает файл присутствующими записями реестра. Имя
// ini.DefaultSection отклоняется до записи файла.
func (r *IniRegistryRepository) Save(reg models.Registry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reg[ini.DefaultSection] != nil {
		return ErrReservedName
	}

	f := ini.Empty()
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		info := reg[name]
		if info == nil {
			continue
		}
		sec, err := f.NewSection(name)
		if err != nil {
			return fmt.Errorf("секция %q: %w", name, err)
		}
		if _, err := sec.NewKey(keyPortIdentifier, info.PortIdentifier); err != nil {
			return fmt.Errorf("секция %q: %w", name, err)
		}
		if _, err := sec.NewKey(keyHardwareID, info.HardwareID); err != nil {
			return fmt.Errorf("секция %q: %w", name, err)
		}
	}

	if dir := filepath.Dir(r.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ошибка создания директории: %w", err)
		}
	}
	if err := f.SaveTo(r.filePath); err != nil {
		return fmt.Errorf("ошибка записи файла реестра: %w", err)
	}
	return nil
}
