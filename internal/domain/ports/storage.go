package ports

import "usmelt/internal/domain/models"

// RegistryStorage определяет интерфейс для хранения реестра устройств.
// Реализация интерфейса находится в слое Infrastructure.
type RegistryStorage interface {
	// Load загружает реестр из хранилища. Пустое хранилище - пустой реестр.
	Load() (models.Registry, error)

	// Save сохраняет присутствующие записи реестра.
	Save(reg models.Registry) error
}
