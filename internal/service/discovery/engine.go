package discovery

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"usmelt/internal/domain/models"
	"usmelt/internal/domain/ports"
	"usmelt/internal/service/registry"
)

var (
	// ErrNoDeviceFound - после переподключения не появилось ни одного нового порта.
	ErrNoDeviceFound = errors.New("discovery: no device found")
	// ErrMultipleDevicesChanged - после переподключения изменилось больше одного порта.
	ErrMultipleDevicesChanged = errors.New("discovery: multiple devices changed")
)

// Options управляет использованием реестра.
type Options struct {
	// Load - взять реестр из хранилища и сверить с портами.
	Load bool
	// Save - сохранить итоговый реестр.
	Save bool
}

// DefaultOptions включает загрузку и сохранение.
func DefaultOptions() Options {
	return Options{Load: true, Save: true}
}

// Engine сопоставляет логические имена устройств с портами, при необходимости
// с помощью оператора (отключить и снова подключить кабель).
type Engine struct {
	registry *registry.Service
	ports    ports.PortEnumerator
	operator ports.Operator
	log      ports.Logger
}

// NewEngine создает новый экземпляр Engine.
func NewEngine(reg *registry.Service, enum ports.PortEnumerator, op ports.Operator, log ports.Logger) *Engine {
	return &Engine{
		registry: reg,
		ports:    enum,
		operator: op,
		log:      log,
	}
}

// Discover возвращает реестр, в котором для каждого имени из names есть
// запись. Имена, для которых обнаружение не удалось, сопоставлены с nil, а
// ошибки по ним возвращаются вместе с реестром (errors.Join).
func (e *Engine) Discover(ctx context.Context, names []string, opts Options) (models.Registry, error) {
	var reg models.Registry
	if opts.Load {
		if loaded := e.registry.Load(); loaded != nil {
			validated, err := e.registry.ValidateAgainstLivePorts(loaded)
			if err != nil {
				return nil, err
			}
			if validated.Resolved(names) {
				return validated, nil
			}
			reg = validated
		}
	}

	e.log.Info("Performing manual USB address search.")
	if reg == nil {
		reg = models.Registry{}
	}

	var errs []error
	for _, name := range names {
		if reg[name] != nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			reg[name] = nil
			continue
		}
		info, err := e.DiscoverDevice(ctx, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		reg[name] = info
	}

	if opts.Save {
		if err := e.registry.Save(reg); err != nil {
			errs = append(errs, err)
		}
	}
	return reg, errors.Join(errs...)
}

// DiscoverDevice находит порт одного устройства по разнице списков портов до
// и после переподключения кабеля.
func (e *Engine) DiscoverDevice(ctx context.Context, name string) (*models.DeviceInfo, error) {
	e.log.Info("Searching for %s", name)

	if err := e.operator.Confirm(ctx, fmt.Sprintf("Unplug the USB/Serial cable connected to %s. Press Enter when unplugged...", name)); err != nil {
		return nil, err
	}
	before, err := e.snapshot("unplugging")
	if err != nil {
		return nil, err
	}

	if err := e.operator.Confirm(ctx, "Reconnect the cable. Press Enter when the cable has been plugged in..."); err != nil {
		return nil, err
	}
	after, err := e.snapshot("replugging")
	if err != nil {
		return nil, err
	}

	var added []models.PortObservation
	for _, o := range after {
		if !slices.Contains(before, o) {
			added = append(added, o)
		}
	}

	switch len(added) {
	case 1:
		return &models.DeviceInfo{
			PortIdentifier: added[0].DeviceIdentifier,
			HardwareID:     added[0].HardwareID,
		}, nil
	case 0:
		return nil, ErrNoDeviceFound
	default:
		return nil, fmt.Errorf("%w: %d ports", ErrMultipleDevicesChanged, len(added))
	}
}

func (e *Engine) snapshot(stage string) ([]models.PortObservation, error) {
	obs, err := e.ports.ListPorts()
	if err != nil {
		return nil, fmt.Errorf("discovery: list ports: %w", err)
	}
	registry.WarnDuplicates(e.log, obs)
	e.log.Debug("Devices found after %s:\n%s", stage, formatPorts(obs))
	return obs, nil
}

func formatPorts(obs []models.PortObservation) string {
	var sb strings.Builder
	for _, o := range obs {
		fmt.Fprintf(&sb, "device:%s hwid:%s\n", o.DeviceIdentifier, o.HardwareID)
	}
	return sb.String()
}
