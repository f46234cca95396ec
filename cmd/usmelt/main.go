package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"time"

	"usmelt/internal/config"
	"usmelt/internal/domain/ports"
	"usmelt/internal/infrastructure/enumerator"
	"usmelt/internal/infrastructure/logger"
	"usmelt/internal/infrastructure/prompt"
	"usmelt/internal/infrastructure/storage"
	"usmelt/internal/service/discovery"
	"usmelt/internal/service/melter"
	"usmelt/internal/service/registry"
	"usmelt/pkg/tg5012a"
)

func main() {
	configPath := flag.String("config", "usmelt.yaml", "путь к YAML-файлу настроек")
	mode := flag.String("mode", "id", "режим: ports, discover, id, setup, melt")
	width := flag.Duration("width", 20*time.Microsecond, "длительность импульса для -mode=melt")
	address := flag.String("address", "", "LAN адрес генератора (отключает поиск порта)")
	port := flag.String("port", "", "COM-порт генератора (отключает поиск порта)")
	rediscover := flag.Bool("rediscover", false, "игнорировать сохранённый реестр")
	level := flag.String("log-level", "", "уровень журнала (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *address != "" {
		cfg.Instrument.Address = *address
	}
	if *port != "" {
		cfg.Instrument.SerialPort = *port
	}
	if *rediscover {
		cfg.Registry.Load = false
	}
	if *level != "" {
		cfg.Log.Level = *level
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *mode, *width, log); err != nil {
		stop()
		log.Fatal("%v", err)
	}
}

func run(ctx context.Context, cfg config.Config, mode string, width time.Duration, log *logger.ZerologLogger) error {
	enum := enumerator.NewSerialEnumerator()
	reg := registry.NewService(storage.NewIniRegistryRepository(cfg.Registry.Path), enum, log.With("component", "registry"))
	engine := discovery.NewEngine(reg, enum, prompt.NewConsoleOperator(), log.With("component", "discovery"))

	switch mode {
	case "ports":
		return listPorts(enum)
	case "discover":
		devices, err := engine.Discover(ctx, cfg.Registry.Devices, discovery.Options{Load: cfg.Registry.Load, Save: cfg.Registry.Save})
		names := make([]string, 0, len(devices))
		for name := range devices {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			info := devices[name]
			if info == nil {
				fmt.Printf("%s: not found\n", name)
				continue
			}
			fmt.Printf("%s: %s (%s)\n", name, info.PortIdentifier, info.HardwareID)
		}
		return err
	case "id", "setup", "melt":
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	serialPort, err := resolvePort(ctx, cfg, engine)
	if err != nil {
		return err
	}

	pgLog := log.With("component", "tg5012a")
	drv := cfg.Driver(serialPort)
	drv.Logger = pgLog.Driver()
	drv.Recorder = func(command, value string) {
		pgLog.Debug("record %s = %q", command, value)
	}
	pg := tg5012a.New(drv)

	if err := pg.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := pg.Close(); err != nil {
			log.Warn("close: %v", err)
		}
	}()

	switch mode {
	case "id":
		id, err := pg.Identify(ctx)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	case "setup":
		return melter.NewService(pg, log).Setup(ctx, melter.DefaultSettings())
	default:
		return melter.NewService(pg, log).Fire(ctx, melter.DefaultSettings().Channel, width)
	}
}

// resolvePort возвращает COM-порт генератора из настроек или из реестра.
// Пустая строка означает подключение по LAN.
func resolvePort(ctx context.Context, cfg config.Config, engine *discovery.Engine) (string, error) {
	if cfg.Instrument.SerialPort != "" || cfg.Instrument.Address != "" {
		return "", nil
	}
	name := cfg.Instrument.Device
	devices, err := engine.Discover(ctx, cfg.Registry.Devices, discovery.Options{Load: cfg.Registry.Load, Save: cfg.Registry.Save})
	if info := devices[name]; info != nil {
		return info.PortIdentifier, nil
	}
	if err == nil {
		err = discovery.ErrNoDeviceFound
	}
	return "", fmt.Errorf("%s: %w", name, err)
}

func listPorts(enum ports.PortEnumerator) error {
	obs, err := enum.ListPorts()
	if err != nil {
		return err
	}
	if len(obs) == 0 {
		return errors.New("no serial ports found")
	}
	for _, o := range obs {
		fmt.Printf("device:%s hwid:%s\n", o.DeviceIdentifier, o.HardwareID)
	}
	return nil
}
