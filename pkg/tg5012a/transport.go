package tg5012a

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"go.bug.st/serial"
)

const (
	DefaultTCPPort     = 9221
	DefaultBaudRate    = 9600
	defaultDialTimeout = 5 * time.Second
)

// Config определяет параметры подключения к генератору и поведение сессии.
type Config struct {
	SerialPort  string        `json:"serialPort,omitempty"`  // COM-порт или /dev/tty*, имеет приоритет над сетью
	BaudRate    int           `json:"baudRate,omitempty"`    // COM Speed
	Address     string        `json:"address,omitempty"`     // LAN адрес прибора
	TCPPort     int           `json:"tcpPort,omitempty"`     // LAN порт прибора
	DialTimeout time.Duration `json:"dialTimeout,omitempty"` // таймаут TCP соединения
	ReadTimeout time.Duration `json:"readTimeout,omitempty"` // 0 - ждать строку бесконечно
	AutoLocal   bool          `json:"autoLocal"`             // LOCAL после каждой команды
	ErrorCheck  bool          `json:"errorCheck"`            // QER?/EER? после каждой команды

	// Logger получает трассировку обмена (TX/RX) и события соединения.
	Logger func(msg string) `json:"-"`
	// Recorder получает каждую команду и её итоговое значение, кроме LOCAL.
	Recorder func(command, value string) `json:"-"`
}

// DefaultConfig возвращает конфигурацию с включёнными AutoLocal и ErrorCheck.
func DefaultConfig() Config {
	return Config{
		BaudRate:    DefaultBaudRate,
		TCPPort:     DefaultTCPPort,
		DialTimeout: defaultDialTimeout,
		AutoLocal:   true,
		ErrorCheck:  true,
	}
}

// Transport - построчный канал к прибору. Реализации: serial и TCP.
type Transport interface {
	// WriteLine отправляет уже закодированную строку вместе с терминатором
	WriteLine(line []byte) error
	// ReadLine блокируется до получения одной строки ответа
	ReadLine() ([]byte, error)
	// Close освобождает соединение
	Close() error
}

// Reopener реализуется транспортами, которые можно открыть повторно после Close.
type Reopener interface {
	Reopen() error
}

// openTransport выбирает транспорт по конфигурации. Serial имеет приоритет.
func openTransport(ctx context.Context, cfg Config) (Transport, error) {
	switch {
	case cfg.SerialPort != "":
		return openSerial(cfg.SerialPort, cfg.BaudRate, cfg.ReadTimeout)
	case cfg.Address != "":
		addr := net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.TCPPort))
		return dialTCP(ctx, addr, cfg.DialTimeout, cfg.ReadTimeout)
	default:
		return nil, ErrNoTransport
	}
}

type serialTransport struct {
	name        string
	mode        *serial.Mode
	readTimeout time.Duration
	port        serial.Port
}

func openSerial(name string, baudRate int, readTimeout time.Duration) (*serialTransport, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	t := &serialTransport{
		name: name,
		mode: &serial.Mode{
			BaudRate: baudRate,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		},
		readTimeout: readTimeout,
	}
	if err := t.open(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *serialTransport) open() error {
	p, err := serial.Open(t.name, t.mode)
	if err != nil {
		return fmt.Errorf("%w: ошибка открытия COM-порта %s: %v", ErrConnectionFailed, t.name, err)
	}
	timeout := serial.NoTimeout
	if t.readTimeout > 0 {
		timeout = t.readTimeout
	}
	if err := p.SetReadTimeout(timeout); err != nil {
		p.Close()
		return fmt.Errorf("%w: %s: %v", ErrConnectionFailed, t.name, err)
	}
	t.port = p
	return nil
}

func (t *serialTransport) WriteLine(line []byte) error {
	if t.port == nil {
		return ErrNotConnected
	}
	_, err := t.port.Write(line)
	return err
}

// ReadLine читает по одному байту до терминатора. При таймауте go.bug.st/serial
// возвращает 0 байт без ошибки.
func (t *serialTransport) ReadLine() ([]byte, error) {
	if t.port == nil {
		return nil, ErrNotConnected
	}
	buf := make([]byte, 1)
	line := make([]byte, 0, 64)
	for {
		n, err := t.port.Read(buf)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			if t.readTimeout > 0 {
				return nil, ErrTimeout
			}
			continue
		}
		line = append(line, buf[0])
		if buf[0] == terminator {
			return line, nil
		}
	}
}

func (t *serialTransport) Close() error {
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	return err
}

// Reopen повторно открывает тот же порт с теми же параметрами.
func (t *serialTransport) Reopen() error {
	if t.port != nil {
		return nil
	}
	return t.open()
}

type tcpTransport struct {
	conn        net.Conn
	reader      *bufio.Reader
	readTimeout time.Duration
}

func dialTCP(ctx context.Context, addr string, dialTimeout, readTimeout time.Duration) (*tcpTransport, error) {
	if dialTimeout == 0 {
		dialTimeout = defaultDialTimeout
	}
	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка подключения TCP %s: %v", ErrConnectionFailed, addr, err)
	}
	return &tcpTransport{
		conn:        conn,
		reader:      bufio.NewReader(conn),
		readTimeout: readTimeout,
	}, nil
}

func (t *tcpTransport) WriteLine(line []byte) error {
	if t.conn == nil {
		return ErrNotConnected
	}
	_, err := t.conn.Write(line)
	return err
}

func (t *tcpTransport) ReadLine() ([]byte, error) {
	if t.conn == nil {
		return nil, ErrNotConnected
	}
	if t.readTimeout > 0 {
		if err := t.conn.SetReadDeadline(time.Now().Add(t.readTimeout)); err != nil {
			return nil, err
		}
	}
	line, err := t.reader.ReadBytes(terminator)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, ErrTimeout
		}
		// прибор мог закрыть соединение сразу после ответа без терминатора
		if err == io.EOF && len(line) > 0 {
			return line, nil
		}
		return nil, err
	}
	return line, nil
}

func (t *tcpTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}
