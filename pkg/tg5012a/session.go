package tg5012a

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	cmdLocal          = "LOCAL"
	cmdQueryError     = "QER?"
	cmdExecutionError = "EER?"
	cmdIdentify       = "*IDN?"
)

// State - состояние сессии с прибором.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Session - одно открытое соединение с генератором TG5012A.
//
// Сессия единолично владеет транспортом. Команды выполняются строго
// последовательно: каждая завершается вместе с проверкой регистра ошибок и
// возвратом в LOCAL до начала следующей.
//
// Команды, относящиеся к каналу (форма сигнала, частота, амплитуда, импульс,
// burst и т.д.), действуют на канал, выбранный последним вызовом
// SelectChannel. Сессия не переключает канал сама; выбор канала - это
// состояние прибора, которое нужно установить до канальных команд. Для
// серии команд на одном канале см. ChannelBatch.
type Session struct {
	mu        sync.Mutex
	cfg       Config
	id        uuid.UUID
	open      func(ctx context.Context) (Transport, error)
	transport Transport
	state     State
	channel   Channel
}

// New создаёт сессию; соединение открывается в Connect.
func New(cfg Config) *Session {
	s := &Session{cfg: cfg, id: uuid.New()}
	s.open = func(ctx context.Context) (Transport, error) {
		return openTransport(ctx, s.cfg)
	}
	return s
}

// NewWithTransport создаёт сессию поверх готового транспорта (для тестов и
// собственных реализаций канала).
func NewWithTransport(cfg Config, t Transport) *Session {
	s := &Session{cfg: cfg, id: uuid.New()}
	s.open = func(context.Context) (Transport, error) {
		return t, nil
	}
	return s
}

// ID возвращает идентификатор сессии, которым помечаются записи журнала.
func (s *Session) ID() uuid.UUID { return s.id }

// State возвращает текущее состояние сессии.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ActiveChannel возвращает канал, выбранный последним успешным SelectChannel.
// false означает, что канал в этой сессии ещё не выбирался.
func (s *Session) ActiveChannel() (Channel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channel, s.channel != 0
}

// Connect открывает транспорт и запрашивает *IDN?. Если прибор не ответил на
// идентификацию, сессия остаётся в состоянии Connected, а ошибка
// возвращается вызывающему.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDisconnected {
		return fmt.Errorf("%w: connect from %s", ErrState, s.state)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state = StateConnecting
	t, err := s.open(ctx)
	if err != nil {
		s.state = StateDisconnected
		return err
	}
	s.transport = t
	s.state = StateConnected
	s.logf("session %s: transport opened", s.id)

	return s.identifyLocked(ctx)
}

// Close освобождает транспорт. Для serial сессию можно открыть снова через Reopen.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateConnected {
		return nil
	}
	err := s.transport.Close()
	s.state = StateClosed
	s.logf("session %s: closed", s.id)
	return err
}

// Reopen повторно открывает закрытое serial-соединение и снова запрашивает *IDN?.
func (s *Session) Reopen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateClosed {
		return fmt.Errorf("%w: reopen from %s", ErrState, s.state)
	}
	r, ok := s.transport.(Reopener)
	if !ok {
		return ErrReopenUnsupported
	}
	if err := r.Reopen(); err != nil {
		if errors.Is(err, ErrConnectionFailed) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	s.state = StateConnected
	s.logf("session %s: reopened", s.id)

	return s.identifyLocked(ctx)
}

// Set отправляет команду с необязательными аргументами через пробел.
func (s *Session) Set(ctx context.Context, cmd string, args ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(ctx, cmd, args)
}

// Query отправляет запрос и возвращает одну строку ответа без пробелов по краям.
func (s *Session) Query(ctx context.Context, cmd string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queryLocked(ctx, cmd)
}

func (s *Session) identifyLocked(ctx context.Context) error {
	id, err := s.queryLocked(ctx, cmdIdentify)
	if err != nil {
		return fmt.Errorf("instrument identification: %w", err)
	}
	s.logf("session %s: %s", s.id, id)
	return nil
}

// setLocked: запись -> EER? -> LOCAL. LOCAL отправляется и после ошибки EER?,
// чтобы панель прибора не осталась заблокированной.
func (s *Session) setLocked(ctx context.Context, cmd string, args []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := cmd
	value := strings.Join(args, " ")
	if value != "" {
		line = cmd + " " + value
	}
	if err := s.writeLocked(line); err != nil {
		return err
	}
	if cmd != cmdLocal {
		s.record(cmd, value)
	}

	var result error
	if s.cfg.ErrorCheck && cmd != cmdLocal {
		result = s.checkStatusLocked(ctx, cmd, cmdExecutionError)
	}
	if s.cfg.AutoLocal && cmd != cmdLocal {
		if err := s.setLocked(ctx, cmdLocal, nil); err != nil {
			result = errors.Join(result, err)
		}
	}
	return result
}

// queryLocked: запись -> чтение -> QER? -> LOCAL. Сами QER? и EER? никогда не
// вызывают ни вложенной проверки статуса, ни LOCAL.
func (s *Session) queryLocked(ctx context.Context, cmd string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.writeLocked(cmd); err != nil {
		return "", err
	}
	resp, err := s.readLocked(cmd)
	if err != nil {
		return "", err
	}
	s.record(cmd, resp)

	status := cmd == cmdQueryError || cmd == cmdExecutionError
	var result error
	if s.cfg.ErrorCheck && !status {
		result = s.checkStatusLocked(ctx, cmd, cmdQueryError)
	}
	if s.cfg.AutoLocal && !status && cmd != cmdLocal {
		if err := s.setLocked(ctx, cmdLocal, nil); err != nil {
			result = errors.Join(result, err)
		}
	}
	if result != nil {
		return "", result
	}
	return resp, nil
}

// checkStatusLocked читает регистр (чтение его сбрасывает) и превращает
// ненулевой код в *StatusError.
func (s *Session) checkStatusLocked(ctx context.Context, cmd, register string) error {
	resp, err := s.queryLocked(ctx, register)
	if err != nil {
		return err
	}
	code, err := parseStatusCode(register, resp)
	if err != nil {
		return err
	}
	if code != 0 {
		return &StatusError{Register: register, Command: cmd, Code: code}
	}
	return nil
}

func (s *Session) writeLocked(line string) error {
	if s.state != StateConnected || s.transport == nil {
		return ErrNotConnected
	}
	data, err := encodeLine(line)
	if err != nil {
		return err
	}
	s.logf(">> TX: %s", line)
	if err := s.transport.WriteLine(data); err != nil {
		return fmt.Errorf("write %q: %w", line, err)
	}
	return nil
}

func (s *Session) readLocked(cmd string) (string, error) {
	data, err := s.transport.ReadLine()
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			return "", fmt.Errorf("%w: %s", ErrTimeout, cmd)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrRead, cmd, err)
	}
	resp, err := decodeLine(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRead, cmd, err)
	}
	s.logf("<< RX: %s", resp)
	return resp, nil
}

func (s *Session) record(cmd, value string) {
	if s.cfg.Recorder != nil {
		s.cfg.Recorder(cmd, value)
	}
}

func (s *Session) logf(format string, args ...interface{}) {
	if s.cfg.Logger != nil {
		s.cfg.Logger(fmt.Sprintf(format, args...))
	}
}
