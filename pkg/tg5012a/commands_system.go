package tg5012a

import (
	"context"
	"strconv"
)

// QueryError читает и сбрасывает регистр ошибок запросов (QER?).
func (s *Session) QueryError(ctx context.Context) (int, error) {
	resp, err := s.Query(ctx, cmdQueryError)
	if err != nil {
		return 0, err
	}
	return parseStatusCode(cmdQueryError, resp)
}

// ExecutionError читает и сбрасывает регистр ошибок выполнения (EER?).
func (s *Session) ExecutionError(ctx context.Context) (int, error) {
	resp, err := s.Query(ctx, cmdExecutionError)
	if err != nil {
		return 0, err
	}
	return parseStatusCode(cmdExecutionError, resp)
}

// ClearStatus очищает регистры статуса (*CLS).
func (s *Session) ClearStatus(ctx context.Context) error {
	return s.Set(ctx, "*CLS")
}

// Reset сбрасывает прибор в состояние по умолчанию (*RST).
func (s *Session) Reset(ctx context.Context) error {
	return s.Set(ctx, "*RST")
}

// SaveSetup сохраняет текущие настройки в энергонезависимую ячейку 0..9.
func (s *Session) SaveSetup(ctx context.Context, slot int) error {
	if err := inRange("setup slot", float64(slot), 0, maxSetupSlot); err != nil {
		return err
	}
	return s.Set(ctx, "*SAV", strconv.Itoa(slot))
}

// RecallSetup восстанавливает настройки из ячейки 0..9.
func (s *Session) RecallSetup(ctx context.Context, slot int) error {
	if err := inRange("setup slot", float64(slot), 0, maxSetupSlot); err != nil {
		return err
	}
	return s.Set(ctx, "*RCL", strconv.Itoa(slot))
}

// Identify возвращает строку идентификации прибора (*IDN?).
func (s *Session) Identify(ctx context.Context) (string, error) {
	return s.Query(ctx, cmdIdentify)
}

// WaitForCompletion блокируется, пока прибор не завершит операции (*OPC?).
func (s *Session) WaitForCompletion(ctx context.Context) (string, error) {
	return s.Query(ctx, "*OPC?")
}

// Beep подаёт звуковой сигнал прибора.
func (s *Session) Beep(ctx context.Context) error {
	return s.Set(ctx, "BEEP")
}

// Local возвращает управление передней панели.
func (s *Session) Local(ctx context.Context) error {
	return s.Set(ctx, cmdLocal)
}
