package ports

// Logger - журнал сервисов обнаружения и реестра. Сообщения форматируются
// как в fmt.Sprintf.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	// Warn используется для ситуаций, которые не прерывают работу:
	// повторяющиеся порты, нечитаемый реестр, пропавший прибор.
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
