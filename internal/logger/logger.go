package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.SugaredLogger = nil
)

// Initialize - создаёт синглтон логера с заданным уровнем логирования
func Initialize(level string) error {
	// текстовый уровень в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	instance = logger.Sugar()
	return nil
}

// Get - доступ к логеру из синглтона
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - сброс буферов логера
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug - запись сообщения уровня Debug
func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

// Info - запись сообщения уровня Info
func Info(args ...interface{}) {
	Get().Infoln(args...)
}

// Warn - запись сообщения уровня Warn
func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

// Error - запись сообщения уровня Error
func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Panic - запись сообщения уровня Panic с паникой
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
