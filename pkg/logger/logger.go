package logger

import (
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log strukturali logger; InfoLogger va ErrorLogger shu orqali yozadi
	Log = zap.NewNop()
	// InfoLogger oddiy holat xabarlari uchun
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	// ErrorLogger xatolar uchun
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	restoreStdLog = func() {}
)

// Init loggerlarni ishga tushirish
func Init() {
	InitWithWriters(os.Stdout, os.Stderr)
}

// InitWithWriters builds the zap core: info and warn go to info, error and
// above to errOut. The standard "log" package is redirected into it too.
func InitWithWriters(info, errOut io.Writer) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encCfg)

	infoLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.InfoLevel && l < zapcore.ErrorLevel
	})
	errorLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.ErrorLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(info), infoLevel),
		zapcore.NewCore(encoder, zapcore.AddSync(errOut), errorLevel),
	)

	Log = zap.New(core, zap.AddCaller())
	InfoLogger = zap.NewStdLog(Log)
	if l, err := zap.NewStdLogAt(Log, zapcore.ErrorLevel); err == nil {
		ErrorLogger = l
	}

	restoreStdLog()
	restoreStdLog = zap.RedirectStdLog(Log)
}

// Sync buferdagi yozuvlarni chiqarish
func Sync() error {
	return Log.Sync()
}
