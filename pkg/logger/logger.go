package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env       string    // development -> consola legible; production -> JSON
	Level     string    // trace, debug, info, warn, error
	Service   string    // opcional; campo service en cada línea
	Warehouse string    // opcional; campo warehouse en cada línea
	Out       io.Writer // opcional; por defecto os.Stdout
}

// Logger envuelve zerolog para inyectarlo en use cases y adaptadores.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del proceso. Con Warehouse definido, toda línea identifica la bodega
// aunque varios procesos compartan el mismo backend.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	if cfg.Warehouse != "" {
		ctx = ctx.Str("warehouse", cfg.Warehouse)
	}
	zl := ctx.Logger()

	// pgx y go-redis no loguean por su cuenta; el global queda alineado por si alguna librería lo usa
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop descarta todo (tests).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// parseLevel acepta los nombres de zerolog; vacío o desconocido es info.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Component sublogger para un caso de uso o adaptador (campo component).
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}
