package devlog

import (
	"io"
	"os"
)

// Defaults
const (
	DefaultHeader       = "tralseDb"
	DefaultModeVar      = "NODE_ENV"
	DefaultVerbosityVar = "DEV_MODE"
)

// EnvSource looks up an environment variable.
type EnvSource func(key string) (string, bool)

// Logger prints colored, headered messages gated by the environment.
// The environment is resolved on every call.
type Logger struct {
	header       string
	modeVar      string
	verbosityVar string
	lookup       EnvSource
	out          io.Writer
	diag         io.Writer
}

// Option configures a Logger.
type Option func(*Logger)

// WithHeader sets the header used when a call does not pass one.
func WithHeader(header string) Option {
	return func(l *Logger) { l.header = header }
}

// WithModeVar sets the name of the execution-mode variable.
func WithModeVar(name string) Option {
	return func(l *Logger) { l.modeVar = name }
}

// WithVerbosityVar sets the name of the verbosity variable.
func WithVerbosityVar(name string) Option {
	return func(l *Logger) { l.verbosityVar = name }
}

// WithEnvSource sets where variables are looked up.
func WithEnvSource(src EnvSource) Option {
	return func(l *Logger) { l.lookup = src }
}

// WithEnvironment pins the logger to a fixed environment.
func WithEnvironment(env Environment) Option {
	return func(l *Logger) { l.lookup = env.source(l) }
}

// WithOutput sets the writer for emitted messages. nil means os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// WithDiagnostics sets the writer for the DebugMode warning. nil means
// os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(l *Logger) { l.diag = w }
}

// source answers lookups of l's variable names from e. Names are read at
// lookup time so option order does not matter.
func (e Environment) source(l *Logger) EnvSource {
	return func(key string) (string, bool) {
		switch key {
		case l.modeVar:
			return e.Mode, true
		case l.verbosityVar:
			return e.Verbosity, true
		}
		return "", false
	}
}

// New creates a Logger reading NODE_ENV and DEV_MODE from the process
// environment and writing to stdout and stderr.
func New(opts ...Option) *Logger {
	l := &Logger{
		header:       DefaultHeader,
		modeVar:      DefaultModeVar,
		verbosityVar: DefaultVerbosityVar,
		lookup:       os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.lookup == nil {
		l.lookup = os.LookupEnv
	}
	return l
}

// Header returns the default header.
func (l *Logger) Header() string { return l.header }

// ModeVar returns the name of the execution-mode variable.
func (l *Logger) ModeVar() string { return l.modeVar }

// VerbosityVar returns the name of the verbosity variable.
func (l *Logger) VerbosityVar() string { return l.verbosityVar }

// Environment resolves the current environment.
func (l *Logger) Environment() Environment {
	mode, _ := l.lookup(l.modeVar)
	verbosity, _ := l.lookup(l.verbosityVar)
	return Environment{Mode: mode, Verbosity: verbosity}
}

func (l *Logger) output() io.Writer {
	if l.out == nil {
		return os.Stdout
	}
	return l.out
}

func (l *Logger) diagnostics() io.Writer {
	if l.diag == nil {
		return os.Stderr
	}
	return l.diag
}

// call holds per-call settings.
type call struct {
	header string
	state  State
}

// CallOption adjusts a single logging call.
type CallOption func(*call)

// Header overrides the logger's header for one call.
func Header(header string) CallOption {
	return func(c *call) { c.header = header }
}

// WithState sets the logging state for one call.
func WithState(state State) CallOption {
	return func(c *call) { c.state = state }
}

// Debug is shorthand for WithState(DebugMode).
func Debug() CallOption {
	return WithState(DebugMode)
}

// Log formats message in color c and passes it through the gate. A color
// outside the palette is printed without an escape code.
func (l *Logger) Log(c Color, message string, opts ...CallOption) {
	settings := call{header: l.header, state: DefaultState}
	for _, opt := range opts {
		opt(&settings)
	}
	Gate(l.Environment(), settings.state, Format(c.Code(), message, settings.header), l.output(), l.diagnostics())
}

// Black prints message in black.
func (l *Logger) Black(message string, opts ...CallOption) { l.Log(ColorBlack, message, opts...) }

// Red prints message in red.
func (l *Logger) Red(message string, opts ...CallOption) { l.Log(ColorRed, message, opts...) }

// Green prints message in green.
func (l *Logger) Green(message string, opts ...CallOption) { l.Log(ColorGreen, message, opts...) }

// Yellow prints message in yellow.
func (l *Logger) Yellow(message string, opts ...CallOption) { l.Log(ColorYellow, message, opts...) }

// Blue prints message in blue.
func (l *Logger) Blue(message string, opts ...CallOption) { l.Log(ColorBlue, message, opts...) }

// Magenta prints message in magenta.
func (l *Logger) Magenta(message string, opts ...CallOption) { l.Log(ColorMagenta, message, opts...) }

// Cyan prints message in cyan.
func (l *Logger) Cyan(message string, opts ...CallOption) { l.Log(ColorCyan, message, opts...) }

// White prints message in white.
func (l *Logger) White(message string, opts ...CallOption) { l.Log(ColorWhite, message, opts...) }
