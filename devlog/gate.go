package devlog

import (
	"fmt"
	"io"
	"strings"
)

// State selects which gating rule applies to a call.
type State string

const (
	// DefaultState emits whenever the execution mode is not production.
	DefaultState State = "DEFAULT"
	// DebugMode emits only when the verbosity flag equals "debug".
	DebugMode State = "DEBUGMODE"
)

const (
	// ProductionMode is the execution mode that suppresses all output.
	ProductionMode = "production"
	// DebugVerbosity is the only verbosity value that unlocks DebugMode.
	DebugVerbosity = "debug"

	// DebugModeWarning is written to the diagnostics stream when DebugMode
	// is requested without the verbosity flag set to "debug".
	DebugModeWarning = "Cannot use DEBUGMODE when the verbosity flag is undefined or not set to 'debug'"

	debugPrefix = "DEBUG - "
)

// ParseState parses a state name, ignoring case.
func ParseState(s string) (State, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(DefaultState):
		return DefaultState, nil
	case string(DebugMode):
		return DebugMode, nil
	default:
		return "", fmt.Errorf("unknown logging state: %q", s)
	}
}

// Environment is the execution context the gate decides against.
type Environment struct {
	Mode      string `json:"mode"`
	Verbosity string `json:"verbosity"`
}

// IsProduction reports whether all output is suppressed.
func (e Environment) IsProduction() bool {
	return e.Mode == ProductionMode
}

// DebugEnabled reports whether DebugMode output is unlocked.
func (e Environment) DebugEnabled() bool {
	return e.Verbosity == DebugVerbosity
}

// Decision is the outcome of gating one call.
type Decision int

const (
	// Suppressed means nothing is written.
	Suppressed Decision = iota
	// Emit writes the message to the output.
	Emit
	// EmitDebug writes the DEBUG-prefixed message to the output.
	EmitDebug
	// Warn writes DebugModeWarning to diagnostics and drops the message.
	Warn
)

// String returns a short label used by the status command.
func (d Decision) String() string {
	switch d {
	case Emit:
		return "emit"
	case EmitDebug:
		return "emit (debug)"
	case Warn:
		return "warn"
	default:
		return "suppressed"
	}
}

// Decide returns what the gate does for state under env, without writing.
func Decide(env Environment, state State) Decision {
	if env.IsProduction() {
		return Suppressed
	}
	if state != DebugMode {
		return Emit
	}
	if !env.DebugEnabled() {
		return Warn
	}
	return EmitDebug
}

// Gate writes message to out, a DEBUG-prefixed message to out, or the
// DebugMode warning to diag, according to Decide. At most one write happens
// and write errors are dropped.
func Gate(env Environment, state State, message string, out, diag io.Writer) {
	switch Decide(env, state) {
	case Emit:
		_, _ = io.WriteString(out, message+"\n")
	case EmitDebug:
		_, _ = io.WriteString(out, debugPrefix+message+"\n")
	case Warn:
		_, _ = io.WriteString(diag, DebugModeWarning+"\n")
	}
}
