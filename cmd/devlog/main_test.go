package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tralse/devlog/devlog"
	"github.com/tralse/devlog/internal/config"
	"github.com/tralse/devlog/internal/console"
)

// clearEnv unsets the gate variables for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// execute runs the CLI against dir and returns stdout, stderr and the
// command error.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	oldStdout, oldStderr := console.Stdout, console.Stderr
	defer func() { console.Stdout, console.Stderr = oldStdout, oldStderr }()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", dir, "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// run is execute for commands expected to succeed.
func run(t *testing.T, dir string, args ...string) (string, string) {
	t.Helper()
	out, errOut, err := execute(t, dir, args...)
	if err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return out, errOut
}

func TestPrint(t *testing.T) {
	clearEnv(t, "NODE_ENV", "DEV_MODE")
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"named color", []string{"print", "blue", "hi"}, "\x1b[34m[tralseDb] hi\x1b[0m\n"},
		{"config color", []string{"print", "hello", "world"}, "\x1b[34m[tralseDb] hello world\x1b[0m\n"},
		{"color word alone is the message", []string{"print", "red"}, "\x1b[34m[tralseDb] red\x1b[0m\n"},
		{"custom header", []string{"print", "-H", "svc", "green", "ok"}, "\x1b[32m[svc] ok\x1b[0m\n"},
		{"empty header", []string{"print", "-H", "", "green", "ok"}, "\x1b[32m[] ok\x1b[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := run(t, dir, tt.args...)
			if out != tt.want {
				t.Errorf("stdout = %q, want %q", out, tt.want)
			}
			if errOut != "" {
				t.Errorf("Expected no stderr, got %q", errOut)
			}
		})
	}
}

func TestPrint_Gate(t *testing.T) {
	dir := t.TempDir()

	t.Run("production", func(t *testing.T) {
		clearEnv(t, "DEV_MODE")
		t.Setenv("NODE_ENV", "production")

		out, errOut := run(t, dir, "print", "red", "oops")
		if out != "" || errOut != "" {
			t.Errorf("Expected no output, got stdout=%q stderr=%q", out, errOut)
		}
	})

	t.Run("debug enabled", func(t *testing.T) {
		t.Setenv("NODE_ENV", "development")
		t.Setenv("DEV_MODE", "debug")

		out, _ := run(t, dir, "print", "--debug", "-H", "svc", "green", "ok")
		if want := "DEBUG - \x1b[32m[svc] ok\x1b[0m\n"; out != want {
			t.Errorf("stdout = %q, want %q", out, want)
		}
	})

	t.Run("debug without verbosity", func(t *testing.T) {
		clearEnv(t, "NODE_ENV", "DEV_MODE")

		out, errOut := run(t, dir, "print", "--state", "debugmode", "magenta", "x")
		if out != "" {
			t.Errorf("Expected suppressed message, got %q", out)
		}
		if want := devlog.DebugModeWarning + "\n"; errOut != want {
			t.Errorf("stderr = %q, want %q", errOut, want)
		}
	})
}

func TestPrint_UsesConfigAndEnvFile(t *testing.T) {
	clearEnv(t, "APP_STAGE", "APP_VERBOSE")
	dir := t.TempDir()

	cfg := config.NewDefaultConfig()
	cfg.Header = "api"
	cfg.Color = "cyan"
	cfg.ModeVar = "APP_STAGE"
	cfg.VerbosityVar = "APP_VERBOSE"
	if err := cfg.Save(dir); err != nil {
		t.Fatal(err)
	}
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("APP_STAGE=development\nAPP_VERBOSE=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _ := run(t, dir, "print", "-d", "started")
	if want := "DEBUG - \x1b[36m[api] started\x1b[0m\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestStatusJSON(t *testing.T) {
	clearEnv(t, "DEV_MODE")
	t.Setenv("NODE_ENV", "production")
	dir := t.TempDir()

	status, _ := run(t, dir, "status", "--json")

	var info statusInfo
	if err := json.Unmarshal([]byte(status), &info); err != nil {
		t.Fatalf("Failed to parse status JSON %q: %v", status, err)
	}
	if info.Environment.Mode != "production" {
		t.Errorf("Mode = %q, want production", info.Environment.Mode)
	}
	if info.Default != "suppressed" || info.DebugMode != "suppressed" {
		t.Errorf("Expected both states suppressed, got %q / %q", info.Default, info.DebugMode)
	}
	if info.ModeVar != "NODE_ENV" || info.Header != "tralseDb" {
		t.Errorf("Unexpected status %+v", info)
	}
	if want := config.NewDefaultConfig().Hash(); info.ConfigHash != want {
		t.Errorf("ConfigHash = %q, want %q", info.ConfigHash, want)
	}
}

func TestStatus_HashFollowsConfig(t *testing.T) {
	clearEnv(t, "NODE_ENV", "DEV_MODE")
	dir := t.TempDir()

	cfg := config.NewDefaultConfig()
	cfg.Header = "api"
	if err := cfg.Save(dir); err != nil {
		t.Fatal(err)
	}

	status, _ := run(t, dir, "status")
	if !strings.Contains(status, "Config hash: "+cfg.Hash()) {
		t.Errorf("Expected hash of saved config, got:\n%s", status)
	}
	if strings.Contains(status, config.NewDefaultConfig().Hash()) {
		t.Errorf("Expected hash to differ from the default config, got:\n%s", status)
	}
}

func TestInvalidConfigStopsLogging(t *testing.T) {
	clearEnv(t, "NODE_ENV", "DEV_MODE")
	dir := t.TempDir()

	cfg := config.NewDefaultConfig()
	cfg.Color = "orange"
	if err := cfg.Save(dir); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{{"print", "hi"}, {"status"}} {
		out, _, err := execute(t, dir, args...)
		if err == nil {
			t.Errorf("Expected %v to fail on an invalid config", args)
			continue
		}
		if !strings.Contains(err.Error(), "color: Unknown color: 'orange'") {
			t.Errorf("Unexpected error for %v: %v", args, err)
		}
		if out != "" {
			t.Errorf("Expected no output for %v, got %q", args, out)
		}
	}

	// commands that do not log through the config still run
	for _, name := range []string{"version", "colors"} {
		if _, _, err := execute(t, dir, name); err != nil {
			t.Errorf("Expected %s to run, got %v", name, err)
		}
	}
}

func TestStatusText(t *testing.T) {
	clearEnv(t, "NODE_ENV", "DEV_MODE")
	dir := t.TempDir()

	status, _ := run(t, dir, "status")
	for _, want := range []string{"NODE_ENV:", "(unset)", "DEFAULT:     emit", "DEBUGMODE:   warn"} {
		if !strings.Contains(status, want) {
			t.Errorf("Expected status to contain %q, got:\n%s", want, status)
		}
	}
}

func TestColors(t *testing.T) {
	dir := t.TempDir()
	status, _ := run(t, dir, "colors")

	lines := strings.Split(strings.TrimRight(status, "\n"), "\n")
	if len(lines) != len(devlog.Colors()) {
		t.Fatalf("Expected one line per color, got %d:\n%s", len(lines), status)
	}
	if !strings.Contains(status, "* blue") {
		t.Errorf("Expected default color to be marked, got:\n%s", status)
	}
	if !strings.Contains(status, "\x1b[35m[tralseDb] sample\x1b[0m") {
		t.Errorf("Expected magenta sample, got:\n%s", status)
	}
}

func TestInitAndValidate(t *testing.T) {
	dir := t.TempDir()

	status, _ := run(t, dir, "init")
	if !strings.Contains(status, "[OK] Created") {
		t.Errorf("Expected success message, got %q", status)
	}
	if _, err := os.Stat(config.Path(dir)); err != nil {
		t.Fatalf("Expected config file: %v", err)
	}

	status, _ = run(t, dir, "validate", "--quiet")
	if !strings.Contains(status, "Configuration is valid") {
		t.Errorf("Expected valid config, got:\n%s", status)
	}

	status, _ = run(t, dir, "init", "--force")
	if !strings.Contains(status, "[OK] Created") {
		t.Errorf("Expected forced init to succeed, got %q", status)
	}
}

func TestVersion(t *testing.T) {
	status, _ := run(t, t.TempDir(), "version")
	if status != "devlog version "+version+"\n" {
		t.Errorf("Unexpected version output %q", status)
	}
}
