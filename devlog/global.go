package devlog

var std = New()

// Default returns the package-level logger.
func Default() *Logger { return std }

// SetDefault replaces the package-level logger. A nil logger restores a
// fresh New().
func SetDefault(l *Logger) {
	if l == nil {
		l = New()
	}
	std = l
}

// Log logs through the package-level logger.
func Log(c Color, message string, opts ...CallOption) { std.Log(c, message, opts...) }

// Blue prints message in blue.
func Blue(message string, opts ...CallOption) { std.Blue(message, opts...) }

// Green prints message in green.
func Green(message string, opts ...CallOption) { std.Green(message, opts...) }

// Red prints message in red.
func Red(message string, opts ...CallOption) { std.Red(message, opts...) }

// Magenta prints message in magenta.
func Magenta(message string, opts ...CallOption) { std.Magenta(message, opts...) }

// Black prints message in black.
func Black(message string, opts ...CallOption) { std.Black(message, opts...) }

// Yellow prints message in yellow.
func Yellow(message string, opts ...CallOption) { std.Yellow(message, opts...) }

// Cyan prints message in cyan.
func Cyan(message string, opts ...CallOption) { std.Cyan(message, opts...) }

// White prints message in white.
func White(message string, opts ...CallOption) { std.White(message, opts...) }
