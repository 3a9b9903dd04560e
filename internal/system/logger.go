package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. It prints to stderr with
// timestamps; the TUI redirects it to a file while the alt screen is up.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// LogToFile redirects the shared logger to path, returning a close func.
func LogToFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	Logger.SetOutput(f)
	return f.Close, nil
}
