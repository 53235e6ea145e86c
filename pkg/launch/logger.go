package launch

import "log"

// Logger receives operation console output from the generation
// pipeline. The GUI binds it to a scrolling console; everything else
// gets the stdlib-log default.
type Logger interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type stdLogger struct{}

func (stdLogger) Infof(format string, args ...any)    { log.Printf("INFO "+format, args...) }
func (stdLogger) Successf(format string, args ...any) { log.Printf("OK "+format, args...) }
func (stdLogger) Warnf(format string, args ...any)    { log.Printf("WARN "+format, args...) }
func (stdLogger) Errorf(format string, args ...any)   { log.Printf("ERROR "+format, args...) }

// DefaultLogger logs through the standard library.
var DefaultLogger Logger = stdLogger{}
