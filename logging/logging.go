/*Package logging controls how much the cmd modes report while they
run, and provides a namespaced elapsed-time logger for the parts that
do report. Debug and Performance output are both opt-in: by default
nothing but the mode's own result is printed.
*/
package logging

import (
	"fmt"
	"runtime"

	"github.com/convox/logger"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// This is handled this way so that GlobalConfig doesn't need to be
// threaded through literally every function in the project.
var Mode Flag = Nil

// base is the root namespaced logger every mode's Logger() call builds
// on top of.
var base = logger.New("ns=blocksort")

// Logger returns a namespaced logger for the given mode name, started
// so every subsequent Logf call reports elapsed time since this call.
func Logger(mode string) *logger.Logger {
	return base.Namespace(fmt.Sprintf("mode=%s", mode)).Start()
}

// Debugf logs format/args under the Debug logger if Mode permits
// Debug output; otherwise it's a no-op.
func Debugf(l *logger.Logger, format string, args ...interface{}) {
	if Mode != Debug {
		return
	}
	l.Logf(format, args...)
}

// Perff logs format/args if Mode permits Performance (or more verbose)
// output; otherwise it's a no-op.
func Perff(l *logger.Logger, format string, args ...interface{}) {
	if Mode != Performance && Mode != Debug {
		return
	}
	l.Logf(format, args...)
}

// MemString returns a string containing various statistics on the
// current memory usage of the process, for inclusion in Debug output
// around large bench or check runs.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}
