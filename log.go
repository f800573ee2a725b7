package aubio

/*
#include <aubio/aubio.h>

extern void goAubioLogHandler(sint_t level, char_t *message, void *data);

static void aubio_go_hook_log(void) {
	aubio_log_set_function((aubio_log_function_t)goAubioLogHandler, NULL);
}

static void aubio_go_hook_log_level(sint_t level) {
	aubio_log_set_level_function(level, (aubio_log_function_t)goAubioLogHandler, NULL);
}
*/
import "C"
import "sync"

// LogLevel identifies the severity of a native log message.
type LogLevel int

const (
	// LogError marks critical errors.
	LogError = LogLevel(C.AUBIO_LOG_ERR)
	// LogInfo marks informational messages.
	LogInfo = LogLevel(C.AUBIO_LOG_INF)
	// LogMessage marks general messages.
	LogMessage = LogLevel(C.AUBIO_LOG_MSG)
	// LogDebug marks debug messages.
	LogDebug = LogLevel(C.AUBIO_LOG_DBG)
	// LogWarning marks warnings.
	LogWarning = LogLevel(C.AUBIO_LOG_WRN)
)

// String returns a human-readable name for the level.
func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "ERROR"
	case LogInfo:
		return "INFO"
	case LogMessage:
		return "MESSAGE"
	case LogDebug:
		return "DEBUG"
	case LogWarning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}

// Logger receives log messages emitted by the native library.
//
// The callback runs on whatever thread made the native call that produced
// the message, before that call returns.
type Logger interface {
	Log(level LogLevel, message string)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(level LogLevel, message string)

// Log calls f.
func (f LoggerFunc) Log(level LogLevel, message string) { f(level, message) }

// The process holds exactly one logging registration slot, guarded for
// concurrent use from registration calls and from the native layer's
// calling threads. The registered Logger values are kept referenced here
// for as long as the native layer may invoke them.
var logState struct {
	sync.Mutex
	global   Logger
	perLevel map[LogLevel]Logger
}

// SetLogger routes all native log messages to l, replacing any previously
// registered logger and clearing per-level overrides. A replaced logger is
// never invoked again.
func SetLogger(l Logger) {
	logState.Lock()
	defer logState.Unlock()
	logState.global = l
	logState.perLevel = nil
	C.aubio_go_hook_log()
}

// SetLevelLogger routes native log messages of one severity to l, leaving
// the other levels on their current logger or native default.
func SetLevelLogger(level LogLevel, l Logger) {
	logState.Lock()
	defer logState.Unlock()
	if logState.perLevel == nil {
		logState.perLevel = make(map[LogLevel]Logger)
	}
	logState.perLevel[level] = l
	C.aubio_go_hook_log_level(C.sint_t(level))
}

// ResetLogger removes all registered loggers and restores the native
// default logging behavior.
func ResetLogger() {
	logState.Lock()
	defer logState.Unlock()
	logState.global = nil
	logState.perLevel = nil
	C.aubio_log_reset()
}

// currentLogger resolves the logger for one message under the lock.
func currentLogger(level LogLevel) Logger {
	logState.Lock()
	defer logState.Unlock()
	if l, ok := logState.perLevel[level]; ok {
		return l
	}
	return logState.global
}
