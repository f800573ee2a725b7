package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "unsafe"

//export goAubioLogHandler
func goAubioLogHandler(level C.sint_t, message *C.char_t, data unsafe.Pointer) {
	_ = data
	l := currentLogger(LogLevel(level))
	if l == nil {
		return
	}
	l.Log(LogLevel(level), C.GoString((*C.char)(unsafe.Pointer(message))))
}
