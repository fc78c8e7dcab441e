package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission indicates whether the context of the log request allows logging
// to happen. Useful for controlling when and how many log entries are made
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow is a Permission instance that unconditionally allows a log entry to
// be made
var Allow allow

// the maximum number of entries in the central logger before the oldest
// entries are discarded
const maxEntries = 256

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type logger struct {
	crit    sync.Mutex
	entries []entry

	// if echo is not nil then new entries are written to it as they arrive
	echo io.Writer
}

var central = logger{}

// Log makes a new entry in the central logger. The detail can be a string, a
// fmt.Stringer or an error. Anything else is formatted with the %v verb
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case fmt.Stringer:
		s = d.String()
	case error:
		s = d.Error()
	default:
		s = fmt.Sprintf("%v", detail)
	}

	central.crit.Lock()
	defer central.crit.Unlock()

	// split multi-line details into separate entries so that the tag is
	// repeated for each line
	for _, l := range strings.Split(s, "\n") {
		if len(l) == 0 {
			continue
		}
		e := entry{tag: tag, detail: l}
		central.entries = append(central.entries, e)
		if central.echo != nil {
			central.echo.Write([]byte(e.String() + "\n"))
		}
	}

	if len(central.entries) > maxEntries {
		central.entries = central.entries[len(central.entries)-maxEntries:]
	}
}

// Logf makes a new entry in the central logger using the fmt.Sprintf format
// string and arguments
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// Tail writes the last n entries in the central logger to the io.Writer. A
// negative value of n writes all entries
func Tail(w io.Writer, n int) {
	if w == nil {
		return
	}

	central.crit.Lock()
	defer central.crit.Unlock()

	if n < 0 || n > len(central.entries) {
		n = len(central.entries)
	}

	for _, e := range central.entries[len(central.entries)-n:] {
		w.Write([]byte(e.String() + "\n"))
	}
}

// SetEcho directs future log entries to the io.Writer. A nil value stops any
// echoing. If writeRecent is true then the entries already in the central
// logger are written to the io.Writer immediately
func SetEcho(w io.Writer, writeRecent bool) {
	central.crit.Lock()
	central.echo = w
	central.crit.Unlock()

	if w != nil && writeRecent {
		Tail(w, -1)
	}
}
