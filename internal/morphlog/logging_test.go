package morphlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDummyLoggerDiscardsEverything(t *testing.T) {
	var d DummyLogger
	assert.False(t, d.IsLogLevel(LogLevelError))
	// none of these should panic; there is nothing else to assert against
	// a logger that never writes anywhere.
	d.Error("x")
	d.Trace("y %d", 1)
}

func TestWriterLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(LogLevelWarning, &buf)

	l.Debug("should not appear")
	assert.Empty(t, buf.String())

	l.Warning("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestSetLoggerInstallsPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewWriterLogger(LogLevelTrace, &buf))
	defer SetLogger(DummyLogger{})

	Log.Info("hello %s", "world")
	assert.Contains(t, buf.String(), "hello world")
}
