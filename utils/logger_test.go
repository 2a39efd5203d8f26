package utils

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Prefix(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWriterLogger(buf, slog.LevelInfo)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.With("container", "c1").Warn("index refused", "kind", "unique")
	out := buf.String()
	assert.Contains(t, out, "[multiindex] index refused")
	assert.Contains(t, out, "container=c1")
	assert.Contains(t, out, "kind=unique")
}
