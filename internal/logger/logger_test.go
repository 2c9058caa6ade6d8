package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "session.txt")
	l := New(path)
	l.Log("session started")
	l.Logf("loaded %d nodes", 22)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.True(t, strings.HasSuffix(lines[0], "] session started"))
	assert.True(t, strings.HasSuffix(lines[1], "] loaded 22 nodes"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(data))
}

func TestDiscardKeepsLines(t *testing.T) {
	l := Discard()
	l.Log("x")
	assert.Len(t, l.Lines(), 1)

	// Lines returns a copy
	l.Lines()[0] = "changed"
	assert.True(t, strings.HasSuffix(l.Lines()[0], "] x"))
}
