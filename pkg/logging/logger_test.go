package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDir points the package at a temp log directory and resets the
// session, restoring the previous globals when the test ends.
func setupTestDir(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()

	origLogDir := logDir
	origInitErr := initErr
	origSessionID := sessionID

	logDir = tempDir
	initErr = nil
	initOnce = sync.Once{}
	sessionID = ""
	sessionIDOnce = sync.Once{}

	t.Cleanup(func() {
		logDir = origLogDir
		initErr = origInitErr
		initOnce = sync.Once{}
		sessionID = origSessionID
		sessionIDOnce = sync.Once{}
	})
	return tempDir
}

func TestNewLogger(t *testing.T) {
	dir := setupTestDir(t)

	logger, err := NewLogger("store")
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, "store", logger.component)
	assert.NotEmpty(t, logger.SessionID())
	assert.Equal(t, dir, filepath.Dir(logger.LogPath()))

	_, err = os.Stat(logger.LogPath())
	assert.NoError(t, err)
}

func TestLoggerFormatting(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	require.NoError(t, err)
	defer logger.Close()

	logger.Debugf("Debug message")
	logger.Infof("Info message %d", 123)
	logger.Warnf("Warning message")
	logger.Errorf("Error message")

	content, err := os.ReadFile(logger.LogPath())
	require.NoError(t, err)

	for _, pattern := range []string{
		"[test] [DEBUG] Debug message",
		"[test] [INFO] Info message 123",
		"[test] [WARN] Warning message",
		"[test] [ERROR] Error message",
	} {
		assert.Contains(t, string(content), pattern)
	}
}

func TestMultipleComponentsShareSession(t *testing.T) {
	setupTestDir(t)

	storeLog, err := NewLogger("store")
	require.NoError(t, err)
	defer storeLog.Close()

	tuiLog, err := NewLogger("tui")
	require.NoError(t, err)
	defer tuiLog.Close()

	assert.Equal(t, storeLog.SessionID(), tuiLog.SessionID())
	assert.Equal(t, storeLog.LogPath(), tuiLog.LogPath())

	storeLog.Infof("from store")
	tuiLog.Infof("from tui")

	content, err := os.ReadFile(storeLog.LogPath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "[store]")
	assert.Contains(t, string(content), "[tui]")
}

func TestSetMirror(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("cli")
	require.NoError(t, err)
	defer logger.Close()

	var buf bytes.Buffer
	logger.SetMirror(&buf)
	logger.Warnf("mirrored %s", "entry")
	logger.SetMirror(nil)
	logger.Warnf("not mirrored")

	assert.Contains(t, buf.String(), "[cli] [WARN] mirrored entry")
	assert.NotContains(t, buf.String(), "not mirrored")
}

func TestFallbackWhenDirectoryUnusable(t *testing.T) {
	dir := setupTestDir(t)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
	logDir = filepath.Join(blocker, "logs")

	logger, err := NewLogger("store")
	require.Error(t, err)
	require.NotNil(t, logger)
	assert.Empty(t, logger.LogPath())

	// Fallback logger must still be usable.
	logger.Errorf("still works")
	assert.NoError(t, logger.Close())
}

func TestLoggerClose(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	require.NoError(t, err)

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
}

func TestLogPathFormat(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	require.NoError(t, err)
	defer logger.Close()

	fileName := filepath.Base(logger.LogPath())
	require.True(t, strings.HasSuffix(fileName, "-simpletodo.log"), fileName)

	sessionPart := strings.TrimSuffix(fileName, "-simpletodo.log")
	assert.Equal(t, logger.SessionID(), sessionPart)
}

func TestGetLogDirectory(t *testing.T) {
	dir := setupTestDir(t)

	got, err := GetLogDirectory()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}
