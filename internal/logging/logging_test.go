package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleFormatter(t *testing.T) {
	f := &SimpleFormatter{TimestampFormat: "2006/01/02 15:04:05"}
	entry := &logrus.Entry{
		Time:    time.Date(2026, 4, 6, 17, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "imu: calibration failed",
		Data:    logrus.Fields{"zeta": 2, "alpha": "x"},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2026/04/06 17:30:00 [WAR] imu: calibration failed alpha=x zeta=2\n", string(out))
}

func TestNewWithWriterHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Infof("hidden %d", 1)
	log.Warnf("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WAR] shown 2")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("chatty", &buf)

	log.Debugf("debug")
	log.Infof("info")

	assert.NotContains(t, buf.String(), "debug")
	assert.Contains(t, buf.String(), "[INF] info")
}

func TestNewWritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, closeLog, err := New("info", dir)
	require.NoError(t, err)
	defer closeLog()
	log.Infof("hello file")

	data, err := os.ReadFile(filepath.Join(dir, "gyrohue.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestNewCloseStopsFileOutput(t *testing.T) {
	dir := t.TempDir()

	log, closeLog, err := New("info", dir)
	require.NoError(t, err)
	log.Infof("before close")

	closeLog()
	log.Infof("after close")
	closeLog()

	data, err := os.ReadFile(filepath.Join(dir, "gyrohue.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
	assert.NotContains(t, string(data), "after close")
}

func TestNewWithoutDirHasNoopCloser(t *testing.T) {
	log, closeLog, err := New("info", "")
	require.NoError(t, err)
	require.NotNil(t, log)
	require.NotNil(t, closeLog)
	assert.NotPanics(t, closeLog)
}
