package event

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/gyro_hue/internal/logging"
	"github.com/relabs-tech/gyro_hue/internal/orientation"
)

type scriptedSamples struct {
	samples []orientation.Sample
	errs    []error
	i       int
}

func (s *scriptedSamples) Next() (orientation.Sample, error) {
	i := s.i
	s.i++
	if i < len(s.errs) && s.errs[i] != nil {
		return orientation.Sample{}, s.errs[i]
	}
	return s.samples[i], nil
}

func TestMergeKeepsSourceOrder(t *testing.T) {
	first := SourceFunc(func() []Event {
		return []Event{Gyro(1, 2, 3), {Kind: ResetButton}}
	})
	empty := SourceFunc(func() []Event { return nil })
	second := SourceFunc(func() []Event {
		return []Event{{Kind: CancelKey}}
	})

	got := Merge(first, empty, second).Drain()

	require.Len(t, got, 3)
	assert.Equal(t, GyroSample, got[0].Kind)
	assert.Equal(t, orientation.Sample{Pitch: 1, Yaw: 2, Roll: 3}, got[0].Sample)
	assert.Equal(t, ResetButton, got[1].Kind)
	assert.Equal(t, CancelKey, got[2].Kind)
}

func TestMergeOfNothing(t *testing.T) {
	assert.Empty(t, Merge().Drain())
}

func TestFromSamplesSkipsErrors(t *testing.T) {
	src := &scriptedSamples{
		samples: []orientation.Sample{{Yaw: 1}, {}, {Yaw: 3}},
		errs:    []error{nil, errors.New("spi: timeout")},
	}
	s := FromSamples(src, logging.Discard())

	got := s.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, Gyro(0, 1, 0), got[0])

	assert.Empty(t, s.Drain())

	got = s.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0].Sample.Yaw)
}

func TestSignalSource(t *testing.T) {
	s := NewSignalSource(syscall.SIGUSR1)
	defer s.Stop()

	assert.Empty(t, s.Drain())

	s.ch <- syscall.SIGUSR1
	assert.Equal(t, []Event{{Kind: Quit}}, s.Drain())
	assert.Empty(t, s.Drain())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "cancel-key", CancelKey.String())
	assert.Equal(t, "reset-button", ResetButton.String())
	assert.Equal(t, "gyro-sample", GyroSample.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
