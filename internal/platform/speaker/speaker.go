// Package speaker plays the audio board through the system sound device.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-slicer/internal/audio"
)

// deviceLock guards the mixer with the speaker's own lock, so cues added from
// the game loop never race the device callback.
type deviceLock struct{}

func (deviceLock) Lock()   { speaker.Lock() }
func (deviceLock) Unlock() { speaker.Unlock() }

var (
	once    sync.Once
	output  *audio.MixerOutput
	initErr error
)

// Open initialises the sound device once and returns an output streaming into it.
func Open() (*audio.MixerOutput, error) {
	once.Do(func() {
		if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
			initErr = fmt.Errorf("speaker: cannot open sound device: %w", err)
			return
		}
		output = audio.NewMixerOutput(deviceLock{})
		speaker.Play(output.Streamer())
	})
	return output, initErr
}

// Close stops playback and releases the device.
func Close() {
	if output == nil {
		return
	}
	output.Clear()
	speaker.Close()
}
