package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// MixerOutput collects cues into one beep.Mixer that a device streams from.
type MixerOutput struct {
	lock  sync.Locker
	mixer *beep.Mixer
}

// NewMixerOutput creates an output guarded by lock. The lock must be the one
// the consuming device holds while streaming (speaker.Lock for the speaker).
// A nil lock uses a private mutex.
func NewMixerOutput(lock sync.Locker) *MixerOutput {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &MixerOutput{
		lock:  lock,
		mixer: &beep.Mixer{},
	}
}

// Play adds a streamer to the mix.
func (m *MixerOutput) Play(s beep.Streamer) {
	m.lock.Lock()
	m.mixer.Add(s)
	m.lock.Unlock()
}

// Streamer returns the mix for a device to consume.
func (m *MixerOutput) Streamer() beep.Streamer {
	return m.mixer
}

// Len returns the number of cues still playing.
func (m *MixerOutput) Len() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.mixer.Len()
}

// Clear drops every queued cue.
func (m *MixerOutput) Clear() {
	m.lock.Lock()
	m.mixer.Clear()
	m.lock.Unlock()
}
