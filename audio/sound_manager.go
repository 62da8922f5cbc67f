// Package audio plays short generated cues for simulation lifecycle events.
// Audio is optional: every call is a no-op until Initialize succeeds.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cytosim/event"
	"github.com/lixenwraith/cytosim/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cue identifies one sound effect
type Cue int

const (
	CueNone Cue = iota
	CueInfection
	CueBurst
	CueCapture
	CueCleanup
	cueCount
)

// CueFor maps a lifecycle event to its sound cue
func CueFor(t event.EventType) Cue {
	switch t {
	case event.EventInfection:
		return CueInfection
	case event.EventBurst:
		return CueBurst
	case event.EventCapture, event.EventCellAttach:
		return CueCapture
	case event.EventVirusCleanup, event.EventCellCleanup:
		return CueCleanup
	default:
		return CueNone
	}
}

// SoundManager mixes cues onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	master      float64

	lastPlayed [cueCount]time.Time
	now        func() time.Time
	play       func(Cue) // Replaced in tests
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		master: parameter.AudioMasterVolume,
		now:    time.Now,
	}
	sm.play = sm.mixCue
	return sm
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts a cue unless the same cue played within MinSoundGap
// Returns true if the cue was started
func (sm *SoundManager) Play(cue Cue) bool {
	if cue <= CueNone || cue >= cueCount {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	now := sm.now()
	if now.Sub(sm.lastPlayed[cue]) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[cue] = now
	sm.play(cue)
	return true
}

// HandleEvents plays the cue of each event; bursts of identical events collapse to one sound
func (sm *SoundManager) HandleEvents(events []event.Event) int {
	played := 0
	for _, ev := range events {
		if sm.Play(CueFor(ev.Type)) {
			played++
		}
	}
	return played
}

// mixCue adds the cue to the mixer; caller holds sm.mu
func (sm *SoundManager) mixCue(cue Cue) {
	s := createCue(cue, sm.master)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func createCue(cue Cue, master float64) beep.Streamer {
	switch cue {
	case CueInfection:
		return CreateInfectionSound(sampleRate, master)
	case CueBurst:
		return CreateBurstSound(sampleRate, master)
	case CueCapture:
		return CreateCaptureSound(sampleRate, master)
	case CueCleanup:
		return CreateCleanupSound(sampleRate, master)
	default:
		return nil
	}
}
