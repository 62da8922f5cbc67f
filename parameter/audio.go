package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same cue
	MinSoundGap = 60 * time.Millisecond

	// AudioMasterVolume scales every cue, linear 0..1
	AudioMasterVolume = 0.6
)

// Infection cue: low saw buzz
const (
	InfectionSoundDuration = 120 * time.Millisecond
	InfectionSoundAttack   = 5 * time.Millisecond
	InfectionSoundRelease  = 60 * time.Millisecond
	InfectionSoundFreq     = 110.0
	InfectionSoundVolume   = 0.35
)

// Burst cue: noise crack over a falling rumble
const (
	BurstSoundDuration = 300 * time.Millisecond
	BurstSoundAttack   = 2 * time.Millisecond
	BurstSoundRelease  = 250 * time.Millisecond
	BurstSoundRumble   = 70.0
	BurstSoundVolume   = 0.5
)

// Capture cue: short bell
const (
	CaptureSoundDuration        = 250 * time.Millisecond
	CaptureSoundAttack          = 5 * time.Millisecond
	CaptureSoundFundamentalFreq = 880.0
	CaptureSoundFundamentalRel  = 220 * time.Millisecond
	CaptureSoundOvertoneRel     = 90 * time.Millisecond
	CaptureSoundVolume          = 0.3
)

// Cleanup cue: two-note chime
const (
	CleanupSoundNote1Freq     = 659.25
	CleanupSoundNote2Freq     = 987.77
	CleanupSoundNote1Duration = 70 * time.Millisecond
	CleanupSoundNote2Duration = 160 * time.Millisecond
	CleanupSoundAttack        = 4 * time.Millisecond
	CleanupSoundNote1Release  = 30 * time.Millisecond
	CleanupSoundNote2Release  = 130 * time.Millisecond
	CleanupSoundVolume        = 0.3
)
