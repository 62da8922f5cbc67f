package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cytosim/parameter"
	"github.com/lixenwraith/cytosim/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw finite wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates an oscillator streaming for duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.noise = vmath.NewUnseededRand()
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	releaseStart   int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release shape over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   max(total-rel, att),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateInfectionSound is a low buzz for a cell turning infected
func CreateInfectionSound(rate beep.SampleRate, master float64) beep.Streamer {
	osc := NewOscillator(parameter.InfectionSoundFreq, parameter.InfectionSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.InfectionSoundDuration,
		parameter.InfectionSoundAttack, parameter.InfectionSoundRelease, rate)
	return newVolume(shaped, parameter.InfectionSoundVolume*master)
}

// CreateBurstSound is a noise crack over a rumble for a bursting cell
func CreateBurstSound(rate beep.SampleRate, master float64) beep.Streamer {
	noise := NewOscillator(0, parameter.BurstSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.BurstSoundDuration,
		parameter.BurstSoundAttack, parameter.BurstSoundRelease/2, rate)

	rumble := NewOscillator(parameter.BurstSoundRumble, parameter.BurstSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, parameter.BurstSoundDuration,
		parameter.BurstSoundAttack, parameter.BurstSoundRelease, rate)

	mixed := beep.Mix(newVolume(noiseShaped, 0.4), newVolume(rumbleShaped, 0.6))
	return newVolume(mixed, parameter.BurstSoundVolume*master)
}

// CreateCaptureSound is a short bell for an antibody docking
func CreateCaptureSound(rate beep.SampleRate, master float64) beep.Streamer {
	fund := NewOscillator(parameter.CaptureSoundFundamentalFreq, parameter.CaptureSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.CaptureSoundDuration,
		parameter.CaptureSoundAttack, parameter.CaptureSoundFundamentalRel, rate)

	over := NewOscillator(parameter.CaptureSoundFundamentalFreq*2, parameter.CaptureSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.CaptureSoundDuration,
		parameter.CaptureSoundAttack, parameter.CaptureSoundOvertoneRel, rate)

	mixed := beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
	return newVolume(mixed, parameter.CaptureSoundVolume*master)
}

// CreateCleanupSound is a rising two-note chime for a leukocyte engulfing a target
func CreateCleanupSound(rate beep.SampleRate, master float64) beep.Streamer {
	n1 := NewOscillator(parameter.CleanupSoundNote1Freq, parameter.CleanupSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.CleanupSoundNote1Duration,
		parameter.CleanupSoundAttack, parameter.CleanupSoundNote1Release, rate)

	n2 := NewOscillator(parameter.CleanupSoundNote2Freq, parameter.CleanupSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.CleanupSoundNote2Duration,
		parameter.CleanupSoundAttack, parameter.CleanupSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), parameter.CleanupSoundVolume*master)
}
