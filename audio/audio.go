// Package audio is Levikno's audio engine facade (spec.md's out-of-scope
// "sound/soundboard facade over an external mixer"): a thin, id-keyed
// soundboard wrapping github.com/faiface/beep's speaker as the mixer, the
// same role gazed-vu/audio plays over OpenAL, minus the cgo binding.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Data is a loaded sound's raw PCM bytes and format, the same shape
// gazed-vu/audio.Data uses to hand a decoded WAV to BindSound.
type Data struct {
	Name       string // Unique sound name, for diagnostics only.
	PCM        []byte // Raw interleaved PCM samples.
	Channels   uint16 // 1 (mono) or 2 (stereo).
	SampleBits uint16 // 8 or 16.
	Frequency  uint32 // Sample rate in Hz, e.g. 44100.
}

// boundSound is a Data decoded once into mixer-ready samples, keyed by the
// id BindSound returns. Decoding once at bind time means PlaySound only
// ever has to spin up a fresh streamer over an already-float64 buffer.
type boundSound struct {
	samples [][2]float64
}

// Engine is the audio engine handle Context holds (spec.md §4.1: "the
// audio engine handle"). It must be initialized once via New before any
// sound is bound or played, mirroring gazed-vu/audio.Audio.Init.
type Engine struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	sounds     map[uint64]*boundSound
	nextID     uint64
	gain       float64

	listenerX, listenerY, listenerZ float64
}

// New initializes the mixer at sampleRate (e.g. 44100) and returns a ready
// Engine. bufferSize is the speaker's internal buffer duration; zero picks
// a reasonable default (1/10s), the value beep's own examples use.
func New(sampleRate int, bufferSize time.Duration) (*Engine, error) {
	sr := beep.SampleRate(sampleRate)
	if bufferSize <= 0 {
		bufferSize = time.Second / 10
	}
	if err := speaker.Init(sr, sr.N(bufferSize)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	return &Engine{
		sampleRate: sr,
		sounds:     make(map[uint64]*boundSound),
		gain:       1,
	}, nil
}

// Dispose closes the mixer. Expected to be called once on engine teardown,
// the same contract gazed-vu/audio.Audio.Dispose documents.
func (e *Engine) Dispose() {
	speaker.Close()
}

// SetGain sets the master volume. Values outside [0,1] are ignored, the
// same clamp gazed-vu/audio's openal.SetGain applies.
func (e *Engine) SetGain(gain float64) {
	if gain < 0 || gain > 1 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gain = gain
}

// BindSound decodes d's PCM bytes into mixer-ready samples and returns an
// id PlaySound/ReleaseSound use to refer to it, the facade's replacement
// for gazed-vu/audio's sound/buffer uint64 reference pair.
func (e *Engine) BindSound(d Data) (uint64, error) {
	samples, err := decodePCM(d)
	if err != nil {
		return 0, fmt.Errorf("audio: BindSound %q: %w", d.Name, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	id := e.nextID
	e.sounds[id] = &boundSound{samples: samples}
	return id, nil
}

// ReleaseSound drops a previously bound sound. Already-playing instances
// finish on their own; this only frees the soundboard entry.
func (e *Engine) ReleaseSound(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sounds, id)
}

// PlaceListener sets the single listener's position, used by PlaySound to
// compute distance attenuation and stereo pan.
func (e *Engine) PlaceListener(x, y, z float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listenerX, e.listenerY, e.listenerZ = x, y, z
}

// attenuationRange is the distance, in world units, over which a sound's
// gain falls off to silence and its pan reaches full left/right. There is
// no spec-mandated unit system, so this mirrors a typical room-scale scene.
const attenuationRange = 20.0

// PlaySound plays the sound bound to id at world position (x,y,z), panned
// and attenuated relative to the current listener position. Unlike
// OpenAL's hardware-mixed 3D voices, this approximates distance and
// left/right pan directly on the streamer chain via beep/effects.
func (e *Engine) PlaySound(id uint64, x, y, z float64) error {
	e.mu.Lock()
	snd, ok := e.sounds[id]
	gain := e.gain
	dx := x - e.listenerX
	dist := math.Sqrt(dx*dx + (y-e.listenerY)*(y-e.listenerY) + (z-e.listenerZ)*(z-e.listenerZ))
	e.mu.Unlock()
	if !ok {
		return fmt.Errorf("audio: PlaySound: unbound sound id %d", id)
	}

	attenuation := 1 - clamp(dist/attenuationRange, 0, 1)
	volume := gain * attenuation
	pan := clamp(dx/attenuationRange, -1, 1)

	panned := &effects.Pan{Streamer: newPCMStreamer(snd.samples), Pan: pan}
	speaker.Play(&effects.Volume{
		Streamer: panned,
		Base:     2,
		Volume:   gainLog2(volume),
		Silent:   volume <= 0,
	})
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// gainLog2 converts a linear [0,1] volume into the base-2 log gain
// effects.Volume.Volume expects (its value is log2 of the multiplier).
func gainLog2(volume float64) float64 {
	if volume <= 0 {
		return -144 // effectively silent; Silent flag handles true zero.
	}
	return math.Log2(volume)
}
