package audio

import "fmt"

// decodePCM turns d's interleaved 8/16-bit PCM bytes into beep's
// [-1,1]-normalized stereo sample format, duplicating a mono source to
// both channels. beep's own decoders (wav, mp3, ...) do the equivalent
// conversion from their respective container formats; this package only
// ever receives already-demuxed raw PCM, the same input gazed-vu/audio's
// openal.format/BufferData pair consumes directly.
func decodePCM(d Data) ([][2]float64, error) {
	if d.Channels != 1 && d.Channels != 2 {
		return nil, fmt.Errorf("unsupported channel count %d", d.Channels)
	}
	switch d.SampleBits {
	case 8:
		return decodePCM8(d.PCM, int(d.Channels))
	case 16:
		return decodePCM16(d.PCM, int(d.Channels))
	default:
		return nil, fmt.Errorf("unsupported sample width %d bits", d.SampleBits)
	}
}

func decodePCM8(pcm []byte, channels int) ([][2]float64, error) {
	if len(pcm)%channels != 0 {
		return nil, fmt.Errorf("pcm length %d not a multiple of %d channels", len(pcm), channels)
	}
	frames := len(pcm) / channels
	out := make([][2]float64, frames)
	for i := 0; i < frames; i++ {
		l := (float64(pcm[i*channels]) - 128) / 128
		r := l
		if channels == 2 {
			r = (float64(pcm[i*channels+1]) - 128) / 128
		}
		out[i] = [2]float64{l, r}
	}
	return out, nil
}

func decodePCM16(pcm []byte, channels int) ([][2]float64, error) {
	bytesPerFrame := 2 * channels
	if len(pcm)%bytesPerFrame != 0 {
		return nil, fmt.Errorf("pcm length %d not a multiple of %d bytes/frame", len(pcm), bytesPerFrame)
	}
	frames := len(pcm) / bytesPerFrame
	out := make([][2]float64, frames)
	for i := 0; i < frames; i++ {
		base := i * bytesPerFrame
		l := sample16(pcm, base)
		r := l
		if channels == 2 {
			r = sample16(pcm, base+2)
		}
		out[i] = [2]float64{l, r}
	}
	return out, nil
}

func sample16(pcm []byte, offset int) float64 {
	v := int16(uint16(pcm[offset]) | uint16(pcm[offset+1])<<8)
	return float64(v) / 32768
}

// pcmStreamer replays a precomputed sample buffer as a beep.Streamer.
type pcmStreamer struct {
	samples [][2]float64
	pos     int
}

func newPCMStreamer(samples [][2]float64) *pcmStreamer {
	return &pcmStreamer{samples: samples}
}

func (s *pcmStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n = copy(buf, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *pcmStreamer) Err() error { return nil }
