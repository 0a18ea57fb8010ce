package audio

import "testing"

func TestDecodePCM16Stereo(t *testing.T) {
	// Two frames: (min,max), (0,0).
	pcm := []byte{
		0x00, 0x80, // -32768 -> -1.0
		0xff, 0x7f, // 32767 -> ~1.0
		0x00, 0x00, // 0
		0x00, 0x00, // 0
	}
	samples, err := decodePCM(Data{PCM: pcm, Channels: 2, SampleBits: 16, Frequency: 44100})
	if err != nil {
		t.Fatalf("decodePCM: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(samples))
	}
	if samples[0][0] != -1.0 {
		t.Fatalf("expected left channel -1.0, got %v", samples[0][0])
	}
	if samples[0][1] < 0.99 || samples[0][1] > 1.0 {
		t.Fatalf("expected right channel ~1.0, got %v", samples[0][1])
	}
	if samples[1] != [2]float64{0, 0} {
		t.Fatalf("expected second frame silent, got %v", samples[1])
	}
}

func TestDecodePCM8Mono(t *testing.T) {
	pcm := []byte{0, 128, 255}
	samples, err := decodePCM(Data{PCM: pcm, Channels: 1, SampleBits: 8, Frequency: 8000})
	if err != nil {
		t.Fatalf("decodePCM: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(samples))
	}
	if samples[0][0] != samples[0][1] {
		t.Fatalf("expected mono source duplicated across channels")
	}
	if samples[1] != [2]float64{0, 0} {
		t.Fatalf("expected midpoint byte to decode to silence, got %v", samples[1])
	}
}

func TestDecodePCMRejectsBadChannelCount(t *testing.T) {
	if _, err := decodePCM(Data{PCM: []byte{0, 0}, Channels: 3, SampleBits: 16}); err == nil {
		t.Fatalf("expected error for unsupported channel count")
	}
}

func TestDecodePCMRejectsMisalignedBuffer(t *testing.T) {
	if _, err := decodePCM(Data{PCM: []byte{0, 0, 0}, Channels: 2, SampleBits: 16}); err == nil {
		t.Fatalf("expected error for misaligned buffer length")
	}
}

func TestPCMStreamerStream(t *testing.T) {
	s := newPCMStreamer([][2]float64{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}})
	buf := make([][2]float64, 2)
	n, ok := s.Stream(buf)
	if !ok || n != 2 {
		t.Fatalf("expected first Stream to fill 2 samples, got n=%d ok=%v", n, ok)
	}
	n, ok = s.Stream(buf)
	if !ok || n != 1 {
		t.Fatalf("expected second Stream to fill 1 sample, got n=%d ok=%v", n, ok)
	}
	_, ok = s.Stream(buf)
	if ok {
		t.Fatalf("expected Stream to report exhausted after all samples consumed")
	}
	if err := s.Err(); err != nil {
		t.Fatalf("expected nil Err, got %v", err)
	}
}

func TestGainLog2(t *testing.T) {
	if g := gainLog2(1); g != 0 {
		t.Fatalf("expected gainLog2(1) == 0, got %v", g)
	}
	if g := gainLog2(0); g != -144 {
		t.Fatalf("expected gainLog2(0) == -144, got %v", g)
	}
	if g := gainLog2(0.5); g != -1 {
		t.Fatalf("expected gainLog2(0.5) == -1, got %v", g)
	}
}

func TestClamp(t *testing.T) {
	if v := clamp(5, 0, 1); v != 1 {
		t.Fatalf("expected clamp to cap at hi, got %v", v)
	}
	if v := clamp(-5, 0, 1); v != 0 {
		t.Fatalf("expected clamp to floor at lo, got %v", v)
	}
	if v := clamp(0.5, 0, 1); v != 0.5 {
		t.Fatalf("expected clamp to pass through in-range value, got %v", v)
	}
}
