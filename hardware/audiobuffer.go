package hardware

import "sync"

// keep no more than this many bytes of generated audio. at 2 bytes per
// sample this is about a third of a second; anything older is stale and
// dropping it keeps the playback latency bounded
const maxBufferedAudio = 32768

// audioBuffer is an io.Reader implementation that forwards generated samples
// to something that can play it back (or store it, etc.)
type audioBuffer struct {
	crit  sync.Mutex
	data  []uint8
	nudge func()
}

func newAudioBuffer(nudge func()) *audioBuffer {
	return &audioBuffer{
		nudge: nudge,
	}
}

// push converts the chip's 14-bit unsigned amplitude to a signed 16-bit
// little-endian value. the output stays unipolar, as it is on the real
// board, so silence is zero rather than full negative
func (b *audioBuffer) push(sample uint16) {
	v := (sample & 0x3fff) << 1

	b.crit.Lock()
	defer b.crit.Unlock()

	b.data = append(b.data, uint8(v&0xff), uint8(v>>8))
	if len(b.data) > maxBufferedAudio {
		b.data = b.data[len(b.data)-maxBufferedAudio:]
	}
}

func (b *audioBuffer) Read(buf []uint8) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := min(len(b.data), len(buf))
	copy(buf, b.data[:n])
	b.data = b.data[n:]

	// the number of bytes returned needs to be a multiple of two because of
	// the sample format (1 channel, 16bit little-endian). the copy above
	// preserves that because samples only ever arrive in pairs of bytes
	return n, nil
}

// Nudge the emulation into generating the next chunk of samples without
// waiting for the limiter
func (b *audioBuffer) Nudge() {
	b.nudge()
}
