package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when the config leaves it unset.
const DefaultSampleRate = 44100

// Piezo plays tones on the host's speaker. A new tone replaces the one
// playing.
type Piezo struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
}

var speakerOnce struct {
	sync.Once
	err error
}

// NewPiezo initialises the speaker once per process and starts an empty
// mixer on it. volume is a gain in [0, 1].
func NewPiezo(sampleRate int, volume float64) (*Piezo, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	rate := beep.SampleRate(sampleRate)

	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(rate, rate.N(50*time.Millisecond))
	})
	if speakerOnce.err != nil {
		return nil, speakerOnce.err
	}

	p := &Piezo{rate: rate, volume: volume, mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

// Tone implements device.Buzzer. A zero frequency silences the piezo.
func (p *Piezo) Tone(freqHz uint16, d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()

	p.mixer.Clear()
	if freqHz == 0 || d <= 0 {
		return nil
	}
	p.mixer.Add(&effects.Gain{
		Streamer: NewSquare(freqHz, d, 1, p.rate),
		Gain:     p.volume - 1,
	})
	return nil
}

// Close silences the piezo.
func (p *Piezo) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
