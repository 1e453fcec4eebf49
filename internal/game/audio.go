package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/iburimskiy/particle-field/internal/config"
)

// cue plays a short tone whenever the pointer starts pushing. Tones are added
// to a mixer that streams silence when idle, so the level tap sees a steady
// stream.
type cue struct {
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	tap        *levelTap
}

func newCue() (*cue, error) {
	sr := beep.SampleRate(config.CueSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}

	c := &cue{
		sampleRate: sr,
		mixer:      &beep.Mixer{},
	}
	c.tap = newLevelTap(c.mixer, config.LevelRingSize)
	speaker.Play(c.tap)
	return c, nil
}

func (c *cue) play() {
	speaker.Lock()
	c.mixer.Add(pushTone(c.sampleRate, config.CueFrequency, time.Duration(config.CueDurationMs)*time.Millisecond, config.CueVolume))
	speaker.Unlock()
}

// close stops playback. speaker.Clear takes the speaker lock itself.
func (c *cue) close() {
	speaker.Clear()
}

// pushTone is a sine at freq whose amplitude decays linearly to zero over d.
func pushTone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := volume * env * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
