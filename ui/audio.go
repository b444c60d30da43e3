package ui

import (
	"encoding/binary"
	"math"
	"time"

	"hand-snake/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const sampleRate = 44100

var ErrAudioDisabled = errors.New("audio disabled")

// Audio plays a short synthesized blip when food is eaten.
type Audio struct {
	sound rl.Sound
}

// NewAudio opens the audio device. Callers treat any error as "play
// nothing" and carry on.
func NewAudio(cfg config.Audio) (*Audio, error) {
	if !cfg.Enabled {
		return nil, ErrAudioDisabled
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil, errors.New("audio device unavailable")
	}

	pcm := synthBlip(cfg.Frequency, cfg.Duration.Duration)
	wave := rl.NewWave(uint32(len(pcm)/2), sampleRate, 16, 1, pcm)
	sound := rl.LoadSoundFromWave(wave)
	if sound.FrameCount == 0 {
		rl.CloseAudioDevice()
		return nil, errors.New("eat sound failed to load")
	}
	return &Audio{sound: sound}, nil
}

func (a *Audio) PlayEatSound() error {
	if !rl.IsAudioDeviceReady() {
		return errors.New("audio device lost")
	}
	rl.PlaySound(a.sound)
	return nil
}

func (a *Audio) Close() {
	rl.UnloadSound(a.sound)
	rl.CloseAudioDevice()
}

// synthBlip renders a mono 16-bit sine with a linear fade out.
func synthBlip(freq float64, d time.Duration) []byte {
	n := int(d.Seconds() * sampleRate)
	pcm := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * env * 0.5
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(v*math.MaxInt16)))
	}
	return pcm
}
