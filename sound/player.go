package sound

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	bufferSize      = 10
	resampleQuality = 4
)

// SpeakerPlayer plays tracks through the system audio device.
type SpeakerPlayer struct {
	stream     beep.StreamSeekCloser
	ctrl       *beep.Ctrl
	dir        string
	sampleRate beep.SampleRate
	mu         sync.Mutex
}

// NewSpeakerPlayer returns a player that finds track files in dir. The
// audio device is opened on first use.
func NewSpeakerPlayer(dir string) *SpeakerPlayer {
	return &SpeakerPlayer{dir: dir}
}

// decode returns an audio stream for the file at path.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, err
	}

	return stream, format, nil
}

func (p *SpeakerPlayer) Play(t Track, onEnd func()) error {
	path, err := t.Path(p.dir)
	if err != nil {
		return err
	}

	stream, format, err := decode(path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sampleRate == 0 {
		err = speaker.Init(
			format.SampleRate,
			format.SampleRate.N(time.Second/bufferSize),
		)
		if err != nil {
			_ = stream.Close()
			return errSpeakerInit.Wrap(err)
		}

		p.sampleRate = format.SampleRate
	}

	p.stopLocked()

	var s beep.Streamer = stream
	if format.SampleRate != p.sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, p.sampleRate, stream)
	}

	p.stream = stream
	p.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(s, beep.Callback(func() {
			// the callback runs on the speaker goroutine which holds the
			// speaker lock
			go onEnd()
		})),
	}

	speaker.Play(p.ctrl)

	return nil
}

func (p *SpeakerPlayer) Pause() {
	p.setPaused(true)
}

func (p *SpeakerPlayer) Resume() error {
	p.setPaused(false)
	return nil
}

func (p *SpeakerPlayer) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *SpeakerPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *SpeakerPlayer) stopLocked() {
	if p.sampleRate != 0 {
		speaker.Clear()
	}

	if p.stream != nil {
		_ = p.stream.Close()
	}

	p.stream = nil
	p.ctrl = nil
}

// Close stops playback and releases the audio device.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	if p.sampleRate != 0 {
		speaker.Close()
		p.sampleRate = 0
	}
}
