// Package session implements the session controller: the idle / playing /
// ending / ended state machine, the countdown, scoring and the high score.
package session

import (
	"io"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/audio"
	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
)

// State is the session state.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateEnding
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateEnding:
		return "Ending"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Spawner is the spawn director as seen by the controller.
type Spawner interface {
	Reset()
	Activate()
	Deactivate()
}

// Implement is the cutting implement.
type Implement interface {
	Enable()
	Disable()
}

// SceneClearer removes every spawned entity.
type SceneClearer interface {
	Clear()
}

// HighScoreStore persists the high score.
type HighScoreStore interface {
	GetFloat(key string, def float64) float64
	SetFloat(key string, value float64)
	DeleteKey(key string)
}

// SoundPlayer plays cues fire-and-forget.
type SoundPlayer interface {
	Play(cue audio.Cue)
}

// Quitter terminates the host.
type Quitter interface {
	Quit()
}

// Deps are the collaborators a Controller drives. Spawner, Implement, Store
// and Presenter are required; the rest default to no-ops.
type Deps struct {
	Spawner   Spawner
	Implement Implement
	Scene     SceneClearer
	Store     HighScoreStore
	Presenter Presenter
	Sounds    SoundPlayer
	Quitter   Quitter
	Logger    *log.Logger
}

// Controller owns one player's session.
type Controller struct {
	cfg config.SessionConfig

	spawner   Spawner
	implement Implement
	scene     SceneClearer
	store     HighScoreStore
	presenter Presenter
	sounds    SoundPlayer
	quitter   Quitter
	logger    *log.Logger

	state         State
	score         int
	timeRemaining time.Duration
	timeScale     float64
	ending        *EndingSequence
}

type nop struct{}

func (nop) Clear()         {}
func (nop) Play(audio.Cue) {}
func (nop) Quit()          {}

// New creates a controller in Idle with the start panel showing.
// The stored high score is deleted when cfg.ResetHighScore is set.
func New(cfg config.SessionConfig, deps Deps) *Controller {
	c := &Controller{
		cfg:           cfg,
		spawner:       deps.Spawner,
		implement:     deps.Implement,
		scene:         deps.Scene,
		store:         deps.Store,
		presenter:     deps.Presenter,
		sounds:        deps.Sounds,
		quitter:       deps.Quitter,
		logger:        deps.Logger,
		state:         StateIdle,
		timeRemaining: cfg.Duration,
		timeScale:     1,
	}
	if c.scene == nil {
		c.scene = nop{}
	}
	if c.sounds == nil {
		c.sounds = nop{}
	}
	if c.quitter == nil {
		c.quitter = nop{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	c.spawner.Deactivate()
	c.implement.Disable()
	c.presenter.ShowStartPanel(true)
	c.presenter.ShowHUD(false)
	c.presenter.ShowEndPanel(false)
	c.presenter.SetFadeColor(core.Transparent)

	if cfg.ResetHighScore {
		c.store.DeleteKey(cfg.HighScoreKey)
	}
	c.presenter.SetHighScoreText(c.highScoreText())
	return c
}

// StartSession enters Playing from Idle or Ended.
func (c *Controller) StartSession() {
	if c.state == StatePlaying || c.state == StateEnding {
		c.logger.Debug("start ignored", "state", c.state)
		return
	}

	c.presenter.ShowStartPanel(false)
	c.presenter.ShowEndPanel(false)
	c.presenter.ShowHUD(true)
	c.presenter.SetFadeColor(core.Transparent)

	c.timeScale = 1
	c.scene.Clear()
	c.implement.Enable()
	c.spawner.Reset()
	c.spawner.Activate()

	c.score = 0
	c.timeRemaining = c.cfg.Duration
	c.ending = nil
	c.presenter.SetScoreText(strconv.Itoa(c.score))
	c.presenter.SetTimerText(c.timerText())

	c.state = StatePlaying
	c.logger.Info("session started", "duration", c.cfg.Duration)
}

// RestartSession resets the time-scale and starts a new session.
func (c *Controller) RestartSession() {
	c.timeScale = 1
	c.StartSession()
}

// Quit asks the host to terminate.
func (c *Controller) Quit() {
	c.logger.Info("quit requested", "state", c.state, "score", c.score)
	c.quitter.Quit()
}

// IncreaseScore adds points while Playing and raises the stored high score
// when it is exceeded. Negative points are ignored.
func (c *Controller) IncreaseScore(points int) {
	if c.state != StatePlaying || points < 0 {
		return
	}
	c.score += points
	c.presenter.SetScoreText(strconv.Itoa(c.score))

	if high := c.store.GetFloat(c.cfg.HighScoreKey, 0); float64(c.score) > high {
		c.store.SetFloat(c.cfg.HighScoreKey, float64(c.score))
	}
}

// TriggerHazard starts the ending sequence. Only the first call during
// Playing has an effect.
func (c *Controller) TriggerHazard() {
	if c.state != StatePlaying {
		return
	}
	c.implement.Disable()
	c.spawner.Deactivate()

	c.ending = NewEndingSequence(c.cfg.FadeDuration, c.cfg.FadePause)
	c.presenter.SetFadeColor(c.ending.Overlay())
	c.state = StateEnding
	c.logger.Info("hazard hit", "score", c.score, "time_left", c.timeRemaining.Round(time.Millisecond))
}

// Tick advances the controller by dt of real time.
func (c *Controller) Tick(dt time.Duration) {
	switch c.state {
	case StatePlaying:
		if c.timeRemaining <= 0 {
			return
		}
		c.timeRemaining -= dt
		c.presenter.SetTimerText(c.timerText())
		if c.timeRemaining <= 0 {
			c.logger.Info("session timed out", "score", c.score)
			c.end()
		}

	case StateEnding:
		c.ending.Advance(dt)
		c.presenter.SetFadeColor(c.ending.Overlay())
		c.timeScale = c.ending.TimeScale()
		if c.ending.Done() {
			c.end()
		}
	}
}

// Scaled converts a real time step into world time.
func (c *Controller) Scaled(dt time.Duration) time.Duration {
	return time.Duration(float64(dt) * c.timeScale)
}

// end moves to Ended and shows the results.
func (c *Controller) end() {
	c.timeScale = 0
	c.sounds.Play(audio.CueSessionEnd)
	c.implement.Disable()
	c.spawner.Deactivate()

	c.presenter.SetFinalScoreText("Score: " + strconv.Itoa(c.score))
	c.presenter.SetHighScoreText(c.highScoreText())
	c.presenter.ShowEndPanel(true)

	c.state = StateEnded
	c.logger.Info("session ended", "score", c.score, "high_score", c.HighScore())
}

func (c *Controller) timerText() string {
	secs := math.Round(c.timeRemaining.Seconds())
	if secs < 0 {
		secs = 0
	}
	return "Time: " + strconv.Itoa(int(secs))
}

func (c *Controller) highScoreText() string {
	return "High Score: " + strconv.FormatFloat(c.HighScore(), 'f', -1, 64)
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Score returns the current session score.
func (c *Controller) Score() int { return c.score }

// TimeRemaining returns the countdown. It may be slightly negative after a timeout.
func (c *Controller) TimeRemaining() time.Duration { return c.timeRemaining }

// TimeScale returns the world time multiplier.
func (c *Controller) TimeScale() float64 { return c.timeScale }

// Ending returns the running ending sequence, or nil.
func (c *Controller) Ending() *EndingSequence { return c.ending }

// HighScore returns the stored high score.
func (c *Controller) HighScore() float64 {
	return c.store.GetFloat(c.cfg.HighScoreKey, 0)
}
