// Package session drives the real-time execution of one workout:
// countdown, exercise and rest phases advanced by one-second ticks,
// with pause, skip and cancel commands layered on top. The package has
// no timer of its own; the caller owns the tick source.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/fitadapt/internal/fitness"
)

// Phase is the machine's current stage.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseExercise
	PhaseRest
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseExercise:
		return "exercise"
	case PhaseRest:
		return "rest"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// countdownSeconds is the fixed get-ready time before the first
// exercise and after a skip.
const countdownSeconds = 5

// Notifier receives audio-cue side effects. Implementations must not
// fail into the machine; calls are fire-and-forget.
type Notifier interface {
	Beep()
	Announce(name string)
}

// NopNotifier discards all cues.
type NopNotifier struct{}

func (NopNotifier) Beep()           {}
func (NopNotifier) Announce(string) {}

// ErrNotComplete is returned when a completion record is requested
// before the machine reaches the complete phase.
var ErrNotComplete = errors.New("session: workout not complete")

// ErrMissingFeedback is returned when rating or difficulty feedback is
// absent; the record must not be persisted without both.
var ErrMissingFeedback = errors.New("session: rating and difficulty feedback required")

// Session executes one workout. Not safe for concurrent use; ticks and
// commands are expected from a single goroutine.
type Session struct {
	workout  fitness.Workout
	notifier Notifier

	phase     Phase
	index     int // current exercise
	set       int // 1-based set within the current exercise
	remaining int // seconds left in the current phase
	elapsed   int // seconds spent outside countdown, unpaused
	paused    bool
	cancelled bool
	startedAt time.Time
}

// New starts a session in the countdown phase. The workout must have
// at least one exercise.
func New(w fitness.Workout, n Notifier, now time.Time) *Session {
	if n == nil {
		n = NopNotifier{}
	}
	return &Session{
		workout:   w,
		notifier:  n,
		phase:     PhaseCountdown,
		set:       1,
		remaining: countdownSeconds,
		startedAt: now,
	}
}

func (s *Session) Workout() fitness.Workout { return s.workout }
func (s *Session) Phase() Phase             { return s.phase }
func (s *Session) Remaining() int           { return s.remaining }
func (s *Session) Elapsed() int             { return s.elapsed }
func (s *Session) Paused() bool             { return s.paused }
func (s *Session) Cancelled() bool          { return s.cancelled }
func (s *Session) ExerciseIndex() int       { return s.index }
func (s *Session) CurrentSet() int          { return s.set }
func (s *Session) TotalExercises() int      { return len(s.workout.Exercises) }

// CurrentExercise returns the exercise in play. ok is false once the
// session is complete or the workout is empty.
func (s *Session) CurrentExercise() (fitness.WorkoutExercise, bool) {
	if s.index >= len(s.workout.Exercises) {
		return fitness.WorkoutExercise{}, false
	}
	return s.workout.Exercises[s.index], true
}

// NextExercise previews the upcoming exercise, if any.
func (s *Session) NextExercise() (fitness.WorkoutExercise, bool) {
	if s.index+1 >= len(s.workout.Exercises) {
		return fitness.WorkoutExercise{}, false
	}
	return s.workout.Exercises[s.index+1], true
}

// Progress reports overall completion in [0,1], counting finished sets.
func (s *Session) Progress() float64 {
	total := len(s.workout.Exercises)
	if total == 0 {
		return 0
	}
	if s.phase == PhaseComplete {
		return 1
	}
	cur, ok := s.CurrentExercise()
	setFrac := 0.0
	if ok && cur.Sets > 0 {
		setFrac = float64(s.set-1) / float64(cur.Sets)
	}
	return (float64(s.index) + setFrac) / float64(total)
}

// Tick advances the machine by one second. It is a no-op while paused,
// cancelled or complete. The elapsed counter runs in every phase
// except countdown.
func (s *Session) Tick() {
	if s.paused || s.cancelled || s.phase == PhaseComplete {
		return
	}
	if s.phase != PhaseCountdown {
		s.elapsed++
	}

	s.remaining--
	if s.remaining <= 0 {
		s.advance()
		return
	}

	// Near-end cues.
	if s.phase == PhaseCountdown && s.remaining == 3 {
		s.notifier.Beep()
	}
	if s.phase == PhaseExercise && s.remaining == 10 {
		s.notifier.Beep()
	}
}

// advance applies the phase-expiry transition. Zero-length phases are
// skipped without consuming a tick.
func (s *Session) advance() {
	cur, ok := s.CurrentExercise()
	if !ok {
		s.phase = PhaseComplete
		return
	}

	switch s.phase {
	case PhaseCountdown:
		s.enterExercise(cur)

	case PhaseExercise:
		switch {
		case s.set < cur.Sets:
			s.set++
			s.enterRest(cur)
		case s.index < len(s.workout.Exercises)-1:
			s.index++
			s.set = 1
			s.enterRest(cur)
		default:
			s.phase = PhaseComplete
		}

	case PhaseRest:
		next, _ := s.CurrentExercise()
		s.enterExercise(next)
	}
}

func (s *Session) enterExercise(e fitness.WorkoutExercise) {
	s.phase = PhaseExercise
	s.remaining = e.Duration
	s.notifier.Announce(e.Name)
	s.notifier.Beep()
	if s.remaining <= 0 {
		s.advance()
	}
}

// enterRest starts the rest phase; the timer is the rest length of the
// exercise whose set just finished.
func (s *Session) enterRest(finished fitness.WorkoutExercise) {
	s.phase = PhaseRest
	s.remaining = finished.RestSeconds
	if s.remaining <= 0 {
		s.advance()
	}
}

// Pause freezes the tick. The current phase's remaining time is kept.
func (s *Session) Pause() {
	if s.phase != PhaseComplete && !s.cancelled {
		s.paused = true
	}
}

// Resume unfreezes the tick.
func (s *Session) Resume() {
	s.paused = false
}

// TogglePause flips between paused and running.
func (s *Session) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// SkipExercise abandons the current exercise's remaining sets and
// moves to the next exercise's countdown, or completes the session if
// this was the last one.
func (s *Session) SkipExercise() {
	if s.phase == PhaseComplete || s.cancelled {
		return
	}
	if s.index < len(s.workout.Exercises)-1 {
		s.index++
		s.set = 1
		s.phase = PhaseCountdown
		s.remaining = countdownSeconds
	} else {
		s.phase = PhaseComplete
	}
}

// SkipRest ends the rest phase immediately, as if its timer expired.
func (s *Session) SkipRest() {
	if s.phase != PhaseRest || s.paused || s.cancelled {
		return
	}
	s.advance()
}

// Cancel aborts the session. A cancelled session never yields a
// completion record.
func (s *Session) Cancel() {
	s.cancelled = true
}

// Complete builds the completion record once the machine has reached
// the complete phase and both feedback values are present. The ledger
// boundary rejects records produced any other way by this returning an
// error instead.
func (s *Session) Complete(rating int, feedback fitness.Feedback, now time.Time) (fitness.CompletedWorkout, error) {
	if s.cancelled || s.phase != PhaseComplete {
		return fitness.CompletedWorkout{}, ErrNotComplete
	}
	if rating < 1 || rating > 5 || feedback == "" {
		return fitness.CompletedWorkout{}, ErrMissingFeedback
	}
	return fitness.CompletedWorkout{
		ID:                 uuid.NewString(),
		WorkoutID:          s.workout.ID,
		WorkoutName:        s.workout.Name,
		CompletedAt:        now,
		Duration:           s.elapsed,
		ExercisesCompleted: s.index + 1,
		TotalExercises:     len(s.workout.Exercises),
		Rating:             rating,
		Feedback:           feedback,
		Calories:           s.workout.Calories,
	}, nil
}
