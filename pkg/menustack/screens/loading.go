package screens

import (
	"context"
	"errors"
	"strings"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/jobs"
	"github.com/oxport/menustack/pkg/menustack/locale"
)

// ErrNoRunner is the construction error of a loading screen without a job runner.
var ErrNoRunner = errors.New("screens: no job runner")

// Loading runs work on a background job and, once it finishes, replaces itself
// with the screen built from the result. A failure replaces it with an error
// dialog. B abandons the job and returns to the screen beneath.
type Loading[T any] struct {
	menustack.Base
	Label string

	env      *Env
	nav      menustack.Navigator
	job      *jobs.Job[T]
	next     func(T) menustack.Factory
	finished bool
	frames   int
}

// NewLoading returns a factory that starts work when the screen is constructed.
func NewLoading[T any](env *Env, name string, work func(ctx context.Context) (T, error), next func(T) menustack.Factory) menustack.Factory {
	return func(nav menustack.Navigator) (menustack.Screen, error) {
		if env.Jobs == nil {
			return nil, ErrNoRunner
		}
		if work == nil || next == nil {
			return nil, menustack.ErrNilFactory
		}
		return &Loading[T]{
			env:  env,
			nav:  nav,
			job:  jobs.Go(env.Jobs, name, work),
			next: next,
		}, nil
	}
}

func (l *Loading[T]) Name() string { return "loading:" + l.job.Name() }

func (l *Loading[T]) Init() {
	l.Label = l.env.T(locale.MsgLoading, nil)
}

func (l *Loading[T]) Think() {
	if l.finished {
		return
	}

	switch l.job.Poll() {
	case jobs.StatusPending:
		l.frames++
	case jobs.StatusDone:
		l.finished = true
		result, _ := l.job.Result()
		l.nav.Replace(l.next(result))
	case jobs.StatusFailed:
		l.finished = true
		_, err := l.job.Result()
		l.nav.Replace(NewErrorDialog(l.env, l.env.T(locale.MsgLoadFailed, map[string]any{"Reason": err.Error()})))
	}
}

func (l *Loading[T]) Handle(ev input.Event) {
	if !l.finished && ev.IsPress(constants.VirtualButtonB) {
		l.finished = true
		l.nav.Pop()
	}
}

// Destroy drops the result of a job that has not been consumed yet.
func (l *Loading[T]) Destroy() {
	if l.job.Poll() == jobs.StatusPending {
		l.job.Discard()
	}
}

// Job exposes the running job.
func (l *Loading[T]) Job() *jobs.Job[T] {
	return l.job
}

func (l *Loading[T]) View() []string {
	return []string{l.Label + strings.Repeat(".", l.frames/20%4)}
}
