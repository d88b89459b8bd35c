// Package ctxio bundles the pipeline's external collaborators — clock and
// subprocess-runner construction — behind small interfaces so tests can
// substitute doubles without touching module-level state (spec.md §9).
package ctxio

import (
	"time"

	"github.com/repomix-go/repomix-go/internal/gitrun"
)

// Clock abstracts wall-clock reads.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// RunnerFactory constructs a git runner rooted at dir. Production code uses
// gitrun.New directly; tests can substitute a factory returning a Runner
// pointed at a fixture repository or one that always reports not-a-repo.
type RunnerFactory func(dir string) *gitrun.Runner

// DefaultRunnerFactory is the production RunnerFactory.
func DefaultRunnerFactory(dir string) *gitrun.Runner {
	return gitrun.New(dir)
}

// Collaborators is the dependency-injection bundle threaded through a
// pipeline run (spec.md §9).
type Collaborators struct {
	Clock         Clock
	NewRunner     RunnerFactory
}

// Default returns the production Collaborators.
func Default() Collaborators {
	return Collaborators{
		Clock:     SystemClock{},
		NewRunner: DefaultRunnerFactory,
	}
}
