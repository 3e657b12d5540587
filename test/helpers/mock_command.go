package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

// CommandRecorder hands out command factories that log each execution
type CommandRecorder struct {
	mu        sync.Mutex
	calls     []string // "<tag>:<notification name>"
	instances int
}

func NewCommandRecorder() *CommandRecorder {
	return &CommandRecorder{calls: []string{}}
}

// Factory returns a factory whose commands record "<tag>:<name>" and return err
func (r *CommandRecorder) Factory(tag string, err error) mvc.CommandFactory {
	return func() mvc.Command {
		r.mu.Lock()
		r.instances++
		r.mu.Unlock()
		return &recordedCommand{recorder: r, tag: tag, err: err}
	}
}

// GetCalls returns recorded executions
func (r *CommandRecorder) GetCalls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.calls...)
}

// Instances returns how many commands the factories have built
func (r *CommandRecorder) Instances() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.instances
}

func (r *CommandRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = []string{}
	r.instances = 0
}

type recordedCommand struct {
	recorder *CommandRecorder
	tag      string
	err      error
}

func (c *recordedCommand) Execute(ctx context.Context, notification mvc.Notification) error {
	c.recorder.mu.Lock()
	c.recorder.calls = append(c.recorder.calls, c.tag+":"+notification.Name())
	c.recorder.mu.Unlock()
	return c.err
}
