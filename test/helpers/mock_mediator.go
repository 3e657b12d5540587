package helpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/mediator"
)

// MockMediator is a test double that records its lifecycle and every
// notification it handles, in order
type MockMediator struct {
	*mediator.BaseMediator
	interests  []string
	handleFunc func(ctx context.Context, notification mvc.Notification) error

	mu      sync.Mutex
	callLog []string // "register", "handle:<name>", "remove"
}

// NewMockMediator creates a MockMediator interested in the given names
func NewMockMediator(name string, interests ...string) *MockMediator {
	return &MockMediator{
		BaseMediator: mediator.New(name, nil),
		interests:    interests,
		callLog:      []string{},
	}
}

func (m *MockMediator) ListNotificationInterests() []string {
	return m.interests
}

// SetInterests replaces the interest list; the View only reads it on registration
func (m *MockMediator) SetInterests(interests ...string) {
	m.interests = interests
}

func (m *MockMediator) OnRegister() {
	m.record("register")
}

func (m *MockMediator) OnRemove() {
	m.record("remove")
}

// HandleNotification implements mvc.NotificationHandler
func (m *MockMediator) HandleNotification(ctx context.Context, notification mvc.Notification) error {
	m.record("handle:" + notification.Name())
	if m.handleFunc != nil {
		return m.handleFunc(ctx, notification)
	}
	return nil
}

// SetHandleFunc sets a custom function run after each recorded HandleNotification
func (m *MockMediator) SetHandleFunc(fn func(ctx context.Context, notification mvc.Notification) error) {
	m.handleFunc = fn
}

func (m *MockMediator) record(entry string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callLog = append(m.callLog, entry)
}

// GetCallLog returns the recorded calls
func (m *MockMediator) GetCallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.callLog...)
}

// CountCalls returns how many times entry was recorded
func (m *MockMediator) CountCalls(entry string) int {
	count := 0
	for _, call := range m.GetCallLog() {
		if call == entry {
			count++
		}
	}
	return count
}

// HandledCount returns how many notifications named name were handled
func (m *MockMediator) HandledCount(name string) int {
	return m.CountCalls(fmt.Sprintf("handle:%s", name))
}

// SilentMediator declares interests but has no notification handler
type SilentMediator struct {
	*mediator.BaseMediator
	interests []string

	Registered int
	Removed    int
}

func NewSilentMediator(name string, interests ...string) *SilentMediator {
	return &SilentMediator{BaseMediator: mediator.New(name, nil), interests: interests}
}

func (m *SilentMediator) ListNotificationInterests() []string {
	return m.interests
}

func (m *SilentMediator) OnRegister() { m.Registered++ }

func (m *SilentMediator) OnRemove() { m.Removed++ }

var (
	_ mvc.Mediator            = (*MockMediator)(nil)
	_ mvc.NotificationHandler = (*MockMediator)(nil)
	_ mvc.Mediator            = (*SilentMediator)(nil)
)
