package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/core"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/notification"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/observer"
	"github.com/andrescamacho/puremvc-go/test/helpers"
)

func TestView_RegisterAndNotifyObserver(t *testing.T) {
	// Arrange
	view := core.NewView()
	var received mvc.Notification
	obs := observer.New(func(ctx context.Context, n mvc.Notification) error {
		received = n
		return nil
	}, "test")
	require.NoError(t, view.RegisterObserver("ViewTestNote", obs))

	// Act
	err := view.NotifyObservers(context.Background(), notification.New("ViewTestNote", 10, ""))

	// Assert
	require.NoError(t, err)
	require.NotNil(t, received)
	assert.Equal(t, 10, received.Body())
}

func TestView_RegisterObserverValidation(t *testing.T) {
	view := core.NewView()

	assert.ErrorIs(t, view.RegisterObserver("", observer.New(nil, "x")), mvc.ErrEmptyNotificationName)
	assert.ErrorIs(t, view.RegisterObserver("note", nil), mvc.ErrNilObserver)
}

func TestView_NotifyObserversValidation(t *testing.T) {
	view := core.NewView()

	assert.ErrorIs(t, view.NotifyObservers(context.Background(), nil), mvc.ErrNilNotification)
	assert.ErrorIs(t, view.NotifyObservers(context.Background(), notification.Named("")), mvc.ErrEmptyNotificationName)
}

func TestView_NotifyWithoutObserversIsNoOp(t *testing.T) {
	view := core.NewView()

	assert.NoError(t, view.NotifyObservers(context.Background(), notification.Named("Nobody")))
}

func TestView_NotifyContinuesPastFailingObserver(t *testing.T) {
	// Arrange
	view := core.NewView()
	boom := errors.New("boom")
	calls := 0
	require.NoError(t, view.RegisterObserver("note", observer.New(func(ctx context.Context, n mvc.Notification) error {
		calls++
		return boom
	}, "first")))
	require.NoError(t, view.RegisterObserver("note", observer.New(func(ctx context.Context, n mvc.Notification) error {
		calls++
		return nil
	}, "second")))

	// Act
	err := view.NotifyObservers(context.Background(), notification.Named("note"))

	// Assert
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestView_RemoveObserverByContext(t *testing.T) {
	view := core.NewView()
	var calls []string
	for _, tag := range []string{"a", "b"} {
		tag := tag
		require.NoError(t, view.RegisterObserver("note", observer.New(func(ctx context.Context, n mvc.Notification) error {
			calls = append(calls, tag)
			return nil
		}, tag)))
	}

	view.RemoveObserver("note", "a")
	view.RemoveObserver("note", "missing")
	view.RemoveObserver("other", "a")
	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("note")))

	assert.Equal(t, []string{"b"}, calls)
}

func TestView_RegisterAndRetrieveMediator(t *testing.T) {
	view := core.NewView()
	m := helpers.NewMockMediator("testing", "A")

	require.NoError(t, view.RegisterMediator(m))

	retrieved, ok := view.RetrieveMediator("testing")
	assert.True(t, ok)
	assert.Same(t, m, retrieved)
	assert.True(t, view.HasMediator("testing"))
	assert.False(t, view.HasMediator("other"))
}

func TestView_RegisterMediatorValidation(t *testing.T) {
	view := core.NewView()

	assert.ErrorIs(t, view.RegisterMediator(nil), mvc.ErrNilMediator)
	assert.ErrorIs(t, view.RegisterMediator(&unnamedMediator{MockMediator: helpers.NewMockMediator("x")}), mvc.ErrEmptyMediatorName)
}

func TestView_RegisterMediatorRejectsIncomparableContext(t *testing.T) {
	tests := []struct {
		name    string
		context any
	}{
		{"slice", []string{"x"}},
		{"map", map[string]int{"x": 1}},
		{"struct holding a slice", struct{ tag any }{tag: []int{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := core.NewView()
			m := &contextMediator{MockMediator: helpers.NewMockMediator("odd", "A"), context: tt.context}

			err := view.RegisterMediator(m)

			assert.ErrorIs(t, err, mvc.ErrIncomparableContext)
			assert.False(t, view.HasMediator("odd"))
			assert.Zero(t, m.CountCalls("register"))
			assert.NotPanics(t, func() { view.RemoveMediator("odd") })
		})
	}
}

func TestView_RegisterMediatorAcceptsNilContext(t *testing.T) {
	view := core.NewView()
	m := &contextMediator{MockMediator: helpers.NewMockMediator("bare", "A")}
	require.NoError(t, view.RegisterMediator(m))

	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("A")))
	view.RemoveMediator("bare")

	assert.Equal(t, 1, m.HandledCount("A"))
	assert.False(t, view.HasMediator("bare"))
}

func TestView_RegisterMediatorTwiceReturnsExistsError(t *testing.T) {
	view := core.NewView()
	first := helpers.NewMockMediator("dup", "A")
	second := helpers.NewMockMediator("dup", "A")
	require.NoError(t, view.RegisterMediator(first))

	err := view.RegisterMediator(second)

	var existsErr *mvc.MediatorExistsError
	require.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "dup", existsErr.Name)
	assert.Empty(t, second.GetCallLog())
	retrieved, _ := view.RetrieveMediator("dup")
	assert.Same(t, first, retrieved)
}

func TestView_MediatorReceivesOnlyItsInterests(t *testing.T) {
	// Arrange
	view := core.NewView()
	m := helpers.NewMockMediator("listener", "A", "B")
	require.NoError(t, view.RegisterMediator(m))

	// Act
	for _, name := range []string{"A", "B", "C", "A"} {
		require.NoError(t, view.NotifyObservers(context.Background(), notification.Named(name)))
	}

	// Assert
	assert.Equal(t, 2, m.HandledCount("A"))
	assert.Equal(t, 1, m.HandledCount("B"))
	assert.Equal(t, 0, m.HandledCount("C"))
}

func TestView_DuplicateInterestsDeliverOnce(t *testing.T) {
	view := core.NewView()
	m := helpers.NewMockMediator("listener", "A", "A", "")
	require.NoError(t, view.RegisterMediator(m))

	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("A")))

	assert.Equal(t, 1, m.HandledCount("A"))
}

func TestView_InterestsAreSnapshotted(t *testing.T) {
	view := core.NewView()
	m := helpers.NewMockMediator("listener", "A")
	require.NoError(t, view.RegisterMediator(m))

	m.SetInterests("B")
	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("A")))
	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("B")))

	assert.Equal(t, 1, m.HandledCount("A"))
	assert.Equal(t, 0, m.HandledCount("B"))
}

func TestView_LifecycleOrdering(t *testing.T) {
	// Arrange
	view := core.NewView()
	m := helpers.NewMockMediator("lifecycle", "A")

	// Act
	require.NoError(t, view.RegisterMediator(m))
	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("A")))
	removed, ok := view.RemoveMediator("lifecycle")
	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("A")))

	// Assert
	assert.True(t, ok)
	assert.Same(t, m, removed)
	assert.Equal(t, []string{"register", "handle:A", "remove"}, m.GetCallLog())
	assert.False(t, view.HasMediator("lifecycle"))
}

func TestView_RemoveUnknownMediator(t *testing.T) {
	view := core.NewView()

	removed, ok := view.RemoveMediator("missing")

	assert.False(t, ok)
	assert.Nil(t, removed)
}

func TestView_RemoveMediatorTwiceCallsOnRemoveOnce(t *testing.T) {
	view := core.NewView()
	m := helpers.NewMockMediator("once", "A")
	require.NoError(t, view.RegisterMediator(m))

	view.RemoveMediator("once")
	view.RemoveMediator("once")

	assert.Equal(t, 1, m.CountCalls("remove"))
}

func TestView_MediatorRemovedMidDispatchGetsNoFurtherCalls(t *testing.T) {
	// Arrange: first removes second while handling A
	view := core.NewView()
	first := helpers.NewMockMediator("first", "A")
	second := helpers.NewMockMediator("second", "A")
	first.SetHandleFunc(func(ctx context.Context, n mvc.Notification) error {
		view.RemoveMediator("second")
		return nil
	})
	require.NoError(t, view.RegisterMediator(first))
	require.NoError(t, view.RegisterMediator(second))

	// Act
	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("A")))

	// Assert
	assert.Equal(t, 1, first.HandledCount("A"))
	assert.Equal(t, []string{"register", "remove"}, second.GetCallLog())
}

func TestView_MediatorWithoutHandlerIsNoOpAtDispatch(t *testing.T) {
	view := core.NewView()
	m := helpers.NewSilentMediator("silent", "A")

	require.NoError(t, view.RegisterMediator(m))
	err := view.NotifyObservers(context.Background(), notification.Named("A"))
	view.RemoveMediator("silent")

	assert.NoError(t, err)
	assert.Equal(t, 1, m.Registered)
	assert.Equal(t, 1, m.Removed)
}

func TestView_MediatorCanReRegisterAfterRemoval(t *testing.T) {
	view := core.NewView()
	m := helpers.NewMockMediator("again", "A")
	require.NoError(t, view.RegisterMediator(m))
	view.RemoveMediator("again")

	require.NoError(t, view.RegisterMediator(m))
	require.NoError(t, view.NotifyObservers(context.Background(), notification.Named("A")))

	assert.Equal(t, 1, m.HandledCount("A"))
	assert.Equal(t, 2, m.CountCalls("register"))
}

func TestView_HandlerErrorIsReturned(t *testing.T) {
	view := core.NewView()
	boom := errors.New("boom")
	m := helpers.NewMockMediator("failing", "A")
	m.SetHandleFunc(func(ctx context.Context, n mvc.Notification) error { return boom })
	require.NoError(t, view.RegisterMediator(m))

	err := view.NotifyObservers(context.Background(), notification.Named("A"))

	assert.ErrorIs(t, err, boom)
}

type unnamedMediator struct {
	*helpers.MockMediator
}

func (unnamedMediator) Name() string { return "" }

type contextMediator struct {
	*helpers.MockMediator
	context any
}

func (m *contextMediator) Context() any { return m.context }
