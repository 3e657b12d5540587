package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/mediator"
)

type listeningMediator struct {
	*mediator.BaseMediator
}

func (m *listeningMediator) HandleNotification(ctx context.Context, n mvc.Notification) error {
	return nil
}

func TestNew_DefaultName(t *testing.T) {
	m := mediator.New("", nil)

	assert.Equal(t, mediator.DefaultName, m.Name())
}

func TestNew_KeepsNameAndViewComponent(t *testing.T) {
	view := &struct{ title string }{title: "main"}
	m := mediator.New("TestMediator", view)

	assert.Equal(t, "TestMediator", m.Name())
	assert.Same(t, view, m.ViewComponent())
}

func TestSetViewComponent(t *testing.T) {
	m := mediator.New("TestMediator", nil)
	assert.Nil(t, m.ViewComponent())

	m.SetViewComponent("component")

	assert.Equal(t, "component", m.ViewComponent())
}

func TestContext_IsStableAndDistinct(t *testing.T) {
	a := mediator.New("A", nil)
	b := mediator.New("A", nil)

	assert.Equal(t, a.Context(), a.Context())
	assert.NotEqual(t, a.Context(), b.Context())
}

func TestBaseMediator_HasNoInterestsOrHandler(t *testing.T) {
	m := mediator.New("TestMediator", nil)

	assert.Empty(t, m.ListNotificationInterests())
	_, ok := mvc.HandlerOf(m)
	assert.False(t, ok)
	assert.NotPanics(t, func() {
		m.OnRegister()
		m.OnRemove()
	})
}

func TestEmbeddingMediator_OptsInToHandler(t *testing.T) {
	m := &listeningMediator{BaseMediator: mediator.New("Listener", nil)}

	_, ok := mvc.HandlerOf(m)

	assert.True(t, ok)
}
