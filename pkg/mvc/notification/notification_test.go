package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/puremvc-go/pkg/mvc/notification"
)

func TestNew_CarriesNameBodyAndType(t *testing.T) {
	n := notification.New("TestNote", 5, "TestType")

	assert.Equal(t, "TestNote", n.Name())
	assert.Equal(t, 5, n.Body())
	assert.Equal(t, "TestType", n.Type())
	assert.NotEmpty(t, n.ID())
}

func TestNew_GeneratesDistinctIDs(t *testing.T) {
	a := notification.Named("A")
	b := notification.Named("A")

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSetters(t *testing.T) {
	n := notification.Named("TestNote")

	n.SetBody("payload")
	n.SetType("kind")

	assert.Equal(t, "payload", n.Body())
	assert.Equal(t, "kind", n.Type())
}

func TestString(t *testing.T) {
	n := notification.New("TestNote", []int{1, 3, 5}, "TestType")

	assert.Equal(t, "Notification Name: TestNote\nBody: [1 3 5]\nType: TestType", n.String())
	assert.Equal(t, "Notification Name: Empty\nBody: null\nType: null", notification.Named("Empty").String())
}
