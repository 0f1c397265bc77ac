package showmore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Trigger_Activate(t *testing.T) {
	trigger := NewTrigger()

	var order []int
	trigger.Subscribe(func() { order = append(order, 1) })
	trigger.Subscribe(nil)
	trigger.Subscribe(func() { order = append(order, 2) })

	assert.True(t, trigger.Activate())
	assert.Equal(t, []int{1, 2}, order)

	trigger.SetVisible(false)
	assert.False(t, trigger.Activate())
	assert.Equal(t, []int{1, 2}, order)
}

func Test_Trigger_Nil(t *testing.T) {
	var trigger *Trigger

	assert.NotPanics(t, func() {
		trigger.Subscribe(func() {})
		trigger.SetVisible(true)
	})
	assert.False(t, trigger.Visible())
	assert.False(t, trigger.Activate())
}
