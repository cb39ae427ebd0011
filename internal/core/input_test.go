package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("fresh frame reports ActionJump")
	}

	f.Set(ActionJump)
	f.Set(ActionRestart)
	if !f.Has(ActionJump) || !f.Has(ActionRestart) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionPause) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionRestart) {
		t.Error("actions survived Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// The zero value must be usable: Has reports nothing, Set allocates.
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero-value frame reports an action")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero-value frame lost the action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionJump) {
		t.Error("clone shares state with the original")
	}
}
