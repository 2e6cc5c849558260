package board

import "testing"

func TestGateFlipsWhenAllColumnsRender(t *testing.T) {
	gate := NewReadyGate(3)

	gate.ColumnRendered()
	gate.ColumnRendered()
	if gate.Ready() {
		t.Fatal("gate ready after 2 of 3 columns")
	}

	gate.ColumnRendered()
	if !gate.Ready() {
		t.Fatal("gate not ready after all columns rendered")
	}
}

func TestGateIsOneShot(t *testing.T) {
	gate := NewReadyGate(1)

	flips := 0
	cancel := gate.ReadyCell().Subscribe(func(ready bool) {
		if ready {
			flips++
		}
	})
	defer cancel()

	gate.ColumnRendered()
	gate.ColumnRendered()
	gate.ColumnRendered()

	if flips != 1 {
		t.Errorf("ready flipped %d times, want 1", flips)
	}
}

func TestZeroColumnsIsReadyImmediately(t *testing.T) {
	gate := NewReadyGate(0)
	if !gate.Ready() {
		t.Error("gate with no expected columns should be ready")
	}
}

func TestResetRearmsGate(t *testing.T) {
	gate := NewReadyGate(1)
	gate.ColumnRendered()
	if !gate.Ready() {
		t.Fatal("gate not ready")
	}

	gate.Reset(2)
	if gate.Ready() {
		t.Fatal("gate still ready after Reset")
	}
	gate.ColumnRendered()
	gate.ColumnRendered()
	if !gate.Ready() {
		t.Fatal("gate not ready after re-arming")
	}
}
