package game

import (
	"math"
	"testing"
)

func TestUpdateSpeedAcceleratesTowardCap(t *testing.T) {
	var rowSpeed, colSpeed float64
	prev := 0.0
	for i := 0; i < 200; i++ {
		rowSpeed, colSpeed = UpdateSpeed(rowSpeed, colSpeed, 0, 1)
		if colSpeed > maxColSpeed {
			t.Fatalf("tick %d: colSpeed %v exceeds cap %v", i, colSpeed, maxColSpeed)
		}
		if colSpeed < prev {
			t.Fatalf("tick %d: colSpeed decreased under constant input (%v -> %v)", i, prev, colSpeed)
		}
		prev = colSpeed
	}
	if maxColSpeed-colSpeed > 1e-9 {
		t.Fatalf("colSpeed %v did not converge to cap %v", colSpeed, maxColSpeed)
	}
	if rowSpeed != 0 {
		t.Fatalf("rowSpeed %v changed without row input", rowSpeed)
	}
}

func TestUpdateSpeedDecaysWithoutInput(t *testing.T) {
	rowSpeed, colSpeed := 2.0, -2.0
	for i := 0; i < 100; i++ {
		rowSpeed, colSpeed = UpdateSpeed(rowSpeed, colSpeed, 0, 0)
	}
	if math.Abs(rowSpeed) > 1e-6 || math.Abs(colSpeed) > 1e-6 {
		t.Fatalf("speed did not decay to zero: (%v, %v)", rowSpeed, colSpeed)
	}
}

func TestUpdateSpeedReversal(t *testing.T) {
	rowSpeed := 2.0
	var colSpeed float64
	rowSpeed, _ = UpdateSpeed(rowSpeed, colSpeed, -1, 0)
	want := 2.0*speedFriction - speedAcceleration
	if math.Abs(rowSpeed-want) > 1e-9 {
		t.Fatalf("reversed rowSpeed = %v, want %v", rowSpeed, want)
	}
}

func TestUpdateSpeedNegativeCap(t *testing.T) {
	var rowSpeed, colSpeed float64
	for i := 0; i < 200; i++ {
		rowSpeed, colSpeed = UpdateSpeed(rowSpeed, colSpeed, -1, -1)
		if rowSpeed < -maxRowSpeed || colSpeed < -maxColSpeed {
			t.Fatalf("tick %d: speed (%v, %v) exceeds negative cap", i, rowSpeed, colSpeed)
		}
	}
}
