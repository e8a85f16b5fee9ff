package game

// Velocity model for the spaceship: every tick the current speed decays by a
// friction factor, pressed directions add a fixed acceleration, and the
// result is capped per axis. With these constants the steady-state speed
// under constant input converges to the cap from below.
const (
	speedFriction     = 0.8
	speedAcceleration = 0.4
	maxRowSpeed       = 2.0
	maxColSpeed       = 2.0
)

// UpdateSpeed returns the next velocity given the current one and a
// directional input in {-1, 0, 1} per axis. Pure and deterministic.
func UpdateSpeed(rowSpeed, colSpeed float64, rowDir, colDir int) (float64, float64) {
	rowSpeed *= speedFriction
	colSpeed *= speedFriction

	if rowDir != 0 {
		rowSpeed += float64(sign(rowDir)) * speedAcceleration
	}
	if colDir != 0 {
		colSpeed += float64(sign(colDir)) * speedAcceleration
	}

	return clamp(rowSpeed, maxRowSpeed), clamp(colSpeed, maxColSpeed)
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
