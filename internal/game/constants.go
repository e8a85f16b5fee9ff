package game

// Game configuration constants.
// All tunable gameplay parameters are centralized here for easy adjustment.

// Playfield
const (
	// BorderWidth is the thickness of the canvas border; the playfield is
	// everything inside it.
	BorderWidth = 1
	// Smallest terminal the game fits in: the rocket is 9 rows tall and
	// needs room to dodge.
	minRows = 15
	minCols = 30
)

// Calendar
const (
	StartYear   = 1957
	TicsPerYear = 15
	// PlasmaGunYear is the first year the spaceship can fire.
	PlasmaGunYear = 2020
)

// Spaceship
const (
	ShipFrameHoldTics = 2
)

// Projectile
const (
	FireRowSpeed = -0.3
	FireColSpeed = 0.0
)

// Garbage
const (
	GarbageSpeed = 0.5
)

// Stars
const (
	StarCount      = 80
	StarSymbols    = "+*.:"
	MaxBlinkOffset = 20
)
