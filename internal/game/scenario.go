package game

// The scripted difficulty curve: as the in-game year advances, garbage spawns
// more often. Years below the first threshold spawn nothing.

type delayThreshold struct {
	year  int
	delay int // tics between garbage spawns
}

// Ordered by year; delays are non-increasing.
var garbageDelays = []delayThreshold{
	{1961, 20},
	{1969, 14},
	{1981, 10},
	{1995, 8},
	{2010, 6},
	{2020, 2},
}

// GarbageDelay returns the spawn delay in tics for the given year. ok is
// false before the first threshold, when no garbage spawns yet.
func GarbageDelay(year int) (delay int, ok bool) {
	for _, t := range garbageDelays {
		if year < t.year {
			break
		}
		delay, ok = t.delay, true
	}
	return delay, ok
}

// phrases is flavor text for notable years, shown next to the year display.
var phrases = map[int]string{
	1957: "First Sputnik",
	1961: "Gagarin flew!",
	1969: "Armstrong got on the moon!",
	1971: "First orbital space station Salute-1",
	1981: "Flight of the Shuttle Columbia",
	1998: "ISS start building",
	2011: "Messenger launch to Mercury",
	2020: "Take the plasma gun! Shoot the garbage!",
}

// Phrase returns the flavor text for a year, if any.
func Phrase(year int) (string, bool) {
	p, ok := phrases[year]
	return p, ok
}
