package game

import (
	"math/rand"
	"testing"

	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/frames"
	"github.com/aevtikheev/starships-game/internal/task"
)

func TestOrbitSpawnerIdlesBeforeFirstThreshold(t *testing.T) {
	c := canvas.New(20, 20)
	sched := task.NewScheduler()
	spawner := NewOrbitSpawner(c, NewRegistry(), sched, &Clock{Year: StartYear},
		[]frames.Frame{frames.New("#")}, rand.New(rand.NewSource(1)))

	for i := 0; i < 30; i++ {
		spawner.Resume()
	}
	if sched.Len() != 0 {
		t.Fatalf("%d garbage tasks spawned before the first threshold year", sched.Len())
	}
}

func TestOrbitSpawnerFollowsScenarioCadence(t *testing.T) {
	c := canvas.New(20, 20)
	sched := task.NewScheduler()
	spawner := NewOrbitSpawner(c, NewRegistry(), sched, &Clock{Year: 2020},
		[]frames.Frame{frames.New("#")}, rand.New(rand.NewSource(1)))

	// Delay 2 in 2020: a spawn on the first resume, then one every 2 resumes.
	for i := 0; i < 7; i++ {
		spawner.Resume()
	}
	if sched.Len() != 4 {
		t.Fatalf("spawned %d garbage tasks in 7 ticks at delay 2, want 4", sched.Len())
	}
}

func TestRegistryMatchesLiveGarbage(t *testing.T) {
	c := canvas.New(30, 20)
	reg := NewRegistry()
	sched := task.NewScheduler()
	frame := frames.New("##\n##")
	for col := 2; col <= 10; col += 4 {
		sched.Spawn(NewGarbage(c, reg, col, frame))
	}

	for tick := 0; tick < 100 && sched.Len() > 0; tick++ {
		sched.Tick()
		if reg.Len() != sched.Len() {
			t.Fatalf("tick %d: %d obstacles for %d live garbage tasks", tick, reg.Len(), sched.Len())
		}
	}
	if sched.Len() != 0 {
		t.Fatal("garbage still falling after 100 ticks")
	}
	if reg.Len() != 0 {
		t.Fatalf("%d obstacles left after all garbage fell", reg.Len())
	}
}

func TestLoadAssets(t *testing.T) {
	a, err := LoadAssets()
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Rocket) != 2 {
		t.Fatalf("loaded %d rocket frames, want 2", len(a.Rocket))
	}
	if len(a.Garbage) != len(frames.GarbageNames) {
		t.Fatalf("loaded %d garbage frames, want %d", len(a.Garbage), len(frames.GarbageNames))
	}
	if rows, cols := a.GameOver.Size(); rows == 0 || cols == 0 {
		t.Fatal("game-over banner is empty")
	}
}
