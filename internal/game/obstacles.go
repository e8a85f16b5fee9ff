package game

// Obstacle is a rectangular collision zone for a piece of falling garbage.
// The position is the top-left cell; the owning task keeps it in sync as the
// garbage falls.
type Obstacle struct {
	ID     int
	Row    int
	Col    int
	Height int
	Width  int
}

// HasCollision reports whether the obstacle's box overlaps the given box.
func (o *Obstacle) HasCollision(row, col, height, width int) bool {
	return row < o.Row+o.Height && o.Row < row+height &&
		col < o.Col+o.Width && o.Col < col+width
}

// Registry tracks every live obstacle plus the transient set of obstacles
// struck by a projectile. It is mutated by tasks under the scheduler's
// single-thread invariant and needs no locking.
type Registry struct {
	obstacles []*Obstacle
	nextID    int
	hits      map[int]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{hits: make(map[int]struct{})}
}

// Add registers a new obstacle and returns it. IDs are stable and never
// reused within a run.
func (r *Registry) Add(row, col, height, width int) *Obstacle {
	o := &Obstacle{
		ID:     r.nextID,
		Row:    row,
		Col:    col,
		Height: height,
		Width:  width,
	}
	r.nextID++
	r.obstacles = append(r.obstacles, o)
	return o
}

// Remove deletes the obstacle with the given ID, along with any unconsumed
// hit record for it. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id int) {
	for i, o := range r.obstacles {
		if o.ID == id {
			r.obstacles = append(r.obstacles[:i], r.obstacles[i+1:]...)
			break
		}
	}
	delete(r.hits, id)
}

// Len returns the number of live obstacles.
func (r *Registry) Len() int {
	return len(r.obstacles)
}

// Obstacles returns the live obstacles in registration order. The slice is
// shared; callers must not retain it across ticks.
func (r *Registry) Obstacles() []*Obstacle {
	return r.obstacles
}

// Collides returns the first live obstacle overlapping the given box, or nil.
func (r *Registry) Collides(row, col, height, width int) *Obstacle {
	for _, o := range r.obstacles {
		if o.HasCollision(row, col, height, width) {
			return o
		}
	}
	return nil
}

// MarkHit records that the obstacle with the given ID was struck. The record
// stays until the obstacle's own task consumes it.
func (r *Registry) MarkHit(id int) {
	r.hits[id] = struct{}{}
}

// ConsumeHit reports whether the obstacle was struck and deletes the record,
// so each hit is observed at most once.
func (r *Registry) ConsumeHit(id int) bool {
	if _, ok := r.hits[id]; !ok {
		return false
	}
	delete(r.hits, id)
	return true
}
