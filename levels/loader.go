package levels

import (
	"context"
	"sync"
)

// Loader reads a level's geometry on a background goroutine. The game loop
// polls it once per tick and never blocks on it.
type Loader struct {
	name   string
	cancel context.CancelFunc

	mu   sync.Mutex
	done bool
	geom *Geometry
	err  error
}

// LoadAsync starts loading the named level. Cancelling ctx abandons the
// result.
func LoadAsync(ctx context.Context, name string) *Loader {
	ctx, cancel := context.WithCancel(ctx)
	l := &Loader{name: name, cancel: cancel}
	go l.run(ctx)
	return l
}

func (l *Loader) run(ctx context.Context) {
	geom, err := LoadGeometry(l.name)
	if ctx.Err() != nil {
		err = ctx.Err()
		geom = nil
	}
	l.mu.Lock()
	l.geom, l.err, l.done = geom, err, true
	l.mu.Unlock()
}

// Name returns the level being loaded.
func (l *Loader) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Poll reports whether loading finished and, if so, its result.
func (l *Loader) Poll() (*Geometry, bool, error) {
	if l == nil {
		return nil, false, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.geom, l.done, l.err
}

// Cancel abandons the load.
func (l *Loader) Cancel() {
	if l == nil || l.cancel == nil {
		return
	}
	l.cancel()
}
