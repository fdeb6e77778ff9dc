package translate

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Source fetches the raw translations document.
type Source interface {
	// Fetch returns Arabic to English pairs.
	Fetch(ctx context.Context) (map[string]string, error)
	// Location describes where translations come from, for messages.
	Location() string
}

// Loader loads translations from a Source once and keeps the result for
// its whole lifetime. Concurrent first callers share the same fetch.
// There is no invalidation: a changed translations file is picked up only
// by a new Loader.
type Loader struct {
	src   Source
	group singleflight.Group

	mu    sync.RWMutex
	store *Store
}

// NewLoader creates a Loader for the given source.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load returns the memoized Store, fetching it on the first call.
// A failed fetch is not memoized, the next call tries again.
func (l *Loader) Load(ctx context.Context) (*Store, error) {
	l.mu.RLock()
	st := l.store
	l.mu.RUnlock()
	if st != nil {
		return st, nil
	}

	ch := l.group.DoChan("translations", func() (any, error) {
		l.mu.RLock()
		st := l.store
		l.mu.RUnlock()
		if st != nil {
			return st, nil
		}

		// the fetch is shared, one caller leaving must not cancel it
		data, err := l.src.Fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, LoadError(l.src.Location(), err)
		}
		st = NewStore(data)

		l.mu.Lock()
		l.store = st
		l.mu.Unlock()
		return st, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Store), nil
	}
}
