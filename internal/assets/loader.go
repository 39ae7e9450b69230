package assets

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/scene-studio/internal/logger"
)

// DefaultPreloadLimit bounds concurrent reads in Preload.
const DefaultPreloadLimit = 4

// Loader runs fetches on background goroutines and queues their completions
// until the render thread drains them.
type Loader struct {
	src    Source
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	queue    []func()
	inFlight atomic.Int32
}

// NewLoader creates a loader reading from src.
func NewLoader(src Source) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{src: src, ctx: ctx, cancel: cancel}
}

// Go starts fetch on a new goroutine. When Drain runs the completion, apply
// is called with the result and then the returned future resolves.
func Go[T any](l *Loader, name string, fetch func(ctx context.Context, src Source) (T, error), apply func(T, error)) *Future[T] {
	f := &Future[T]{}
	l.inFlight.Add(1)
	l.wg.Add(1)

	go func() {
		defer l.wg.Done()
		v, err := safeFetch(l.ctx, l.src, name, fetch)
		if err != nil {
			logger.Debug("asset load failed", zap.String("path", name), zap.Error(err))
		}
		l.enqueue(func() {
			if apply != nil {
				apply(v, err)
			}
			f.resolve(v, err)
		})
	}()
	return f
}

func safeFetch[T any](ctx context.Context, src Source, name string, fetch func(context.Context, Source) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, &LoadError{Path: name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return fetch(ctx, src)
}

func (l *Loader) enqueue(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
}

// Drain applies every queued completion in arrival order and returns how
// many ran. Call it from the render thread only.
func (l *Loader) Drain() int {
	l.mu.Lock()
	queue := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, fn := range queue {
		fn()
		l.inFlight.Add(-1)
	}
	return len(queue)
}

// Pending returns the number of loads not yet drained.
func (l *Loader) Pending() int {
	return int(l.inFlight.Load())
}

// Wait blocks until every started fetch has queued its completion.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Close cancels outstanding fetches and waits for them to finish.
func (l *Loader) Close() {
	l.cancel()
	l.wg.Wait()
}

// Preload reads paths concurrently so later loads hit the source's cache.
// It returns the first error; the other reads are cancelled.
func (l *Loader) Preload(ctx context.Context, paths []string, limit int) error {
	if limit <= 0 {
		limit = DefaultPreloadLimit
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, p := range paths {
		g.Go(func() error {
			if bs, ok := l.src.(ByteSource); ok {
				_, err := bs.FetchBytes(ctx, p)
				return err
			}
			_, err := l.src.FetchText(ctx, p)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("preloading assets: %w", err)
	}
	logger.Debug("assets preloaded", zap.Int("count", len(paths)))
	return nil
}
