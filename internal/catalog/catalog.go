// Package catalog builds and holds the discretized pattern for every
// (item, rotation) pair an instance needs, computed concurrently and then
// frozen into an immutable lookup table before placement begins.
package catalog

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/piwi3910/sdrpack/internal/discretize"
	"github.com/piwi3910/sdrpack/internal/model"
)

// Key identifies one discretized variant: an item ID paired with the exact
// bit pattern of its rotation angle, normalized to [0, 2π).
type Key struct {
	ItemID       string
	rotationBits uint64
}

func keyFor(itemID string, rotation float64) Key {
	return Key{ItemID: itemID, rotationBits: math.Float64bits(normalizeAngle(rotation))}
}

func normalizeAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}

// Catalog is the immutable, built catalog of discretized item variants.
type Catalog struct {
	entries map[Key]model.DiscretizedItem
}

// Get looks up the discretized pattern for itemID at rotation.
func (c *Catalog) Get(itemID string, rotation float64) (model.DiscretizedItem, bool) {
	v, ok := c.entries[keyFor(itemID, rotation)]
	return v, ok
}

type job struct {
	item     model.Item
	rotation float64
}

// Build discretizes every (item, rotation) pair across a worker pool, each
// writing its result into a shared insert-once map, then freezes the result
// into an ordinary map for the strictly single-threaded placement phase
// that follows. It returns the first discretization error encountered, if
// any.
func Build(ctx context.Context, items []model.Item, cfg model.Config) (*Catalog, error) {
	var jobs []job
	for _, it := range items {
		for _, r := range it.Rotations.AnglesRadians() {
			jobs = append(jobs, job{item: it, rotation: r})
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	var built sync.Map
	jobCh := make(chan job)
	errCh := make(chan error, workers)
	var wg sync.WaitGroup

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				select {
				case <-runCtx.Done():
					return
				default:
				}
				di, err := discretize.Discretize(j.item, j.rotation, cfg)
				if err != nil {
					select {
					case errCh <- err:
					default:
					}
					cancel()
					continue
				}
				built.Store(keyFor(j.item.ID, di.Rotation), di)
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, j := range jobs {
			select {
			case <-runCtx.Done():
				return
			case jobCh <- j:
			}
		}
	}()

	wg.Wait()
	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	entries := make(map[Key]model.DiscretizedItem, len(jobs))
	built.Range(func(k, v any) bool {
		entries[k.(Key)] = v.(model.DiscretizedItem)
		return true
	})
	return &Catalog{entries: entries}, nil
}
