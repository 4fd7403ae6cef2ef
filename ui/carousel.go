package ui

import (
	"sync"
	"time"

	"hraktech_web/motion"
)

// DefaultRotationInterval is the testimonial auto-advance period.
const DefaultRotationInterval = 5 * time.Second

// CarouselTarget is the element carousel controls are dispatched to.
const CarouselTarget = "#testimonial-carousel"

// Carousel is the testimonial rotation state. It starts at index 0 with
// autoplay on; any manual navigation turns autoplay off for good.
type Carousel struct {
	mu       sync.Mutex
	size     int
	index    int
	autoplay bool
	stop     func()
	onChange func(index int)
}

// NewCarousel returns a carousel over size entries.
func NewCarousel(size int) *Carousel {
	return &Carousel{size: size, autoplay: size > 1}
}

// RestoreCarousel rebuilds a carousel from a client round trip. The index is
// wrapped into range.
func RestoreCarousel(size, index int, autoplay bool) *Carousel {
	c := &Carousel{size: size, autoplay: autoplay && size > 1}
	c.index = c.wrap(index)
	return c
}

// OnChange registers a callback invoked with the new index after every move.
func (c *Carousel) OnChange(fn func(index int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

func (c *Carousel) Size() int { return c.size }

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Autoplay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoplay
}

// Tick advances one entry when autoplay is on and reports whether it moved.
func (c *Carousel) Tick() bool {
	c.mu.Lock()
	if !c.autoplay || c.size == 0 {
		c.mu.Unlock()
		return false
	}
	c.index = c.wrap(c.index + 1)
	c.notifyLocked()
	return true
}

// Next moves forward and stops autoplay.
func (c *Carousel) Next() { c.move(func(i int) int { return i + 1 }) }

// Prev moves backward and stops autoplay.
func (c *Carousel) Prev() { c.move(func(i int) int { return i - 1 }) }

// GoTo jumps to index and stops autoplay. Out-of-range indexes are ignored
// apart from stopping autoplay.
func (c *Carousel) GoTo(index int) {
	c.move(func(i int) int {
		if index < 0 || index >= c.size {
			return i
		}
		return index
	})
}

// Mount attaches the tick, next and prev controls to CarouselTarget and, while
// autoplay is on, starts the auto-advance interval inside scope. The interval
// is cleared on the first manual navigation or when the scope is revoked.
func (c *Carousel) Mount(scope *motion.Scope, interval time.Duration) {
	scope.Listen(CarouselTarget, "tick", func() { c.Tick() })
	scope.Listen(CarouselTarget, "next", c.Next)
	scope.Listen(CarouselTarget, "prev", c.Prev)

	if interval <= 0 {
		interval = DefaultRotationInterval
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.autoplay || c.stop != nil {
		return
	}
	c.stop = scope.Every(interval, func() { c.Tick() })
}

func (c *Carousel) move(next func(int) int) {
	c.mu.Lock()
	c.stopAutoplayLocked()
	if c.size == 0 {
		c.mu.Unlock()
		return
	}
	c.index = c.wrap(next(c.index))
	c.notifyLocked()
}

func (c *Carousel) stopAutoplayLocked() {
	c.autoplay = false
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

// notifyLocked releases the lock before running the callback.
func (c *Carousel) notifyLocked() {
	fn, index := c.onChange, c.index
	c.mu.Unlock()
	if fn != nil {
		fn(index)
	}
}

func (c *Carousel) wrap(i int) int {
	if c.size == 0 {
		return 0
	}
	return ((i % c.size) + c.size) % c.size
}
