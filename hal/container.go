package hal

import "sync"

// Container is an in-memory Display. The window runner composites its
// children; headless runs and tests inspect them directly.
type Container struct {
	mu       sync.Mutex
	width    int
	height   int
	children []Framebuffer
}

var _ Display = (*Container)(nil)

// NewContainer returns an empty container of the given viewport size.
func NewContainer(width, height int) *Container {
	return &Container{width: width, height: height}
}

func (c *Container) Size() (w, h int) { return c.width, c.height }

func (c *Container) AppendChild(fb Framebuffer) {
	if fb == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(fb)
	c.children = append(c.children, fb)
}

func (c *Container) RemoveChild(fb Framebuffer) bool {
	if fb == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(fb)
}

func (c *Container) removeLocked(fb Framebuffer) bool {
	for i, ch := range c.children {
		if ch != fb {
			continue
		}
		c.children = append(c.children[:i], c.children[i+1:]...)
		return true
	}
	return false
}

func (c *Container) Children() []Framebuffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Framebuffer, len(c.children))
	copy(out, c.children)
	return out
}
