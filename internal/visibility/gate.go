// Package visibility provides the one-shot "section entered the viewport"
// latch that drives the entrance animation of each portfolio section.
package visibility

// DefaultThreshold is the visible fraction at which a section counts as seen.
const DefaultThreshold = 0.1

// Render branch class tokens.
const (
	ClassEntered = "animate-fade-in-up"
	ClassPending = "opacity-0"
)

// Entry is one intersection notification for a watched element.
type Entry struct {
	Target string
	Ratio  float64
}

// Watcher is the source of intersection notifications for elements.
type Watcher interface {
	Observe(target string, fn func(Entry))
	Unobserve(target string)
}

// Gate is a latch that turns visible once and never resets.
type Gate struct {
	target    string
	threshold float64
	watcher   Watcher
	armed     bool
	visible   bool
}

// NewGate returns a gate for the element with the given id.
func NewGate(target string, threshold float64) *Gate {
	return &Gate{target: target, threshold: threshold}
}

// Mount registers the gate with w. A nil watcher or a gate without a target
// never fires, which leaves the section in its pending branch.
func (g *Gate) Mount(w Watcher) {
	if w == nil || g.target == "" || g.armed || g.visible {
		return
	}
	g.watcher = w
	g.armed = true
	w.Observe(g.target, g.Notify)
}

// Notify handles one intersection entry. The first entry at or above the
// threshold flips the gate and deregisters the watch; later entries are
// ignored.
func (g *Gate) Notify(e Entry) {
	if !g.armed || g.visible || e.Target != g.target {
		return
	}
	if e.Ratio <= 0 || e.Ratio < g.threshold {
		return
	}
	g.visible = true
	g.disarm()
}

// Unmount deregisters the watch if it is still active. Safe to call more
// than once.
func (g *Gate) Unmount() {
	g.disarm()
}

// Visible reports whether the gate has fired.
func (g *Gate) Visible() bool {
	return g.visible
}

// Armed reports whether the gate is still watching.
func (g *Gate) Armed() bool {
	return g.armed
}

// Target returns the watched element id.
func (g *Gate) Target() string {
	return g.target
}

// Class returns the render branch token for the gate's current state.
func (g *Gate) Class() string {
	return Branch(g.visible)
}

func (g *Gate) disarm() {
	if !g.armed {
		return
	}
	g.armed = false
	g.watcher.Unobserve(g.target)
}

// Branch picks the entrance-animated or pending class token.
func Branch(visible bool) string {
	if visible {
		return ClassEntered
	}
	return ClassPending
}
