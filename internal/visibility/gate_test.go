package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWatcher struct {
	*Registry
	unobserved int
}

func (w *countingWatcher) Unobserve(target string) {
	w.unobserved++
	w.Registry.Unobserve(target)
}

func TestGateStartsPending(t *testing.T) {
	g := NewGate("projects", DefaultThreshold)
	assert.False(t, g.Visible())
	assert.False(t, g.Armed())
	assert.Equal(t, ClassPending, g.Class())
}

func TestGateFiresOnceAtThreshold(t *testing.T) {
	r := NewRegistry()
	g := NewGate("projects", DefaultThreshold)
	g.Mount(r)
	require.True(t, r.Watching("projects"))

	require.True(t, r.Deliver(Entry{Target: "projects", Ratio: 0.05}))
	assert.False(t, g.Visible())
	assert.True(t, r.Watching("projects"))

	require.True(t, r.Deliver(Entry{Target: "projects", Ratio: 0.1}))
	assert.True(t, g.Visible())
	assert.Equal(t, ClassEntered, g.Class())

	assert.False(t, r.Watching("projects"))
	assert.False(t, r.Deliver(Entry{Target: "projects", Ratio: 1}))
	assert.True(t, g.Visible())
}

func TestGateIgnoresZeroRatio(t *testing.T) {
	r := NewRegistry()
	g := NewGate("skills", 0)
	g.Mount(r)

	r.Deliver(Entry{Target: "skills", Ratio: 0})
	assert.False(t, g.Visible())

	r.Deliver(Entry{Target: "skills", Ratio: 0.01})
	assert.True(t, g.Visible())
}

func TestGateNotifyAfterFireIsNoop(t *testing.T) {
	w := &countingWatcher{Registry: NewRegistry()}
	g := NewGate("experience", DefaultThreshold)
	g.Mount(w)

	g.Notify(Entry{Target: "experience", Ratio: 0.5})
	g.Notify(Entry{Target: "experience", Ratio: 0.9})
	g.Unmount()

	assert.True(t, g.Visible())
	assert.Equal(t, 1, w.unobserved)
}

func TestGateIgnoresOtherTargets(t *testing.T) {
	r := NewRegistry()
	g := NewGate("experience", DefaultThreshold)
	g.Mount(r)

	g.Notify(Entry{Target: "skills", Ratio: 1})
	assert.False(t, g.Visible())
}

func TestGateWithoutWatcherNeverFires(t *testing.T) {
	g := NewGate("projects", DefaultThreshold)
	g.Mount(nil)
	g.Notify(Entry{Target: "projects", Ratio: 1})
	assert.False(t, g.Visible())

	g.Unmount()
	g.Unmount()
}

func TestGateWithoutTargetNeverFires(t *testing.T) {
	r := NewRegistry()
	g := NewGate("", DefaultThreshold)
	g.Mount(r)

	assert.False(t, r.Deliver(Entry{Target: "", Ratio: 1}))
	assert.False(t, g.Visible())
}

func TestGateUnmountIsIdempotent(t *testing.T) {
	w := &countingWatcher{Registry: NewRegistry()}
	g := NewGate("skills", DefaultThreshold)
	g.Mount(w)

	g.Unmount()
	g.Unmount()
	assert.Equal(t, 1, w.unobserved)
	assert.False(t, g.Armed())

	assert.False(t, w.Deliver(Entry{Target: "skills", Ratio: 1}))
	assert.False(t, g.Visible())
}

func TestGateMountAfterVisibleDoesNotRearm(t *testing.T) {
	r := NewRegistry()
	g := NewGate("skills", DefaultThreshold)
	g.Mount(r)
	r.Deliver(Entry{Target: "skills", Ratio: 1})

	g.Mount(r)
	assert.False(t, g.Armed())
	assert.False(t, r.Watching("skills"))
}

func TestRegistryUnobserveAbsentTarget(t *testing.T) {
	r := NewRegistry()
	r.Unobserve("missing")
	assert.False(t, r.Watching("missing"))
}

func TestBranch(t *testing.T) {
	assert.Equal(t, ClassEntered, Branch(true))
	assert.Equal(t, ClassPending, Branch(false))
}
