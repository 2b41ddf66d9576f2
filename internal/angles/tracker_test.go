package angles

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestTracker() *Tracker {
	return NewTracker(
		WithRand(rand.New(rand.NewSource(42))),
		WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
	)
}

func TestAssign_ExclusivityWithinCycle(t *testing.T) {
	tr := newTestTracker()

	seen := make(map[Angle]bool)
	for i := 0; i < len(FullSet); i++ {
		a := tr.Assign("luigis", "instagram", "restaurant")
		assert.False(t, seen[a], "angle %q repeated within one campaign cycle", a)
		seen[a] = true
	}
	assert.Len(t, seen, len(FullSet))
}

func TestAssign_CyclingResetsCampaign(t *testing.T) {
	tr := newTestTracker()

	firstCampaign := tr.CampaignID("luigis", "instagram")
	for i := 0; i < len(FullSet); i++ {
		tr.Assign("luigis", "instagram", "restaurant")
	}
	require.Equal(t, firstCampaign, tr.CampaignID("luigis", "instagram"),
		"campaign id must not change before exhaustion")

	// The 8th call exhausts the set, resets and may repeat.
	eighth := tr.Assign("luigis", "instagram", "restaurant")
	assert.Contains(t, FullSet, eighth)
	assert.NotEqual(t, firstCampaign, tr.CampaignID("luigis", "instagram"),
		"exhaustion must mint a new campaign id")
}

func TestAssign_PreferenceOrder(t *testing.T) {
	tr := newTestTracker()

	// Fitness prefers transformation first, then problem.
	assert.Equal(t, AngleTransformation, tr.Assign("gym", "instagram", "fitness"))
	assert.Equal(t, AngleProblem, tr.Assign("gym", "instagram", "fitness"))
	assert.Equal(t, AngleSocialProof, tr.Assign("gym", "instagram", "fitness"))
	assert.Equal(t, AngleBenefit, tr.Assign("gym", "instagram", "fitness"))

	// Preferences exhausted: remaining angles still come back, one each.
	rest := map[Angle]bool{
		tr.Assign("gym", "instagram", "fitness"): true,
		tr.Assign("gym", "instagram", "fitness"): true,
		tr.Assign("gym", "instagram", "fitness"): true,
	}
	assert.Len(t, rest, 3)
}

func TestAssign_KeysAreIndependent(t *testing.T) {
	tr := newTestTracker()

	a := tr.Assign("luigis", "instagram", "restaurant")
	b := tr.Assign("luigis", "facebook", "restaurant")
	c := tr.Assign("marios", "instagram", "restaurant")

	// Same preference table, fresh cycles: all three get the top preference.
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestAssign_UnknownBusinessTypeUsesDefault(t *testing.T) {
	tr := newTestTracker()
	assert.Equal(t, defaultPreference[0], tr.Assign("acme", "instagram", "no-such-type"))
}

func TestAssign_ConcurrentSameKey(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := newTestTracker()

	const workers = 7
	results := make([]Angle, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tr.Assign("luigis", "instagram", "restaurant")
		}(i)
	}
	wg.Wait()

	// One full cycle under contention: no angle may be consumed twice.
	seen := make(map[Angle]bool)
	for _, a := range results {
		assert.False(t, seen[a], "angle %q assigned twice concurrently", a)
		seen[a] = true
	}
}

type memStore struct {
	mu     sync.Mutex
	states map[string]*State
}

func (m *memStore) Load(brandKey, platform string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[brandKey+"|"+platform], nil
}

func (m *memStore) Save(brandKey, platform string, st *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.states == nil {
		m.states = make(map[string]*State)
	}
	m.states[brandKey+"|"+platform] = st
	return nil
}

func TestTracker_StateStoreRoundTrip(t *testing.T) {
	store := &memStore{}

	tr := NewTracker(WithStore(store), WithRand(rand.New(rand.NewSource(1))))
	first := tr.Assign("luigis", "instagram", "restaurant")

	// A new tracker over the same store continues the cycle.
	tr2 := NewTracker(WithStore(store), WithRand(rand.New(rand.NewSource(1))))
	second := tr2.Assign("luigis", "instagram", "restaurant")
	assert.NotEqual(t, first, second, "restored cycle must not repeat a used angle")
}
