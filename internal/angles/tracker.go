package angles

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brandforge/internal/logging"
)

// State is the per-(brandKey, platform) campaign cycle state. UsedAngles is
// always a subset of the full angle set; when it covers the full set the next
// assignment resets it and mints a new campaign id.
type State struct {
	UsedAngles map[Angle]bool
	CampaignID string
	LastUsedAt time.Time
}

// NewState returns an empty cycle with a fresh campaign id.
func NewState() *State {
	return &State{
		UsedAngles: make(map[Angle]bool),
		CampaignID: uuid.NewString(),
	}
}

// StateStore persists tracker state between processes. Load returns
// (nil, nil) when no state exists for the key.
type StateStore interface {
	Load(brandKey, platform string) (*State, error)
	Save(brandKey, platform string, st *State) error
}

// Tracker assigns campaign angles per (brandKey, platform). One mutex
// serializes state access and the shared random source, so concurrent
// requests for the same key never race on a cycle reset.
type Tracker struct {
	mu     sync.Mutex
	states map[string]*State
	store  StateStore
	rng    *rand.Rand
	now    func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithStore makes tracker state durable.
func WithStore(store StateStore) Option {
	return func(t *Tracker) { t.store = store }
}

// WithRand injects a deterministic random source for tests.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tracker) { t.rng = rng }
}

// WithClock injects a deterministic clock for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates an angle tracker.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		states: make(map[string]*State),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func stateKey(brandKey, platform string) string {
	return brandKey + "|" + platform
}

// Assign returns the next angle for the brand+platform campaign. Within one
// campaign cycle the same angle is never returned twice; exhausting the set
// starts a new cycle with a fresh campaign id. Assign always succeeds.
func (t *Tracker) Assign(brandKey, platform, businessType string) Angle {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.loadLocked(brandKey, platform)

	available := make([]Angle, 0, len(FullSet))
	for _, a := range FullSet {
		if !st.UsedAngles[a] {
			available = append(available, a)
		}
	}

	var chosen Angle
	if len(available) == 0 {
		// Cycle exhausted: reset atomically under the lock and pick from the
		// full set at random.
		st.UsedAngles = make(map[Angle]bool)
		st.CampaignID = uuid.NewString()
		chosen = FullSet[t.rng.Intn(len(FullSet))]
		logging.Get(logging.CategoryAngles).Debug("campaign cycle reset",
			zap.String("brand", brandKey),
			zap.String("platform", platform),
			zap.String("campaign_id", st.CampaignID))
	} else {
		chosen = pickPreferred(businessType, available)
	}

	st.UsedAngles[chosen] = true
	st.LastUsedAt = t.now()
	t.persistLocked(brandKey, platform, st)

	logging.Get(logging.CategoryAngles).Debug("angle assigned",
		zap.String("brand", brandKey),
		zap.String("platform", platform),
		zap.String("angle", string(chosen)),
		zap.Int("used_in_cycle", len(st.UsedAngles)))
	return chosen
}

// CampaignID returns the current campaign id for a key, creating state if
// needed.
func (t *Tracker) CampaignID(brandKey, platform string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadLocked(brandKey, platform).CampaignID
}

// pickPreferred returns the first preferred angle still available, falling
// back to the first available member when no preference survives.
func pickPreferred(businessType string, available []Angle) Angle {
	avail := make(map[Angle]bool, len(available))
	for _, a := range available {
		avail[a] = true
	}
	for _, p := range PreferredAngles(businessType) {
		if avail[p] {
			return p
		}
	}
	return available[0]
}

func (t *Tracker) loadLocked(brandKey, platform string) *State {
	key := stateKey(brandKey, platform)
	if st, ok := t.states[key]; ok {
		return st
	}
	if t.store != nil {
		if st, err := t.store.Load(brandKey, platform); err != nil {
			logging.Get(logging.CategoryAngles).Warn("state load failed, starting fresh cycle",
				zap.String("brand", brandKey), zap.Error(err))
		} else if st != nil {
			t.states[key] = st
			return st
		}
	}
	st := NewState()
	t.states[key] = st
	return st
}

func (t *Tracker) persistLocked(brandKey, platform string, st *State) {
	if t.store == nil {
		return
	}
	if err := t.store.Save(brandKey, platform, st); err != nil {
		// Durable state is best-effort; the in-memory cycle stays authoritative.
		logging.Get(logging.CategoryAngles).Warn("state save failed",
			zap.String("brand", brandKey), zap.Error(err))
	}
}
