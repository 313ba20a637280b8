package typetween

import "time"

// ID identifies an animation owned by a Manager. IDs start at 1 and are
// never reused by the same Manager.
type ID uint64

type pendingAdd struct {
	id   ID
	anim Animation
}

// Manager owns a set of animations and drives them with a single Tick per
// frame, dropping each one once it reports finished.
//
// Add, Remove and Clear may be called from observer callbacks while Tick is
// running. Such changes are recorded and applied after the current sweep:
// an animation added mid-tick is first ticked on the next frame, and one
// removed mid-tick is skipped for the rest of the sweep.
//
// Manager is single-threaded. Hosts that share it between goroutines must
// serialize every call themselves.
type Manager struct {
	anims  map[ID]Animation
	order  []ID // ascending
	nextID ID
	debug  bool

	ticking bool
	adds    []pendingAdd
	removed map[ID]struct{}
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{anims: make(map[ID]Animation)}
}

// Add stores a clone of a and returns its ID. The caller's instance is not
// referenced afterwards; use Get to reach the owned copy.
func (m *Manager) Add(a Animation) ID {
	if m.anims == nil {
		m.anims = make(map[ID]Animation)
	}
	m.nextID++
	id := m.nextID
	c := a.Clone()
	if m.debug {
		debugCheckAnimation(id, c)
	}
	if m.ticking {
		m.adds = append(m.adds, pendingAdd{id: id, anim: c})
		return id
	}
	m.anims[id] = c
	m.order = append(m.order, id)
	if m.debug {
		debugCheckLiveCount(len(m.order))
	}
	return id
}

// Remove discards the animation with the given ID and reports whether it
// was present.
func (m *Manager) Remove(id ID) bool {
	if m.ticking {
		for i, p := range m.adds {
			if p.id == id {
				m.adds = append(m.adds[:i], m.adds[i+1:]...)
				return true
			}
		}
		if _, ok := m.anims[id]; !ok || m.isRemoved(id) {
			return false
		}
		if m.removed == nil {
			m.removed = make(map[ID]struct{})
		}
		m.removed[id] = struct{}{}
		return true
	}

	if _, ok := m.anims[id]; !ok {
		return false
	}
	delete(m.anims, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear discards every animation.
func (m *Manager) Clear() {
	if m.ticking {
		m.adds = m.adds[:0]
		if m.removed == nil {
			m.removed = make(map[ID]struct{}, len(m.order))
		}
		for _, id := range m.order {
			m.removed[id] = struct{}{}
		}
		return
	}
	clear(m.anims)
	m.order = m.order[:0]
}

// Has reports whether id is currently owned, counting changes deferred by
// an in-progress Tick.
func (m *Manager) Has(id ID) bool {
	_, ok := m.Get(id)
	return ok
}

// Get returns the owned animation for id so the host can Stop or Reset it.
func (m *Manager) Get(id ID) (Animation, bool) {
	if a, ok := m.anims[id]; ok && !m.isRemoved(id) {
		return a, true
	}
	for _, p := range m.adds {
		if p.id == id {
			return p.anim, true
		}
	}
	return nil, false
}

// Len returns the number of owned animations.
func (m *Manager) Len() int {
	return len(m.order) - len(m.removed) + len(m.adds)
}

// Tick advances every unfinished animation by dt seconds in ascending ID
// order, then drops all animations that are finished. Final-frame
// observers therefore fire during the same Tick that drops the animation.
// A Tick issued from inside an observer is ignored.
func (m *Manager) Tick(dt float32) {
	if m.ticking {
		return
	}
	m.ticking = true

	var start time.Time
	if m.debug {
		start = time.Now()
	}

	ticked := 0
	for _, id := range m.order {
		if m.isRemoved(id) {
			continue
		}
		a := m.anims[id]
		if a.IsFinished() {
			continue
		}
		a.Tick(dt)
		ticked++
	}

	reaped := 0
	kept := m.order[:0]
	for _, id := range m.order {
		if m.isRemoved(id) {
			delete(m.anims, id)
			continue
		}
		if m.anims[id].IsFinished() {
			delete(m.anims, id)
			reaped++
			continue
		}
		kept = append(kept, id)
	}
	m.order = kept

	deferred := len(m.removed) + len(m.adds)
	clear(m.removed)
	for _, p := range m.adds {
		m.anims[p.id] = p.anim
		m.order = append(m.order, p.id)
	}
	m.adds = m.adds[:0]
	m.ticking = false

	if m.debug {
		m.debugLog(tickStats{
			ticked:   ticked,
			reaped:   reaped,
			deferred: deferred,
			live:     len(m.order),
			tickTime: time.Since(start),
		})
	}
}

func (m *Manager) isRemoved(id ID) bool {
	_, ok := m.removed[id]
	return ok
}
