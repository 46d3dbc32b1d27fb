// Package datamanager owns the local copy of all persisted collections and
// the durability boundary around them: every mutation rewrites the full
// snapshot blob under a single mutex, then pokes the background sync so the
// remote mirror catches up without the caller waiting on the network.
package datamanager

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"
)

const snapshotKey = "app_state"

const minJustificativaLen = 10

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidStatus          = errors.New("invalid approval status")
	ErrDataIntegrityViolation = errors.New("rejection requires a justification of at least 10 characters")
)

// appState is the single serialized blob held by the snapshot store.
type appState struct {
	Spaces      []entities.Space           `json:"spaces"`
	Staff       []entities.Employee        `json:"staff"`
	Extras      []entities.Extra           `json:"extras"`
	Multipliers entities.ShiftMultipliers  `json:"multipliers"`
	Settings    entities.Settings          `json:"settings"`
	History     []entities.Quote           `json:"history"`
	Leads       []entities.Lead            `json:"leads"`
}

type Manager struct {
	mu       sync.Mutex
	snapshot interfaces.ISnapshotStore
	remote   interfaces.IRemoteStore
	st       appState

	// Quotes already mirrored remotely whose local copy changed since;
	// drained by SyncPending with an upsert-merge. Not persisted: a missed
	// merge is recovered on the next local change to the record.
	dirtyQuotes map[int64]struct{}

	notify chan struct{}
}

var _ interfaces.IDataManager = (*Manager)(nil)

func New(snapshot interfaces.ISnapshotStore, remote interfaces.IRemoteStore) *Manager {
	return &Manager{
		snapshot:    snapshot,
		remote:      remote,
		dirtyQuotes: map[int64]struct{}{},
		notify:      make(chan struct{}, 1),
	}
}

// Load reads the snapshot blob into memory. A missing snapshot starts the
// manager with defaults; a corrupt one is an error (startup must not silently
// discard history).
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, err := m.snapshot.Load(ctx, snapshotKey)
	if err != nil {
		return err
	}
	if len(blob) == 0 {
		log.Printf("[datamanager] empty snapshot, starting with defaults")
		m.st = appState{
			Multipliers: entities.DefaultShiftMultipliers(),
			Settings:    entities.DefaultSettings(),
		}
		return nil
	}
	var st appState
	if err := json.Unmarshal(blob, &st); err != nil {
		return err
	}
	if st.Multipliers == (entities.ShiftMultipliers{}) {
		st.Multipliers = entities.DefaultShiftMultipliers()
	}
	if st.Settings == (entities.Settings{}) {
		st.Settings = entities.DefaultSettings()
	}
	m.st = st
	log.Printf("[datamanager] snapshot loaded spaces=%d staff=%d history=%d leads=%d",
		len(st.Spaces), len(st.Staff), len(st.History), len(st.Leads))
	return nil
}

// persistLocked rewrites the whole snapshot blob. Callers must hold m.mu.
// The local write is the durability boundary: its error propagates to the
// caller, unlike remote sync failures.
func (m *Manager) persistLocked(ctx context.Context) error {
	blob, err := json.Marshal(m.st)
	if err != nil {
		return err
	}
	return m.snapshot.Save(ctx, snapshotKey, blob)
}

// Notify exposes the channel poked after every local mutation so the sync
// worker can dispatch promptly without the mutating caller awaiting it.
func (m *Manager) Notify() <-chan struct{} {
	return m.notify
}

func (m *Manager) notifySync() {
	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// --- Reference data -------------------------------------------------------

func (m *Manager) Spaces() []entities.Space {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Space, len(m.st.Spaces))
	copy(out, m.st.Spaces)
	return out
}

func (m *Manager) SaveSpace(ctx context.Context, s entities.Space) (entities.Space, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == 0 {
		s.ID = nextRefID(len(m.st.Spaces), func(i int) int { return m.st.Spaces[i].ID })
		m.st.Spaces = append(m.st.Spaces, s)
	} else {
		replaced := false
		for i := range m.st.Spaces {
			if m.st.Spaces[i].ID == s.ID {
				m.st.Spaces[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			m.st.Spaces = append(m.st.Spaces, s)
		}
	}
	if err := m.persistLocked(ctx); err != nil {
		return entities.Space{}, err
	}
	return s, nil
}

func (m *Manager) Staff() []entities.Employee {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Employee, len(m.st.Staff))
	copy(out, m.st.Staff)
	return out
}

func (m *Manager) SaveEmployee(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == 0 {
		e.ID = nextRefID(len(m.st.Staff), func(i int) int { return m.st.Staff[i].ID })
		m.st.Staff = append(m.st.Staff, e)
	} else {
		replaced := false
		for i := range m.st.Staff {
			if m.st.Staff[i].ID == e.ID {
				m.st.Staff[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			m.st.Staff = append(m.st.Staff, e)
		}
	}
	if err := m.persistLocked(ctx); err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (m *Manager) ActiveStaffCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.st.Staff {
		if e.Ativo {
			n++
		}
	}
	return n
}

func (m *Manager) Extras() []entities.Extra {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Extra, len(m.st.Extras))
	copy(out, m.st.Extras)
	return out
}

func (m *Manager) SaveExtra(ctx context.Context, e entities.Extra) (entities.Extra, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == 0 {
		e.ID = nextRefID(len(m.st.Extras), func(i int) int { return m.st.Extras[i].ID })
		m.st.Extras = append(m.st.Extras, e)
	} else {
		replaced := false
		for i := range m.st.Extras {
			if m.st.Extras[i].ID == e.ID {
				m.st.Extras[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			m.st.Extras = append(m.st.Extras, e)
		}
	}
	if err := m.persistLocked(ctx); err != nil {
		return entities.Extra{}, err
	}
	return e, nil
}

func (m *Manager) Multipliers() entities.ShiftMultipliers {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.Multipliers
}

func (m *Manager) Settings() entities.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.Settings
}

func (m *Manager) UpdateSettings(ctx context.Context, s entities.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.st.Settings
	m.st.Settings = s
	if err := m.persistLocked(ctx); err != nil {
		m.st.Settings = prev
		return err
	}
	return nil
}

// --- Quote history --------------------------------------------------------

// AddQuote assigns the next monotonic id, prepends the record to history
// (most recent first) and persists. Remote sync is dispatched in the
// background; the caller never waits on the network.
func (m *Manager) AddQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	m.mu.Lock()

	var maxID int64
	for _, h := range m.st.History {
		if h.ID > maxID {
			maxID = h.ID
		}
	}
	q.ID = maxID + 1
	if q.Data.IsZero() {
		q.Data = time.Now().UTC()
	}
	if q.StatusAprovacao == "" {
		q.StatusAprovacao = entities.StatusAguardandoAprovacao
	}

	m.st.History = append([]entities.Quote{q}, m.st.History...)
	if err := m.persistLocked(ctx); err != nil {
		m.st.History = m.st.History[1:]
		m.mu.Unlock()
		return entities.Quote{}, err
	}
	m.mu.Unlock()

	m.notifySync()
	return q, nil
}

func (m *Manager) GetQuote(id int64) (entities.Quote, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.st.History {
		if q.ID == id {
			return q, true
		}
	}
	return entities.Quote{}, false
}

func (m *Manager) ListQuotes() []entities.Quote {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Quote, len(m.st.History))
	copy(out, m.st.History)
	return out
}

// UpdateQuoteStatus is the data-integrity gate over status transitions.
//
// Rules, checked before anything is written (atomic rejection):
//   - the target status must be one of the three valid states
//   - REPROVADO requires a trimmed justification of at least 10 characters
//
// Invariant kept by every path: Convertido == (StatusAprovacao == APROVADO).
func (m *Manager) UpdateQuoteStatus(ctx context.Context, id int64, status entities.ApprovalStatus, justificativa string) (entities.Quote, error) {
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidStatus
	}

	m.mu.Lock()

	idx := -1
	for i := range m.st.History {
		if m.st.History[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return entities.Quote{}, ErrQuoteNotFound
	}

	justificativa = strings.TrimSpace(justificativa)
	if status == entities.StatusReprovado && len(justificativa) < minJustificativaLen {
		m.mu.Unlock()
		return entities.Quote{}, ErrDataIntegrityViolation
	}

	prev := m.st.History[idx]
	q := prev
	q.StatusAprovacao = status
	switch status {
	case entities.StatusAprovado:
		q.Convertido = true
		q.JustificativaRejeicao = nil
		now := time.Now().UTC()
		q.DataAprovacao = &now
	case entities.StatusReprovado:
		q.Convertido = false
		q.JustificativaRejeicao = &justificativa
		now := time.Now().UTC()
		q.DataAprovacao = &now
	case entities.StatusAguardandoAprovacao:
		q.Convertido = false
		q.JustificativaRejeicao = nil
		q.DataAprovacao = nil
	}

	m.st.History[idx] = q
	if err := m.persistLocked(ctx); err != nil {
		m.st.History[idx] = prev
		m.mu.Unlock()
		return entities.Quote{}, err
	}
	if q.RemoteID != "" {
		m.dirtyQuotes[q.ID] = struct{}{}
	}
	m.mu.Unlock()

	m.notifySync()
	return q, nil
}

// --- Leads ----------------------------------------------------------------

func (m *Manager) AddLead(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	m.mu.Lock()

	var maxID int64
	for _, x := range m.st.Leads {
		if x.ID > maxID {
			maxID = x.ID
		}
	}
	l.ID = maxID + 1
	if l.CriadoEm.IsZero() {
		l.CriadoEm = time.Now().UTC()
	}

	m.st.Leads = append([]entities.Lead{l}, m.st.Leads...)
	if err := m.persistLocked(ctx); err != nil {
		m.st.Leads = m.st.Leads[1:]
		m.mu.Unlock()
		return entities.Lead{}, err
	}
	m.mu.Unlock()

	m.notifySync()
	return l, nil
}

func (m *Manager) ListLeads() []entities.Lead {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Lead, len(m.st.Leads))
	copy(out, m.st.Leads)
	return out
}

func nextRefID(n int, idAt func(int) int) int {
	maxID := 0
	for i := 0; i < n; i++ {
		if id := idAt(i); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
