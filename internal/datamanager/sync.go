package datamanager

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"
)

// SyncPending reconciles the remote mirror with local state:
//   - records without a RemoteID get a new remote document, and the minted id
//     is stamped back locally (at most one remote document per record, so
//     re-running after repeated offline/online cycles never duplicates)
//   - quotes changed since their last mirror get an upsert-merge
//
// Remote failures are logged and left pending for the next pass; they are
// never surfaced to the calculation path. Returns how many records were
// pushed.
func (m *Manager) SyncPending(ctx context.Context) (int, error) {
	if m.remote == nil {
		return 0, nil
	}

	type pendingQuote struct {
		id  int64
		doc map[string]any
	}
	type pendingLead struct {
		id  int64
		doc map[string]any
	}
	type dirtyQuote struct {
		id       int64
		remoteID string
		doc      map[string]any
	}

	// Snapshot the pending work under the lock; remote calls happen outside
	// it so a slow network never blocks local mutation.
	m.mu.Lock()
	var creates []pendingQuote
	var dirty []dirtyQuote
	for _, q := range m.st.History {
		if q.RemoteID == "" {
			doc, err := toDoc(q)
			if err != nil {
				log.Printf("[datamanager][sync] quote id=%d marshal failed err=%v", q.ID, err)
				continue
			}
			creates = append(creates, pendingQuote{id: q.ID, doc: doc})
		} else if _, ok := m.dirtyQuotes[q.ID]; ok {
			doc, err := toDoc(q)
			if err != nil {
				log.Printf("[datamanager][sync] quote id=%d marshal failed err=%v", q.ID, err)
				continue
			}
			// Claim the mark while still under the lock. A transition that
			// lands during the merge below re-marks the id, and that mark
			// must survive this pass so the next one pushes the newer state.
			delete(m.dirtyQuotes, q.ID)
			dirty = append(dirty, dirtyQuote{id: q.ID, remoteID: q.RemoteID, doc: doc})
		}
	}
	var leadCreates []pendingLead
	for _, l := range m.st.Leads {
		if l.RemoteID == "" {
			doc, err := toDoc(l)
			if err != nil {
				log.Printf("[datamanager][sync] lead id=%d marshal failed err=%v", l.ID, err)
				continue
			}
			leadCreates = append(leadCreates, pendingLead{id: l.ID, doc: doc})
		}
	}
	m.mu.Unlock()

	if len(creates) == 0 && len(dirty) == 0 && len(leadCreates) == 0 {
		return 0, nil
	}

	synced := 0
	quoteIDs := map[int64]string{}
	for _, p := range creates {
		remoteID, err := m.remote.Create(ctx, interfaces.CollectionQuotes, p.doc)
		if err != nil {
			log.Printf("[datamanager][sync] quote id=%d create failed, will retry err=%v", p.id, err)
			continue
		}
		quoteIDs[p.id] = remoteID
		synced++
	}
	failedMerges := map[int64]struct{}{}
	for _, d := range dirty {
		if err := m.remote.UpsertMerge(ctx, interfaces.CollectionQuotes, d.remoteID, d.doc); err != nil {
			log.Printf("[datamanager][sync] quote id=%d merge failed, will retry err=%v", d.id, err)
			failedMerges[d.id] = struct{}{}
			continue
		}
		synced++
	}
	leadIDs := map[int64]string{}
	for _, p := range leadCreates {
		remoteID, err := m.remote.Create(ctx, interfaces.CollectionLeads, p.doc)
		if err != nil {
			log.Printf("[datamanager][sync] lead id=%d create failed, will retry err=%v", p.id, err)
			continue
		}
		leadIDs[p.id] = remoteID
		synced++
	}

	if synced == 0 && len(failedMerges) == 0 {
		return 0, nil
	}

	// Stamp remote ids back and put failed merge claims back on the dirty
	// set, then persist once. Successful claims stay removed; a concurrent
	// re-mark is a fresh entry this pass never touches.
	m.mu.Lock()
	for i := range m.st.History {
		if rid, ok := quoteIDs[m.st.History[i].ID]; ok && m.st.History[i].RemoteID == "" {
			m.st.History[i].RemoteID = rid
		}
	}
	for id := range failedMerges {
		m.dirtyQuotes[id] = struct{}{}
	}
	for i := range m.st.Leads {
		if rid, ok := leadIDs[m.st.Leads[i].ID]; ok && m.st.Leads[i].RemoteID == "" {
			m.st.Leads[i].RemoteID = rid
		}
	}
	var err error
	if synced > 0 {
		err = m.persistLocked(ctx)
	}
	m.mu.Unlock()
	if err != nil {
		return synced, err
	}
	if synced == 0 {
		return 0, nil
	}

	log.Printf("[datamanager][sync] pushed records=%d", synced)
	return synced, nil
}

// toDoc round-trips an entity through JSON into the generic document shape
// the remote store accepts.
func toDoc(v any) (map[string]any, error) {
	blob, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, err
	}
	delete(doc, "remote_id")
	return doc, nil
}
