package datamanager

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
	mock_interfaces "github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memSnapshot is a minimal in-memory snapshot store. Most tests only care
// that Save succeeds; the gomock store is used where call behavior matters.
type memSnapshot struct {
	blobs map[string][]byte
	saves int
}

func newMemSnapshot() *memSnapshot { return &memSnapshot{blobs: map[string][]byte{}} }

func (s *memSnapshot) Load(_ context.Context, key string) ([]byte, error) {
	return s.blobs[key], nil
}

func (s *memSnapshot) Save(_ context.Context, key string, blob []byte) error {
	s.blobs[key] = append([]byte(nil), blob...)
	s.saves++
	return nil
}

func newLoadedManager(t *testing.T, remote *mock_interfaces.MockIRemoteStore) (*Manager, *memSnapshot) {
	t.Helper()
	snap := newMemSnapshot()
	var m *Manager
	if remote != nil {
		m = New(snap, remote)
	} else {
		// Plain nil, not a typed-nil *MockIRemoteStore.
		m = New(snap, nil)
	}
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return m, snap
}

func sampleQuote(cliente string) entities.Quote {
	return entities.Quote{
		ClienteNome:      cliente,
		ClienteContato:   "(11) 98765-4321",
		Sala:             entities.Space{ID: 1, Nome: "Auditório", Unidade: "Centro"},
		Duracao:          2,
		DuracaoTipo:      "dias",
		DiasSelecionados: []int{1, 3},
		Resultado:        entities.QuoteResult{ValorFinal: 1000, SubtotalSemMargem: 900, HorasTotais: 16},
		ClassificacaoRisco: entities.RiskInfo{
			Nivel: entities.RiscoBaixo, Percentual: 20,
		},
	}
}

func TestManager_AddQuoteIDMonotonicity(t *testing.T) {
	m, _ := newLoadedManager(t, nil)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		q, err := m.AddQuote(ctx, sampleQuote("Cliente"))
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if q.ID != int64(i) {
			t.Fatalf("expected id %d, got %d", i, q.ID)
		}
		if q.StatusAprovacao != entities.StatusAguardandoAprovacao {
			t.Fatalf("expected initial status, got %s", q.StatusAprovacao)
		}
	}

	history := m.ListQuotes()
	if len(history) != 5 {
		t.Fatalf("expected 5 records, got %d", len(history))
	}
	// Most recent first.
	for i, q := range history {
		if q.ID != int64(5-i) {
			t.Fatalf("expected head-first ordering, got %v", history)
		}
	}
}

func TestManager_IntegrityGate(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status", func(t *testing.T) {
		m, _ := newLoadedManager(t, nil)
		q, _ := m.AddQuote(ctx, sampleQuote("Cliente"))
		_, err := m.UpdateQuoteStatus(ctx, q.ID, "EM_ANALISE", "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		m, _ := newLoadedManager(t, nil)
		_, err := m.UpdateQuoteStatus(ctx, 42, entities.StatusAprovado, "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("rejection justification length", func(t *testing.T) {
		m, snap := newLoadedManager(t, nil)
		q, _ := m.AddQuote(ctx, sampleQuote("Cliente"))
		savesBefore := snap.saves

		for _, justificativa := range []string{"", "123456789", "   1234567   "} {
			_, err := m.UpdateQuoteStatus(ctx, q.ID, entities.StatusReprovado, justificativa)
			if !errors.Is(err, ErrDataIntegrityViolation) {
				t.Fatalf("justificativa %q: expected ErrDataIntegrityViolation, got %v", justificativa, err)
			}
		}
		// Atomic rejection: nothing changed, nothing written.
		got, _ := m.GetQuote(q.ID)
		if got.StatusAprovacao != entities.StatusAguardandoAprovacao || got.Convertido {
			t.Fatalf("record mutated by failed transition: %+v", got)
		}
		if snap.saves != savesBefore {
			t.Fatalf("failed transition wrote the snapshot")
		}

		// Exactly 10 characters is enough.
		upd, err := m.UpdateQuoteStatus(ctx, q.ID, entities.StatusReprovado, "1234567890")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.JustificativaRejeicao == nil || *upd.JustificativaRejeicao != "1234567890" {
			t.Fatalf("expected stored justification, got %+v", upd)
		}
		if upd.DataAprovacao == nil {
			t.Fatalf("expected decision timestamp")
		}
	})

	t.Run("convertido invariant across transitions", func(t *testing.T) {
		m, _ := newLoadedManager(t, nil)
		q, _ := m.AddQuote(ctx, sampleQuote("Cliente"))

		steps := []struct {
			status        entities.ApprovalStatus
			justificativa string
		}{
			{entities.StatusAprovado, ""},
			{entities.StatusReprovado, "cliente desistiu do evento"},
			{entities.StatusAprovado, ""},
			{entities.StatusAguardandoAprovacao, ""},
			{entities.StatusAprovado, ""},
		}
		for i, step := range steps {
			upd, err := m.UpdateQuoteStatus(ctx, q.ID, step.status, step.justificativa)
			if err != nil {
				t.Fatalf("step %d: unexpected error: %v", i, err)
			}
			if upd.Convertido != (upd.StatusAprovacao == entities.StatusAprovado) {
				t.Fatalf("step %d: convertido invariant broken: %+v", i, upd)
			}
			switch step.status {
			case entities.StatusAprovado, entities.StatusAguardandoAprovacao:
				if upd.JustificativaRejeicao != nil {
					t.Fatalf("step %d: justification not cleared: %+v", i, upd)
				}
			case entities.StatusReprovado:
				if upd.JustificativaRejeicao == nil {
					t.Fatalf("step %d: justification missing", i)
				}
			}
		}
	})
}

func TestManager_SyncPendingIdempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := mock_interfaces.NewMockIRemoteStore(ctrl)
	m, _ := newLoadedManager(t, remote)
	ctx := context.Background()

	if _, err := m.AddQuote(ctx, sampleQuote("Cliente Sync")); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := m.AddLead(ctx, entities.Lead{Nome: "Lead Sync"}); err != nil {
		t.Fatalf("add lead failed: %v", err)
	}

	remote.EXPECT().Create(gomock.Any(), "quotes", gomock.Any()).Return("remote-q-1", nil).Times(1)
	remote.EXPECT().Create(gomock.Any(), "leads", gomock.Any()).Return("remote-l-1", nil).Times(1)

	n, err := m.SyncPending(ctx)
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 pushed, got %d", n)
	}
	q := m.ListQuotes()[0]
	if q.RemoteID != "remote-q-1" {
		t.Fatalf("remote id not stamped: %+v", q)
	}
	if m.ListLeads()[0].RemoteID != "remote-l-1" {
		t.Fatalf("lead remote id not stamped")
	}

	// Second pass has nothing to push: no remote calls expected.
	n, err = m.SyncPending(ctx)
	if err != nil || n != 0 {
		t.Fatalf("expected no-op second pass, got n=%d err=%v", n, err)
	}
}

func TestManager_SyncRetriesAfterRemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := mock_interfaces.NewMockIRemoteStore(ctrl)
	m, _ := newLoadedManager(t, remote)
	ctx := context.Background()

	if _, err := m.AddQuote(ctx, sampleQuote("Cliente Offline")); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	remote.EXPECT().Create(gomock.Any(), "quotes", gomock.Any()).Return("", errors.New("network down")).Times(1)
	if n, err := m.SyncPending(ctx); err != nil || n != 0 {
		t.Fatalf("remote failure must stay local: n=%d err=%v", n, err)
	}
	if m.ListQuotes()[0].RemoteID != "" {
		t.Fatalf("record should remain pending")
	}

	remote.EXPECT().Create(gomock.Any(), "quotes", gomock.Any()).Return("remote-q-1", nil).Times(1)
	if n, err := m.SyncPending(ctx); err != nil || n != 1 {
		t.Fatalf("expected retry to push, got n=%d err=%v", n, err)
	}
}

func TestManager_StatusChangeQueuesRemoteMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := mock_interfaces.NewMockIRemoteStore(ctrl)
	m, _ := newLoadedManager(t, remote)
	ctx := context.Background()

	q, _ := m.AddQuote(ctx, sampleQuote("Cliente Merge"))
	remote.EXPECT().Create(gomock.Any(), "quotes", gomock.Any()).Return("remote-q-1", nil)
	if _, err := m.SyncPending(ctx); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if _, err := m.UpdateQuoteStatus(ctx, q.ID, entities.StatusAprovado, ""); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	remote.EXPECT().UpsertMerge(gomock.Any(), "quotes", "remote-q-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, doc map[string]any) error {
			if doc["status_aprovacao"] != string(entities.StatusAprovado) {
				t.Fatalf("merge doc missing new status: %v", doc)
			}
			return nil
		},
	)
	if n, err := m.SyncPending(ctx); err != nil || n != 1 {
		t.Fatalf("expected one merge, got n=%d err=%v", n, err)
	}

	// Drained: nothing further to push.
	if n, _ := m.SyncPending(ctx); n != 0 {
		t.Fatalf("expected drained dirty set, got %d", n)
	}
}

func TestManager_SyncRetriesFailedMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := mock_interfaces.NewMockIRemoteStore(ctrl)
	m, _ := newLoadedManager(t, remote)
	ctx := context.Background()

	q, _ := m.AddQuote(ctx, sampleQuote("Cliente Merge Retry"))
	remote.EXPECT().Create(gomock.Any(), "quotes", gomock.Any()).Return("remote-q-1", nil)
	if _, err := m.SyncPending(ctx); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if _, err := m.UpdateQuoteStatus(ctx, q.ID, entities.StatusAprovado, ""); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	remote.EXPECT().UpsertMerge(gomock.Any(), "quotes", "remote-q-1", gomock.Any()).Return(errors.New("network down")).Times(1)
	if n, err := m.SyncPending(ctx); err != nil || n != 0 {
		t.Fatalf("merge failure must stay local: n=%d err=%v", n, err)
	}

	remote.EXPECT().UpsertMerge(gomock.Any(), "quotes", "remote-q-1", gomock.Any()).Return(nil).Times(1)
	if n, err := m.SyncPending(ctx); err != nil || n != 1 {
		t.Fatalf("expected retry to push the merge, got n=%d err=%v", n, err)
	}
}

func TestManager_StatusChangeDuringMergeReachesRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	remote := mock_interfaces.NewMockIRemoteStore(ctrl)
	m, _ := newLoadedManager(t, remote)
	ctx := context.Background()

	q, _ := m.AddQuote(ctx, sampleQuote("Cliente Corrida"))
	remote.EXPECT().Create(gomock.Any(), "quotes", gomock.Any()).Return("remote-q-1", nil)
	if _, err := m.SyncPending(ctx); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if _, err := m.UpdateQuoteStatus(ctx, q.ID, entities.StatusAprovado, ""); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	// The rejection lands while the approval merge is in flight. Its dirty
	// mark must survive this pass so the next one pushes the newer state.
	remote.EXPECT().UpsertMerge(gomock.Any(), "quotes", "remote-q-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, doc map[string]any) error {
			if doc["status_aprovacao"] != string(entities.StatusAprovado) {
				t.Fatalf("first merge should carry the approval: %v", doc)
			}
			if _, err := m.UpdateQuoteStatus(ctx, q.ID, entities.StatusReprovado, "cliente desistiu do evento"); err != nil {
				t.Fatalf("concurrent transition failed: %v", err)
			}
			return nil
		},
	)
	if n, err := m.SyncPending(ctx); err != nil || n != 1 {
		t.Fatalf("expected one merge, got n=%d err=%v", n, err)
	}

	remote.EXPECT().UpsertMerge(gomock.Any(), "quotes", "remote-q-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, doc map[string]any) error {
			if doc["status_aprovacao"] != string(entities.StatusReprovado) {
				t.Fatalf("second merge should carry the rejection: %v", doc)
			}
			return nil
		},
	)
	if n, err := m.SyncPending(ctx); err != nil || n != 1 {
		t.Fatalf("expected follow-up merge for the rejection, got n=%d err=%v", n, err)
	}
}

func TestManager_RenewalOpportunities(t *testing.T) {
	m, _ := newLoadedManager(t, nil)
	ctx := context.Background()
	ref := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	add := func(cliente string, monthsAgo int, convertido bool) {
		q := sampleQuote(cliente)
		q.Data = ref.AddDate(0, -monthsAgo, 0)
		q.Convertido = convertido
		if convertido {
			q.StatusAprovacao = entities.StatusAprovado
		}
		if _, err := m.AddQuote(ctx, q); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	add("Muito Recente", 5, true)
	add("Na Janela A", 10, true)
	add("Na Janela B", 11, true)
	add("Nunca Fechou", 11, false)
	add("Voltou Sozinho", 11, true)
	add("Voltou Sozinho", 2, true)
	add("Muito Antigo", 14, true)

	opps := m.RenewalOpportunities(ref)
	if len(opps) != 2 {
		t.Fatalf("expected 2 opportunities, got %+v", opps)
	}
	// Only converted past clients count; quotes that never closed are not
	// renewal targets, and a client with a newer conversion already came back.
	if opps[0].Cliente != "Na Janela A" || opps[0].MesesAtras != 10 {
		t.Fatalf("expected most recent first, got %+v", opps)
	}
	if opps[1].Cliente != "Na Janela B" || opps[1].Espaco != "Auditório" {
		t.Fatalf("unexpected second opportunity: %+v", opps)
	}
}

func TestManager_ExportHistoryCSV(t *testing.T) {
	m, _ := newLoadedManager(t, nil)
	ctx := context.Background()

	q := sampleQuote(`Maria "Eventos" Silva`)
	if _, err := m.AddQuote(ctx, q); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	out, err := m.ExportHistoryCSV()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Cliente") || !strings.Contains(lines[0], "Contato") {
		t.Fatalf("header missing client columns: %s", lines[0])
	}
	if !strings.Contains(out, `"Maria ""Eventos"" Silva"`) {
		t.Fatalf("client name not csv-escaped: %s", out)
	}
	if !strings.Contains(lines[1], "(11) 98765-4321") {
		t.Fatalf("contact column missing: %s", lines[1])
	}
}

func TestManager_ExportHistoryXLSX(t *testing.T) {
	m, _ := newLoadedManager(t, nil)
	if _, err := m.AddQuote(context.Background(), sampleQuote("Cliente Planilha")); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	blob, err := m.ExportHistoryXLSX()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	// XLSX files are zip containers.
	if len(blob) < 4 || blob[0] != 'P' || blob[1] != 'K' {
		t.Fatalf("expected xlsx blob, got %d bytes", len(blob))
	}
}

func TestManager_SnapshotRoundTrip(t *testing.T) {
	snap := newMemSnapshot()
	ctx := context.Background()

	m1 := New(snap, nil)
	if err := m1.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := m1.SaveSpace(ctx, entities.Space{Nome: "Auditório", Unidade: "Centro"}); err != nil {
		t.Fatalf("save space failed: %v", err)
	}
	if _, err := m1.SaveEmployee(ctx, entities.Employee{Nome: "Ana", Ativo: true}); err != nil {
		t.Fatalf("save employee failed: %v", err)
	}
	if _, err := m1.AddQuote(ctx, sampleQuote("Persistido")); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	m2 := New(snap, nil)
	if err := m2.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(m2.Spaces()) != 1 || m2.Spaces()[0].ID != 1 {
		t.Fatalf("spaces not restored: %+v", m2.Spaces())
	}
	if m2.ActiveStaffCount() != 1 {
		t.Fatalf("staff not restored")
	}
	if len(m2.ListQuotes()) != 1 || m2.ListQuotes()[0].ClienteNome != "Persistido" {
		t.Fatalf("history not restored: %+v", m2.ListQuotes())
	}
	if m2.Settings().SemanasPorMes == 0 {
		t.Fatalf("settings defaults missing after reload")
	}
}

func TestManager_SettingsUpdateRollsBackOnPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	snap := mock_interfaces.NewMockISnapshotStore(ctrl)
	snap.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, nil)
	snap.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	m := New(snap, nil)
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	prev := m.Settings()
	changed := prev
	changed.CustoFixoDiario = 999
	if err := m.UpdateSettings(context.Background(), changed); err == nil {
		t.Fatalf("expected persist error")
	}
	if m.Settings() != prev {
		t.Fatalf("settings mutated despite failed persist")
	}
}
