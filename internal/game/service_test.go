package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/config"
	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/gamedata"
	"github.com/xenopets/XenoPets_Go/internal/persist"
)

// harness bundles the engine with its collaborators for tests.
type harness struct {
	svc     Service
	remote  *mockRemote
	clock   *clock.Simulated
	kv      *persist.MemoryStore
	bus     *event.MemoryBus
	catalog *gamedata.Catalog
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	catalog, err := gamedata.Load()
	require.NoError(t, err)

	remote := &mockRemote{}
	clk := clock.NewSimulated(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	kv := persist.NewMemoryStore()
	bus := event.NewMemoryBus()
	gateway := persist.NewGateway(kv, config.SnapshotKey)

	svc := NewService(catalog, remote, gateway, kv, clk, bus)
	return &harness{svc: svc, remote: remote, clock: clk, kv: kv, bus: bus, catalog: catalog}
}

// newHarnessWithStore builds an engine over an existing kv store, for
// restore tests.
func newHarnessWithStore(t *testing.T, kv *persist.MemoryStore) *harness {
	t.Helper()
	catalog, err := gamedata.Load()
	require.NoError(t, err)

	remote := &mockRemote{}
	clk := clock.NewSimulated(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	bus := event.NewMemoryBus()
	gateway := persist.NewGateway(kv, config.SnapshotKey)

	svc := NewService(catalog, remote, gateway, kv, clk, bus)
	return &harness{svc: svc, remote: remote, clock: clk, kv: kv, bus: bus, catalog: catalog}
}

// login puts a user in session without touching the remote mock.
func (h *harness) login(t *testing.T, user domain.User) {
	t.Helper()
	require.NoError(t, h.svc.SetUser(context.Background(), &user))
}

func testUser() domain.User {
	return domain.User{
		ID:       "user-1",
		Username: "Piloto",
	}
}

func adminUser() domain.User {
	return domain.User{
		ID:       "admin-1",
		Username: "Admin",
		IsAdmin:  true,
	}
}

// fund sets wallet balances directly through the remote-confirmed path.
func (h *harness) fund(t *testing.T, xenocoins, cash int) {
	t.Helper()
	ctx := context.Background()
	userID := h.svc.CurrentUser().ID
	if xenocoins > 0 {
		h.remote.On("UpdateCurrency", mock.Anything, userID, domain.CurrencyXenocoins, xenocoins, "test-fund").Return(nil).Once()
		_, err := h.svc.UpdateCurrency(ctx, domain.CurrencyXenocoins, xenocoins, "test-fund")
		require.NoError(t, err)
	}
	if cash > 0 {
		h.remote.On("UpdateCurrency", mock.Anything, userID, domain.CurrencyCash, cash, "test-fund").Return(nil).Once()
		_, err := h.svc.UpdateCurrency(ctx, domain.CurrencyCash, cash, "test-fund")
		require.NoError(t, err)
	}
}
