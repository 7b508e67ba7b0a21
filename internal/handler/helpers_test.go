package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/config"
	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/exploration"
	"github.com/xenopets/XenoPets_Go/internal/fishing"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/gamedata"
	"github.com/xenopets/XenoPets_Go/internal/persist"
	"github.com/xenopets/XenoPets_Go/internal/rng"
)

// stubRemote is a function-field stand-in for the remote gateway. Unset
// fields succeed, so happy-path handler tests need no setup.
type stubRemote struct {
	fetchUserData   func(ctx context.Context, userID string) (*domain.UserData, error)
	updateCurrency  func(ctx context.Context, userID string, kind domain.CurrencyKind, delta int, reason string) error
	addInventory    func(ctx context.Context, userID string, item domain.Item, quantity int) (string, error)
	removeInventory func(ctx context.Context, userID, inventoryID string, quantity int) error

	nextInventoryID int
}

func (s *stubRemote) FetchUserData(ctx context.Context, userID string) (*domain.UserData, error) {
	if s.fetchUserData != nil {
		return s.fetchUserData(ctx, userID)
	}
	return &domain.UserData{}, nil
}

func (s *stubRemote) UpdateCurrency(ctx context.Context, userID string, kind domain.CurrencyKind, delta int, reason string) error {
	if s.updateCurrency != nil {
		return s.updateCurrency(ctx, userID, kind, delta, reason)
	}
	return nil
}

func (s *stubRemote) AddInventoryItem(ctx context.Context, userID string, item domain.Item, quantity int) (string, error) {
	if s.addInventory != nil {
		return s.addInventory(ctx, userID, item, quantity)
	}
	s.nextInventoryID++
	return fmt.Sprintf("inv-%d", s.nextInventoryID), nil
}

func (s *stubRemote) RemoveInventoryItem(ctx context.Context, userID, inventoryID string, quantity int) error {
	if s.removeInventory != nil {
		return s.removeInventory(ctx, userID, inventoryID, quantity)
	}
	return nil
}

func (s *stubRemote) CreatePet(_ context.Context, _ *domain.Pet) (string, error) {
	return "pet-remote-1", nil
}

func (s *stubRemote) UpdatePetStats(_ context.Context, _ *domain.Pet) error { return nil }

func (s *stubRemote) CollectCollectible(_ context.Context, _, _ string) error { return nil }

func (s *stubRemote) SearchPlayers(_ context.Context, _ string) ([]domain.PlayerProfile, error) {
	return nil, nil
}

func (s *stubRemote) GetPlayerProfile(_ context.Context, _ string) (*domain.PlayerProfile, error) {
	return &domain.PlayerProfile{}, nil
}

func (s *stubRemote) SaveExplorationPoints(_ context.Context, _ string, _ []domain.ExplorationPoint) error {
	return nil
}

// env wires real services over in-memory collaborators for handler tests.
type env struct {
	game        game.Service
	fishing     fishing.Service
	exploration exploration.Service
	remote      *stubRemote
	clock       *clock.Simulated
	kv          *persist.MemoryStore
	catalog     *gamedata.Catalog
}

func newEnv(t *testing.T) *env {
	t.Helper()

	catalog, err := gamedata.Load()
	require.NoError(t, err)

	remote := &stubRemote{}
	clk := clock.NewSimulated(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	kv := persist.NewMemoryStore()
	bus := event.NewMemoryBus()
	gateway := persist.NewGateway(kv, config.SnapshotKey)

	return &env{
		game:        game.NewService(catalog, remote, gateway, kv, clk, bus),
		fishing:     fishing.NewService(catalog, clk, rng.New(1)),
		exploration: exploration.NewService(kv),
		remote:      remote,
		clock:       clk,
		kv:          kv,
		catalog:     catalog,
	}
}

func (e *env) login(t *testing.T) {
	t.Helper()
	require.NoError(t, e.game.SetUser(context.Background(), &domain.User{
		ID:       "user-1",
		Username: "Piloto",
	}))
}

func (e *env) loginAdmin(t *testing.T) {
	t.Helper()
	require.NoError(t, e.game.SetUser(context.Background(), &domain.User{
		ID:       "admin-1",
		Username: "Admin",
		IsAdmin:  true,
	}))
}

// fund credits the wallet through the confirmed path.
func (e *env) fund(t *testing.T, kind domain.CurrencyKind, amount int) {
	t.Helper()
	_, err := e.game.UpdateCurrency(context.Background(), kind, amount, "test-fund")
	require.NoError(t, err)
}

func testPet() domain.Pet {
	return domain.Pet{
		Name:    "Zug",
		Species: "Xenodino",
		Health:  4,
		Hunger:  5,
	}
}

// doJSON runs a handler against a JSON body and decodes the response into out
// when out is non-nil.
func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

// decodeBody decodes a recorded JSON response.
func decodeBody(rec *httptest.ResponseRecorder, out interface{}) error {
	return json.NewDecoder(rec.Body).Decode(out)
}

// withURLParams attaches chi route parameters to a request built outside a
// router.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
