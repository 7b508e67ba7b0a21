package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

const (
	defaultTimeout = 10 * time.Second

	headerAPIKey = "X-API-Key"
)

// Client talks JSON over HTTP to the game service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a Client for the given endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) FetchUserData(ctx context.Context, userID string) (*domain.UserData, error) {
	var data domain.UserData
	if err := c.get(ctx, "/api/users/"+url.PathEscape(userID)+"/data", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

type currencyRequest struct {
	UserID   string `json:"userId"`
	Currency string `json:"currency"`
	Delta    int    `json:"delta"`
	Reason   string `json:"reason,omitempty"`
}

func (c *Client) UpdateCurrency(ctx context.Context, userID string, kind domain.CurrencyKind, delta int, reason string) error {
	req := currencyRequest{
		UserID:   userID,
		Currency: string(kind),
		Delta:    delta,
		Reason:   reason,
	}
	return c.post(ctx, "/api/currency/update", req, nil)
}

type addItemRequest struct {
	UserID   string      `json:"userId"`
	Item     domain.Item `json:"item"`
	Quantity int         `json:"quantity"`
}

type addItemResponse struct {
	InventoryID string `json:"inventoryId"`
}

func (c *Client) AddInventoryItem(ctx context.Context, userID string, item domain.Item, quantity int) (string, error) {
	req := addItemRequest{UserID: userID, Item: item, Quantity: quantity}
	var resp addItemResponse
	if err := c.post(ctx, "/api/inventory/add", req, &resp); err != nil {
		return "", err
	}
	return resp.InventoryID, nil
}

type removeItemRequest struct {
	UserID      string `json:"userId"`
	InventoryID string `json:"inventoryId"`
	Quantity    int    `json:"quantity"`
}

func (c *Client) RemoveInventoryItem(ctx context.Context, userID, inventoryID string, quantity int) error {
	req := removeItemRequest{UserID: userID, InventoryID: inventoryID, Quantity: quantity}
	return c.post(ctx, "/api/inventory/remove", req, nil)
}

type createPetResponse struct {
	PetID string `json:"petId"`
}

func (c *Client) CreatePet(ctx context.Context, pet *domain.Pet) (string, error) {
	var resp createPetResponse
	if err := c.post(ctx, "/api/pets/create", pet, &resp); err != nil {
		return "", err
	}
	return resp.PetID, nil
}

func (c *Client) UpdatePetStats(ctx context.Context, pet *domain.Pet) error {
	return c.post(ctx, "/api/pets/stats", pet, nil)
}

type collectRequest struct {
	UserID        string `json:"userId"`
	CollectibleID string `json:"collectibleId"`
}

func (c *Client) CollectCollectible(ctx context.Context, userID, collectibleID string) error {
	req := collectRequest{UserID: userID, CollectibleID: collectibleID}
	return c.post(ctx, "/api/collectibles/collect", req, nil)
}

type searchResponse struct {
	Players []domain.PlayerProfile `json:"players"`
}

func (c *Client) SearchPlayers(ctx context.Context, query string) ([]domain.PlayerProfile, error) {
	var resp searchResponse
	if err := c.get(ctx, "/api/players/search?q="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	return resp.Players, nil
}

func (c *Client) GetPlayerProfile(ctx context.Context, userID string) (*domain.PlayerProfile, error) {
	var profile domain.PlayerProfile
	if err := c.get(ctx, "/api/players/"+url.PathEscape(userID), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type explorationRequest struct {
	PlanetID string                    `json:"planetId"`
	Points   []domain.ExplorationPoint `json:"points"`
}

func (c *Client) SaveExplorationPoints(ctx context.Context, planetID string, points []domain.ExplorationPoint) error {
	req := explorationRequest{PlanetID: planetID, Points: points}
	return c.post(ctx, "/api/exploration/points", req, nil)
}

// post sends a JSON body and decodes the response into out when non-nil.
// Any transport failure or non-2xx status maps to ErrExternalFailure so
// callers can treat the gateway as a single failure domain.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrExternalFailure, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: build request %s: %v", domain.ErrExternalFailure, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, req, path, out)
}

// get fetches a JSON resource into out, with the same failure mapping as post.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request %s: %v", domain.ErrExternalFailure, path, err)
	}
	return c.do(ctx, req, path, out)
}

func (c *Client) do(ctx context.Context, req *http.Request, path string, out any) error {
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrExternalFailure, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.FromContext(ctx).Warn("Remote call failed",
			"path", path, "status", resp.StatusCode, "body", string(snippet))
		return fmt.Errorf("%w: %s returned %d", domain.ErrExternalFailure, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode %s: %v", domain.ErrExternalFailure, path, err)
		}
	}
	return nil
}
