package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/coocood/freecache"
)

// Recipe is one suggestion from the external recipe collection. Field names
// follow the upstream spreadsheet service payload.
type Recipe struct {
	Name         string  `json:"nome"`
	DietType     string  `json:"dieta"`
	Calories     float64 `json:"calorias"`
	ProteinG     float64 `json:"proteina"`
	CarbsG       float64 `json:"carbs"`
	FatG         float64 `json:"gordura"`
	PrepMinutes  int     `json:"preparo"`
	Kind         string  `json:"tipo"`
	Ingredients  string  `json:"ingredientes"`
	Instructions string  `json:"modoPreparo"`
}

type listResponse struct {
	Success bool     `json:"success"`
	Data    []Recipe `json:"data"`
}

const (
	cacheSizeBytes    = 8 * 1024 * 1024
	cacheExpireSecs   = 60 * 60
	defaultHTTPExpiry = 15 * time.Second
)

// Client fetches recipe pools from the spreadsheet-backed macro service and
// caches them per diet type for an hour, so the daily portal rotation does
// not hammer the upstream on every page load.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPExpiry}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSizeBytes),
	}
}

// RecipesByDiet returns the candidate pool for one diet type tag.
func (client *Client) RecipesByDiet(ctx context.Context, dietType string) ([]Recipe, error) {
	cacheKey := []byte("diet:" + dietType)
	if cached, err := client.cache.Get(cacheKey); err == nil {
		var pool []Recipe
		if err := json.Unmarshal(cached, &pool); err == nil {
			return pool, nil
		}
		// Unreadable cache entry; fall through to a fresh fetch.
		client.cache.Del(cacheKey)
	}

	requestURL := fmt.Sprintf("%s?action=getRecipesByDiet&diet=%s", client.baseURL, url.QueryEscape(dietType))
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build recipe request: %w", err)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetch recipes: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe service returned status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read recipe response: %w", err)
	}

	var parsed listResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode recipe response: %w", err)
	}
	if !parsed.Success {
		return []Recipe{}, nil
	}

	pool := parsed.Data
	if pool == nil {
		pool = []Recipe{}
	}

	if encoded, err := json.Marshal(pool); err == nil {
		_ = client.cache.Set(cacheKey, encoded, cacheExpireSecs)
	}

	return pool, nil
}
