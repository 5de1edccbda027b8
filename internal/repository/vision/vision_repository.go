package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"smartShop/business/inventory"
)

type VisionConfig struct {
	BaseURL string
	APIKey  string
}

// VisionRepository calls a shelf-photo analysis API and returns the product
// drafts it recognized. The model and prompt live on the remote side; this
// client only carries the image reference.
type VisionRepository struct {
	visionConfig VisionConfig
	client       *http.Client
}

func NewVisionRepository(cfg VisionConfig) *VisionRepository {
	return &VisionRepository{
		visionConfig: cfg,
		client:       &http.Client{Timeout: 60 * time.Second},
	}
}

type analyzeRequest struct {
	ImageURI string `json:"image_uri"`
}

type analyzeResponse struct {
	Products []struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Count int     `json:"count"`
	} `json:"products"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (r *VisionRepository) AnalyzeShelf(ctx context.Context, imageURI string) ([]inventory.ProductDraft, error) {
	payload, err := json.Marshal(analyzeRequest{ImageURI: imageURI})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analyze request: %w", err)
	}

	url := r.visionConfig.BaseURL + "/v1/shelf/analyze"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payload)))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+r.visionConfig.APIKey)

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analyze response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		if parsed.Error.Message != "" {
			return nil, fmt.Errorf("vision API error: %s", parsed.Error.Message)
		}
		return nil, fmt.Errorf("vision API error: %s", res.Status)
	}

	drafts := make([]inventory.ProductDraft, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		drafts = append(drafts, inventory.ProductDraft{
			Name:  p.Name,
			Price: p.Price,
			Count: p.Count,
		})
	}

	return drafts, nil
}
