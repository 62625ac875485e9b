// Package clarifai implements the VisionClient port against the Clarifai
// face-detection REST API.
package clarifai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.VisionClient = (*Client)(nil)

const (
	defaultBaseURL = "https://api.clarifai.com"

	// Clarifai's public face-detection model. The version is pinned so model
	// updates upstream cannot silently change response shapes.
	modelID        = "face-detection"
	modelVersionID = "6dc7e46bc9124c5c8824be4822abe105"

	// statusSuccess is Clarifai's "all good" sentinel embedded in response bodies.
	statusSuccess = 10000
)

// Client implements the driven.VisionClient port over Clarifai's REST API.
// Each DetectFaces call is a single round trip bounded by the http.Client
// timeout: no retries, no caching.
type Client struct {
	http    *http.Client
	baseURL string
	pat     string // personal access token, sent as "Authorization: Key <pat>"
	userID  string
	appID   string
}

// NewClient creates a Clarifai client with the given credentials. timeout
// bounds each detection round trip; an unbounded upstream call would leak
// request handlers under load.
func NewClient(pat, userID, appID string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
		pat:     pat,
		userID:  userID,
		appID:   appID,
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base
// URL. This constructor is intended for testing, allowing injection of an
// httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, pat, userID, appID string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		pat:     pat,
		userID:  userID,
		appID:   appID,
	}
}

// outputsRequest is the Clarifai "post model outputs" payload referencing an
// image by URL.
type outputsRequest struct {
	Inputs []inputJSON `json:"inputs"`
}

type inputJSON struct {
	Data dataJSON `json:"data"`
}

type dataJSON struct {
	Image imageJSON `json:"image"`
}

type imageJSON struct {
	URL               string `json:"url"`
	AllowDuplicateURL bool   `json:"allow_duplicate_url"`
}

// outputsResponse is the subset of the Clarifai response the proxy consumes.
type outputsResponse struct {
	Status  statusJSON   `json:"status"`
	Outputs []outputJSON `json:"outputs"`
}

type statusJSON struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

type outputJSON struct {
	Data outputDataJSON `json:"data"`
}

type outputDataJSON struct {
	Regions []regionJSON `json:"regions"`
}

type regionJSON struct {
	RegionInfo regionInfoJSON `json:"region_info"`
	Data       regionDataJSON `json:"data"`
}

type regionInfoJSON struct {
	BoundingBox boundingBoxJSON `json:"bounding_box"`
}

type boundingBoxJSON struct {
	TopRow    float64 `json:"top_row"`
	LeftCol   float64 `json:"left_col"`
	BottomRow float64 `json:"bottom_row"`
	RightCol  float64 `json:"right_col"`
}

type regionDataJSON struct {
	Concepts []conceptJSON `json:"concepts"`
}

type conceptJSON struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DetectFaces submits the image URL to the pinned face-detection model and
// maps the response into domain regions. Transport failures (including the
// client timeout) map to driven.ErrUpstreamUnreachable; a reachable upstream
// that rejects the call maps to *driven.UpstreamError carrying the upstream
// status and description.
func (c *Client) DetectFaces(ctx context.Context, imageURL string) ([]model.Region, error) {
	payload := outputsRequest{
		Inputs: []inputJSON{
			{Data: dataJSON{Image: imageJSON{URL: imageURL, AllowDuplicateURL: true}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal detection request: %w", err)
	}

	url := fmt.Sprintf("%s/v2/users/%s/apps/%s/models/%s/versions/%s/outputs",
		c.baseURL, c.userID, c.appID, modelID, modelVersionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build detection request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.pat)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", driven.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	var parsed outputsResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		description := parsed.Status.Description
		if description == "" {
			description = resp.Status
		}
		return nil, &driven.UpstreamError{Code: resp.StatusCode, Description: description}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode detection response: %w", decodeErr)
	}

	if parsed.Status.Code != statusSuccess {
		return nil, &driven.UpstreamError{Code: parsed.Status.Code, Description: parsed.Status.Description}
	}

	return mapRegions(parsed.Outputs), nil
}

// mapRegions flattens the first output's regions into domain regions.
// An absent or empty region list means no faces were detected, not an error.
func mapRegions(outputs []outputJSON) []model.Region {
	regions := []model.Region{}
	if len(outputs) == 0 {
		return regions
	}

	for _, r := range outputs[0].Data.Regions {
		region := model.Region{
			Box: model.BoundingBox{
				TopRow:    r.RegionInfo.BoundingBox.TopRow,
				LeftCol:   r.RegionInfo.BoundingBox.LeftCol,
				BottomRow: r.RegionInfo.BoundingBox.BottomRow,
				RightCol:  r.RegionInfo.BoundingBox.RightCol,
			},
		}
		if len(r.Data.Concepts) > 0 {
			region.Confidence = r.Data.Concepts[0].Value
		}
		regions = append(regions, region)
	}

	return regions
}
