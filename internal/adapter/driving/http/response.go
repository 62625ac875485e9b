package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// RegisterRequest is the JSON body for the register endpoint.
type RegisterRequest struct {
	DisplayName string `json:"display_name"`
	Identity    string `json:"identity"`
	Secret      string `json:"secret"`
}

// SigninRequest is the JSON body for the signin endpoint.
type SigninRequest struct {
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

// ImageRequest is the JSON body for the engagement increment endpoint.
type ImageRequest struct {
	ID int64 `json:"id"`
}

// DetectRequest is the JSON body for the face detection endpoint.
type DetectRequest struct {
	ImageURL string `json:"image_url"`
}

// UserResponse is the JSON representation of an account profile. The secret
// hash is never part of it.
type UserResponse struct {
	ID              int64  `json:"id"`
	Identity        string `json:"identity"`
	DisplayName     string `json:"display_name"`
	JoinedAt        string `json:"joined_at"`
	EngagementCount int64  `json:"engagement_count"`
}

// EngagementResponse is the JSON body returned after an engagement increment.
type EngagementResponse struct {
	EngagementCount int64 `json:"engagement_count"`
}

// BoundingBoxResponse is the JSON representation of a normalized face region box.
type BoundingBoxResponse struct {
	TopRow    float64 `json:"top_row"`
	LeftCol   float64 `json:"left_col"`
	BottomRow float64 `json:"bottom_row"`
	RightCol  float64 `json:"right_col"`
}

// RegionResponse is the JSON representation of a detected face region.
type RegionResponse struct {
	BoundingBox BoundingBoxResponse `json:"bounding_box"`
	Confidence  float64             `json:"confidence"`
}

// DetectResponse is the JSON body for a successful detection. Boxes repeats
// the bounding boxes as a flat list for clients that only draw rectangles.
type DetectResponse struct {
	Regions []RegionResponse      `json:"regions"`
	Boxes   []BoundingBoxResponse `json:"boxes"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toUserResponse converts a domain User to its JSON response representation.
func toUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Identity:        user.Identity,
		DisplayName:     user.DisplayName,
		JoinedAt:        user.JoinedAt.UTC().Format(time.RFC3339),
		EngagementCount: user.EngagementCount,
	}
}

// toBoundingBoxResponse converts a domain BoundingBox to its JSON representation.
func toBoundingBoxResponse(box model.BoundingBox) BoundingBoxResponse {
	return BoundingBoxResponse{
		TopRow:    box.TopRow,
		LeftCol:   box.LeftCol,
		BottomRow: box.BottomRow,
		RightCol:  box.RightCol,
	}
}

// toDetectResponse converts detected regions to the response shape.
func toDetectResponse(regions []model.Region) DetectResponse {
	resp := DetectResponse{
		Regions: make([]RegionResponse, 0, len(regions)),
		Boxes:   make([]BoundingBoxResponse, 0, len(regions)),
	}

	for _, region := range regions {
		box := toBoundingBoxResponse(region.Box)
		resp.Regions = append(resp.Regions, RegionResponse{
			BoundingBox: box,
			Confidence:  region.Confidence,
		})
		resp.Boxes = append(resp.Boxes, box)
	}

	return resp
}

// nowRFC3339 returns the current UTC time formatted for responses.
func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
