package application

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

// DetectionService forwards image references to the external vision service.
// It holds no storage dependency and runs entirely outside any database
// transaction.
type DetectionService struct {
	vision driven.VisionClient
}

// NewDetectionService creates a DetectionService. vision may be nil when the
// upstream credentials are not configured; every call then fails with
// ErrVisionNotConfigured before any network activity, mirroring how the
// composition root only constructs a client when credentials are present.
func NewDetectionService(vision driven.VisionClient) *DetectionService {
	return &DetectionService{vision: vision}
}

// DetectFaces submits imageURL for detection and returns the detected
// regions, possibly empty. Empty imageURL is ErrValidation. Upstream failures
// pass through as driven.ErrUpstreamUnreachable or *driven.UpstreamError.
func (s *DetectionService) DetectFaces(ctx context.Context, imageURL string) ([]model.Region, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image url is required", ErrValidation)
	}
	if s.vision == nil {
		return nil, ErrVisionNotConfigured
	}

	return s.vision.DetectFaces(ctx, imageURL)
}
