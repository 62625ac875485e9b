package driven

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericfisherdev/smartbrain/internal/domain/model"
)

// ErrUpstreamUnreachable indicates the vision service could not be reached at
// the transport level (connection failure or timeout). Wrapped errors carry
// the underlying cause for logs.
var ErrUpstreamUnreachable = errors.New("vision service unreachable")

// UpstreamError indicates the vision service was reached but rejected the
// request, either with a failing HTTP status or with an embedded status code
// that is not the service's success sentinel.
type UpstreamError struct {
	Code        int
	Description string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("vision service rejected request: status %d (%s)", e.Code, e.Description)
}

// VisionClient defines the driven port for the external face-detection
// service. A call is a single bounded round trip: no retries, no caching.
type VisionClient interface {
	// DetectFaces submits the image at imageURL for face detection and returns
	// the detected regions. An empty slice means no faces were found and is
	// not an error. Failures are ErrUpstreamUnreachable (wrapped) or
	// *UpstreamError.
	DetectFaces(ctx context.Context, imageURL string) ([]model.Region, error)
}
