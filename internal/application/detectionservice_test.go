package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/smartbrain/internal/application"
	"github.com/ericfisherdev/smartbrain/internal/domain/model"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

func TestDetectFaces(t *testing.T) {
	vision := &mockVisionClient{
		regions: []model.Region{
			{Box: model.BoundingBox{TopRow: 0.1, LeftCol: 0.2, BottomRow: 0.5, RightCol: 0.6}, Confidence: 0.99},
		},
	}
	svc := application.NewDetectionService(vision)

	regions, err := svc.DetectFaces(context.Background(), "https://example.com/face.jpg")
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, 1, vision.calls)
}

func TestDetectFaces_EmptyURL(t *testing.T) {
	vision := &mockVisionClient{}
	svc := application.NewDetectionService(vision)

	_, err := svc.DetectFaces(context.Background(), "")
	require.ErrorIs(t, err, application.ErrValidation)
	assert.Zero(t, vision.calls, "validation failures must not reach the upstream")
}

func TestDetectFaces_NotConfigured(t *testing.T) {
	svc := application.NewDetectionService(nil)

	_, err := svc.DetectFaces(context.Background(), "https://example.com/face.jpg")
	require.ErrorIs(t, err, application.ErrVisionNotConfigured)
}

func TestDetectFaces_UpstreamErrorsPassThrough(t *testing.T) {
	vision := &mockVisionClient{err: driven.ErrUpstreamUnreachable}
	svc := application.NewDetectionService(vision)

	_, err := svc.DetectFaces(context.Background(), "https://example.com/face.jpg")
	require.ErrorIs(t, err, driven.ErrUpstreamUnreachable)
}
