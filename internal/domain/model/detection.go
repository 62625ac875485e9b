package model

// BoundingBox is a face region in normalized image coordinates. Each field is
// a fraction of image height or width in [0, 1], with TopRow <= BottomRow and
// LeftCol <= RightCol.
type BoundingBox struct {
	TopRow    float64
	LeftCol   float64
	BottomRow float64
	RightCol  float64
}

// Region is a single detected face region returned by the vision service.
type Region struct {
	Box        BoundingBox
	Confidence float64
}
