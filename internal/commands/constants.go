package commands

const (
	// CaptionHeight is the pixel strip above each panel reserved for its caption.
	CaptionHeight = 18

	// DemoPoints is the number of samples synthesized per demo series.
	DemoPoints = 400
)
