package project

// ContentGenerationError means the product-record fetch failed or produced
// nothing usable. Recoverable: the user returns to the theme input and can
// retry. Per-item image failures are never wrapped in this; they downgrade
// to placeholders silently.
type ContentGenerationError struct {
	Err error
}

func (e *ContentGenerationError) Error() string {
	return "content generation failed: " + e.Err.Error()
}

func (e *ContentGenerationError) Unwrap() error {
	return e.Err
}

// ArchiveError means archive serialization failed. Recoverable: the session
// stays ready and the tree view remains usable; no partial archive is ever
// offered for download.
type ArchiveError struct {
	Err error
}

func (e *ArchiveError) Error() string {
	return "archive generation failed: " + e.Err.Error()
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}
