package models

// Report is a stored file owned by exactly one account. The bytes live in
// the artifact store under ArtifactRef.
type Report struct {
	ID          int64
	AccountID   int64
	ArtifactRef string
	FileName    string
	Description string
}
