package domain

// SnapshotRecordKey is the single key the persisted session is stored under.
const SnapshotRecordKey = "applicationData"

// PersistedSnapshot is the durable mirror of a wizard session.
// File contents are never stored, only document display names, so a restored
// session must select its CV again before it can be submitted.
type PersistedSnapshot struct {
	ExtractedData   *ExtractedRecord   `json:"extractedData"`
	ApplicationData *ApplicationRecord `json:"applicationData"`
	Documents       DocumentNames      `json:"documents"`
}

// DocumentNames holds the display names of the session's documents.
type DocumentNames struct {
	CV         *string `json:"cv"`
	Motivation *string `json:"motivation"`
}

// IsEmpty returns true if the snapshot carries no session data.
func (s *PersistedSnapshot) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.ExtractedData == nil && s.ApplicationData == nil &&
		s.Documents.CV == nil && s.Documents.Motivation == nil
}
