package cache

// Kind names one of the artifact types stored per fingerprint.
type Kind string

const (
	KindTranscript Kind = "transcript"
	KindSummary    Kind = "summary"
)

// ArtifactCache persists derived text artifacts keyed by content
// fingerprint. Entries are written once after a confirmed miss and never
// mutated in place; only ClearAll removes them.
type ArtifactCache interface {
	Get(fingerprint string, kind Kind) (string, bool, error)
	Put(fingerprint string, kind Kind, text string) error
	ClearAll() error
}
