package recorder

import "context"

// NoopRecorder is used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ context.Context, _ *SectorSnapshot) error { return nil }
func (n *NoopRecorder) RecentSnapshots(_ context.Context, _ int) ([]SnapshotSummary, error) {
	return []SnapshotSummary{}, nil
}
func (n *NoopRecorder) Close() error { return nil }
