package models

// SnapshotVersion is written to every exported snapshot.
const SnapshotVersion = "1.0.0"

// SnapshotMetadata describes an exported snapshot.
type SnapshotMetadata struct {
	CreatedAt    string   `json:"created_at"`
	Version      string   `json:"version"`
	Description  string   `json:"description"`
	Tables       []string `json:"tables"`
	TotalRecords int      `json:"total_records"`
}

// Snapshot is the unit of transfer for backup and restore. Data maps
// collection names to their records; TotalRecords in the metadata must
// equal the sum of the per-collection record counts, and Tables must list
// every key present in Data.
type Snapshot struct {
	Metadata SnapshotMetadata            `json:"metadata"`
	Data     map[string][]map[string]any `json:"data"`
}

// RestoreResult summarizes a restore pass.
type RestoreResult struct {
	RecordsRestored     int      `json:"records_restored"`
	CollectionsRestored int      `json:"collections_restored"`
	CollectionsSkipped  []string `json:"collections_skipped,omitempty"`
}
