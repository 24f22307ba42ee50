package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"pointarthub/models"
	"pointarthub/repositories"
	"pointarthub/storage"
)

// RestoreConfirmationPhrase must be supplied verbatim by the caller before
// a restore will run. Restore is destructive and irreversible.
const RestoreConfirmationPhrase = "RESTORE"

const restoreBatchSize = 100

var (
	// ErrOperationInProgress is returned when an export or restore is
	// already running; only one may run at a time.
	ErrOperationInProgress = errors.New("a backup or restore is already in progress")

	// ErrConfirmationRequired reports a declined or mistyped confirmation
	// phrase. It is a cancellation, not a failure: nothing was touched.
	ErrConfirmationRequired = errors.New("restore requires the confirmation phrase")

	// ErrInvalidSnapshot reports a document missing the required metadata
	// or data keys.
	ErrInvalidSnapshot = errors.New("invalid snapshot: missing metadata or data")
)

// ProgressFunc receives completion percentages during export and restore.
// The sequence of values is non-decreasing and ends at 100.
type ProgressFunc func(percent int)

type BackupService struct {
	store      repositories.CollectionStore
	backupRepo repositories.BackupRepository
	artifacts  storage.Storage
	sem        *semaphore.Weighted
	now        func() time.Time
}

func NewBackupService(store repositories.CollectionStore, backupRepo repositories.BackupRepository, artifacts storage.Storage) *BackupService {
	return &BackupService{
		store:      store,
		backupRepo: backupRepo,
		artifacts:  artifacts,
		sem:        semaphore.NewWeighted(1),
		now:        time.Now,
	}
}

// BuildSnapshot collects every collection into a snapshot, in the canonical
// backup order. A collection whose fetch fails is recorded as an empty list
// and the pass continues: one missing table must not abort the whole backup.
func (s *BackupService) BuildSnapshot(ctx context.Context, description string, progress ProgressFunc) (*models.Snapshot, error) {
	order := models.BackupOrder()
	data := make(map[string][]map[string]any, len(order))
	tables := make([]string, 0, len(order))
	total := 0

	for i, collection := range order {
		records, err := s.store.SelectAll(ctx, collection)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"collection": collection,
				"error":      err,
			}).Warn("Failed to fetch collection, recording it as empty")
			records = []map[string]any{}
		}
		if records == nil {
			records = []map[string]any{}
		}
		data[collection.String()] = records
		tables = append(tables, collection.String())
		total += len(records)

		if progress != nil {
			progress((i + 1) * 100 / len(order))
		}
	}

	return &models.Snapshot{
		Metadata: models.SnapshotMetadata{
			CreatedAt:    s.now().UTC().Format(time.RFC3339),
			Version:      models.SnapshotVersion,
			Description:  description,
			Tables:       tables,
			TotalRecords: total,
		},
		Data: data,
	}, nil
}

// Export builds a snapshot and writes it to artifact storage. If
// serialization fails the whole operation fails and no file is written.
func (s *BackupService) Export(ctx context.Context, description, triggeredBy string, progress ProgressFunc) (*models.BackupRun, error) {
	if !s.sem.TryAcquire(1) {
		return nil, ErrOperationInProgress
	}
	defer s.sem.Release(1)

	snapshot, err := s.BuildSnapshot(ctx, description, progress)
	if err != nil {
		return nil, err
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	filename := fmt.Sprintf("point-art-hub-backup-%s.json", s.now().Format("2006-01-02-15-04-05"))
	location, err := s.artifacts.Upload(bytes.NewReader(payload), filename)
	if err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	run := &models.BackupRun{
		Filename:     filename,
		Description:  description,
		TotalRecords: snapshot.Metadata.TotalRecords,
		Location:     location,
		TriggeredBy:  triggeredBy,
	}
	if err := s.backupRepo.CreateRun(run); err != nil {
		// The snapshot itself was written; history is best-effort.
		logrus.WithError(err).Warn("Failed to record backup run")
	}

	logrus.WithFields(logrus.Fields{
		"filename":      filename,
		"total_records": snapshot.Metadata.TotalRecords,
	}).Info("Backup export completed")

	return run, nil
}

// rawSnapshot distinguishes absent top-level keys from empty ones during
// format validation.
type rawSnapshot struct {
	Metadata *models.SnapshotMetadata    `json:"metadata"`
	Data     map[string][]map[string]any `json:"data"`
}

// Restore replays a snapshot into the collections, replacing existing
// data. It validates the document before any mutation, then processes one
// collection at a time in the canonical order: delete all existing records,
// insert the snapshot's records in fixed-size batches. A failure on one
// collection is logged and that collection is skipped; the pass continues.
// Restore is therefore not transactional: a partial failure leaves some
// collections replaced and others untouched.
func (s *BackupService) Restore(ctx context.Context, r io.Reader, confirmation string, progress ProgressFunc) (*models.RestoreResult, error) {
	if confirmation != RestoreConfirmationPhrase {
		return nil, ErrConfirmationRequired
	}

	if !s.sem.TryAcquire(1) {
		return nil, ErrOperationInProgress
	}
	defer s.sem.Release(1)

	var snapshot rawSnapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if snapshot.Metadata == nil || snapshot.Data == nil {
		return nil, ErrInvalidSnapshot
	}

	for name := range snapshot.Data {
		if !models.Collection(name).Valid() {
			logrus.WithField("collection", name).Warn("Ignoring unknown collection in snapshot")
		}
	}

	// Iterate the canonical order rather than map order so restores are
	// deterministic regardless of how the document was produced.
	var present []models.Collection
	for _, collection := range models.BackupOrder() {
		if records, ok := snapshot.Data[collection.String()]; ok && len(records) > 0 {
			present = append(present, collection)
		}
	}

	result := &models.RestoreResult{}
	for i, collection := range present {
		records := snapshot.Data[collection.String()]

		if err := s.store.DeleteAll(ctx, collection); err != nil {
			logrus.WithFields(logrus.Fields{
				"collection": collection,
				"error":      err,
			}).Error("Failed to clear collection, skipping it")
			result.CollectionsSkipped = append(result.CollectionsSkipped, collection.String())
			continue
		}

		restored, err := s.insertInBatches(ctx, collection, records)
		result.RecordsRestored += restored
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"collection": collection,
				"restored":   restored,
				"total":      len(records),
				"error":      err,
			}).Error("Failed to insert batch, skipping rest of collection")
			result.CollectionsSkipped = append(result.CollectionsSkipped, collection.String())
			continue
		}
		result.CollectionsRestored++

		if progress != nil {
			progress((i + 1) * 100 / len(present))
		}
	}
	if progress != nil {
		progress(100)
	}

	logrus.WithFields(logrus.Fields{
		"records":     result.RecordsRestored,
		"collections": result.CollectionsRestored,
		"skipped":     result.CollectionsSkipped,
	}).Info("Restore completed")

	return result, nil
}

func (s *BackupService) insertInBatches(ctx context.Context, collection models.Collection, records []map[string]any) (int, error) {
	inserted := 0
	for start := 0; start < len(records); start += restoreBatchSize {
		end := start + restoreBatchSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.store.InsertBatch(ctx, collection, records[start:end]); err != nil {
			return inserted, err
		}
		inserted += end - start
	}
	return inserted, nil
}

// LatestRun exposes the most recent export for the backup reminder job.
func (s *BackupService) LatestRun() (*models.BackupRun, error) {
	return s.backupRepo.LatestRun()
}

// ListRuns lists recent exports for the admin panel.
func (s *BackupService) ListRuns(limit int) ([]models.BackupRun, error) {
	return s.backupRepo.ListRuns(limit)
}

// OpenSnapshot fetches a previously exported snapshot file.
func (s *BackupService) OpenSnapshot(filename string) (io.ReadCloser, error) {
	return s.artifacts.Download(filename)
}
