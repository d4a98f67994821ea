package cassandra

import (
	"context"
	"fmt"

	"Datashare/internal/core/downloads"

	"github.com/gocql/gocql"
)

type cassandraDownloadRepo struct {
	session *gocql.Session
}

// NewDownloadRepository creates a new Cassandra download repository
func NewDownloadRepository(session *gocql.Session) downloads.Repository {
	return &cassandraDownloadRepo{session: session}
}

// Record inserts a download row with IF NOT EXISTS so a repeated download
// by the same user leaves exactly one row. The lightweight transaction's
// applied flag tells the caller whether this was the first download.
func (r *cassandraDownloadRepo) Record(ctx context.Context, download *downloads.Download) (bool, error) {
	query := `
		INSERT INTO download_by_dataset (dataset_id, user_id, dataset_name, dataset_description, user_name)
		VALUES (?, ?, ?, ?, ?) IF NOT EXISTS`

	applied, err := r.session.Query(query,
		download.DatasetID, download.UserID, download.DatasetName,
		download.DatasetDescription, download.UserName,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return false, fmt.Errorf("failed to record download: %w", err)
	}

	return applied, nil
}

// ListByDataset retrieves all download records for a dataset
func (r *cassandraDownloadRepo) ListByDataset(ctx context.Context, datasetID string) ([]downloads.Download, error) {
	stmt := `
		SELECT dataset_id, user_id, dataset_name, dataset_description, user_name
		FROM download_by_dataset WHERE dataset_id = ?`

	results := []downloads.Download{}

	err := drainPages(func(pageState []byte) ([]byte, error) {
		iter := r.session.Query(stmt, datasetID).
			WithContext(ctx).
			PageSize(pageSize).
			PageState(pageState).
			Iter()
		next := iter.PageState()

		scanner := iter.Scanner()
		for scanner.Next() {
			var d downloads.Download
			if err := scanner.Scan(&d.DatasetID, &d.UserID, &d.DatasetName,
				&d.DatasetDescription, &d.UserName); err != nil {
				return nil, err
			}
			results = append(results, d)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads for dataset %s: %w", datasetID, err)
	}

	return results, nil
}
