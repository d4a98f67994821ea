// Package downloads records which users have downloaded which datasets.
// A download is the only entity in the system with idempotent-insert
// semantics: recording the same (dataset, user) pair twice leaves exactly
// one row behind.
package downloads

// Download represents one user's download of a dataset, with the dataset and
// user names denormalized into the row
type Download struct {
	DatasetID          string `json:"dataset_id"`
	UserID             string `json:"user_id"`
	DatasetName        string `json:"dataset_name"`
	DatasetDescription string `json:"dataset_description"`
	UserName           string `json:"user_name"`
}
