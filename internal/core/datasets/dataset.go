package datasets

import "time"

// Dataset status values. A dataset is created pending review, becomes
// visible in discovery once approved, and is soft-deleted by flipping the
// status rather than removing the document.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusDeleted  = "Deleted"
)

// Dataset represents dataset metadata in the document store. File and image
// blobs live in the store's blob bucket; this core only manages the metadata
// document. ID is the store-native object id in its external string form.
type Dataset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Author      string    `json:"author"`
	Status      string    `json:"status"`
	Size        int64     `json:"size"`
}
