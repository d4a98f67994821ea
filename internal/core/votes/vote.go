package votes

// Vote represents one logical rating of a dataset by a user.
// On write it is projected into two physical rows: one keyed by dataset
// ("who rated this dataset") and one keyed by user ("what did this user
// rate"), each carrying denormalized dataset fields so neither read path
// needs a join.
type Vote struct {
	DatasetID          string `json:"dataset_id"`
	UserID             string `json:"user_id"`
	DatasetName        string `json:"dataset_name"`
	DatasetDescription string `json:"dataset_description"`
	UserName           string `json:"user_name"`
	Rating             int    `json:"calification"`
}

// UserVote is the row shape of the by-user projection. It omits the rater's
// display name; the partition key already identifies the user.
type UserVote struct {
	UserID             string `json:"user_id"`
	DatasetID          string `json:"dataset_id"`
	DatasetName        string `json:"dataset_name"`
	DatasetDescription string `json:"dataset_description"`
	Rating             int    `json:"calification"`
}
