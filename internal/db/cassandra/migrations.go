package cassandra

import (
	"fmt"

	"github.com/gocql/gocql"
)

// tables holds the schema for every wide-column table. Each statement is
// idempotent so Migrate can run on every startup.
//
// Lookup tables (vote_by_user_ds, conversation_by_user) duplicate rows from
// their canonical tables so each access path reads a single partition.
var tables = []string{
	// Comments for a dataset, newest first
	`CREATE TABLE IF NOT EXISTS comment_ds (
		id_dataset text,
		id_comment timeuuid,
		comment text,
		username text,
		visible boolean,
		PRIMARY KEY ((id_dataset), id_comment)
	) WITH CLUSTERING ORDER BY (id_comment DESC)`,

	// Replies under a comment, oldest first
	`CREATE TABLE IF NOT EXISTS comment_reply (
		id_comment timeuuid,
		id_reply timeuuid,
		reply text,
		username text,
		visible boolean,
		PRIMARY KEY ((id_comment), id_reply)
	) WITH CLUSTERING ORDER BY (id_reply ASC)`,

	// Votes for a dataset, one row per voter. Re-voting overwrites.
	`CREATE TABLE IF NOT EXISTS dataset_vote (
		dataset_id text,
		user_id text,
		dataset_name text,
		dataset_description text,
		user_name text,
		calification int,
		PRIMARY KEY ((dataset_id), user_id)
	)`,

	// Reverse lookup: votes cast by a user
	`CREATE TABLE IF NOT EXISTS vote_by_user_ds (
		user_id text,
		dataset_id text,
		dataset_name text,
		dataset_description text,
		calification int,
		PRIMARY KEY ((user_id), dataset_id)
	)`,

	// Downloads for a dataset, at most one row per user
	`CREATE TABLE IF NOT EXISTS download_by_dataset (
		dataset_id text,
		user_id text,
		dataset_name text,
		dataset_description text,
		user_name text,
		PRIMARY KEY ((dataset_id), user_id)
	)`,

	// Canonical conversation row keyed by the participant pair
	`CREATE TABLE IF NOT EXISTS conversation (
		id_user_one text,
		id_user_two text,
		id_conversation timeuuid,
		user_one_name text,
		user_two_name text,
		PRIMARY KEY ((id_user_one), id_user_two)
	)`,

	// Per-participant conversation listing, newest first
	`CREATE TABLE IF NOT EXISTS conversation_by_user (
		id_user text,
		id_conversation timeuuid,
		id_other_user text,
		other_user_name text,
		PRIMARY KEY ((id_user), id_conversation)
	) WITH CLUSTERING ORDER BY (id_conversation DESC)`,

	// Messages in a conversation, chronological
	`CREATE TABLE IF NOT EXISTS message_by_conversation (
		id_conversation timeuuid,
		id_message timeuuid,
		id_user text,
		message text,
		PRIMARY KEY ((id_conversation), id_message)
	) WITH CLUSTERING ORDER BY (id_message ASC)`,
}

// Migrate creates every table the repositories expect. Safe to run
// repeatedly.
func Migrate(session *gocql.Session) error {
	for _, ddl := range tables {
		if err := session.Query(ddl).Exec(); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
