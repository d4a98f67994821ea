package cassandra

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"
)

// Config holds Cassandra connection settings
type Config struct {
	Hosts    []string
	Keyspace string
	Timeout  time.Duration
}

// NewSession connects to the cluster, creates the keyspace if it does not
// exist, and returns a session bound to it. The first connection is unbound
// because the keyspace may not exist yet.
func NewSession(cfg Config) (*gocql.Session, error) {
	if len(cfg.Hosts) == 0 {
		return nil, fmt.Errorf("cassandra: no hosts configured")
	}
	if cfg.Keyspace == "" {
		return nil, fmt.Errorf("cassandra: no keyspace configured")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	bootstrap := gocql.NewCluster(cfg.Hosts...)
	bootstrap.Timeout = cfg.Timeout
	bootstrap.Consistency = gocql.Quorum

	session, err := bootstrap.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cassandra: %w", err)
	}

	createKeyspace := fmt.Sprintf(`
		CREATE KEYSPACE IF NOT EXISTS %s
		WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}`,
		cfg.Keyspace)

	if err := session.Query(createKeyspace).Exec(); err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to create keyspace %s: %w", cfg.Keyspace, err)
	}
	session.Close()

	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Timeout = cfg.Timeout
	cluster.Consistency = gocql.Quorum

	bound, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to keyspace %s: %w", cfg.Keyspace, err)
	}

	return bound, nil
}
