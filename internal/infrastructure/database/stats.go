package database

import "fmt"

// PoolStats is a snapshot of the connection pool, exposed on the health
// endpoint for quick capacity checks.
type PoolStats struct {
	AcquiredConns int32 `json:"acquiredConns"`
	IdleConns     int32 `json:"idleConns"`
	TotalConns    int32 `json:"totalConns"`
	MaxConns      int32 `json:"maxConns"`
}

// Stats returns current pool utilization.
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns: raw.AcquiredConns(),
		IdleConns:     raw.IdleConns(),
		TotalConns:    raw.TotalConns(),
		MaxConns:      raw.MaxConns(),
	}, nil
}
