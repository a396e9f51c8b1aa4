package enity

import "time"

const LocalClientConfKey = "local_client_conf"

// InitLocalClientSql seeds the config table on first run.
const InitLocalClientSql = `CREATE TABLE IF NOT EXISTS config (
	k TEXT PRIMARY KEY,
	v TEXT NOT NULL
); INSERT INTO config (k, v) VALUES (?, ?);`

// Config is a k/v row in the local sqlite db; the client conf lives here as
// serialized json.
type Config struct {
	K   string `gorm:"column:k;primaryKey"`
	Val string `gorm:"column:v"`
}

func (Config) TableName() string {
	return "config"
}

// BackupLog records every backup ever written. Rows are append-only and never
// pruned, so any past substitution state stays recoverable.
type BackupLog struct {
	ID        uint      `gorm:"primaryKey"`
	Path      string    `gorm:"column:path"`
	Font      string    `gorm:"column:font"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (BackupLog) TableName() string {
	return "backup_log"
}
