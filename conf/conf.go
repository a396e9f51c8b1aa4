package conf

import "github.com/go-playground/validator/v10"

const (
	SqliteDBPath = "font_changer.db"
)

// AppConf is process-level configuration loaded from env/.env via configor.
type AppConf struct {
	Mode   string     `json:"mode" default:"prod" env:"FONT_CHANGER_MODE"`
	Log    LogConf    `json:"log"`
	Sentry SentryConf `json:"sentry"`
	Update UpdateConf `json:"update"`
}

type LogConf struct {
	Level      string `json:"level" default:"info" env:"FONT_CHANGER_LOG_LEVEL"`
	Filepath   string `json:"filepath" default:"font_changer.log"`
	MaxSize    int    `json:"maxSize" default:"10"`
	MaxBackups int    `json:"maxBackups" default:"3"`
	MaxAge     int    `json:"maxAge" default:"28"`
	Compress   bool   `json:"compress" default:"true"`
}

type SentryConf struct {
	Enabled bool   `json:"enabled" default:"false"`
	Dsn     string `json:"dsn" env:"FONT_CHANGER_SENTRY_DSN"`
}

type UpdateConf struct {
	CheckOnStart bool `json:"checkOnStart" default:"true"`
}

// Client is the user-scoped configuration persisted in the local sqlite db.
type Client struct {
	PreferredFont         string `json:"preferredFont"`
	ExportDir             string `json:"exportDir" validate:"required"`
	CopyScriptToClipboard bool   `json:"copyScriptToClipboard"`
}

var validate = validator.New()

// ValidClientConf reports whether a client conf loaded from the local db is
// usable.
func ValidClientConf(c *Client) error {
	return validate.Struct(c)
}
