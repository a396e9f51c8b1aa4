package bootstrap

import (
	"encoding/json"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/configor"
	"github.com/jinzhu/now"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/khiladisngh/Windows-Font-Changer/conf"
	"github.com/khiladisngh/Windows-Font-Changer/global"
	"github.com/khiladisngh/Windows-Font-Changer/pkg/logger"
	"github.com/khiladisngh/Windows-Font-Changer/pkg/tool"
	"github.com/khiladisngh/Windows-Font-Changer/pkg/windows/admin"
	"github.com/khiladisngh/Windows-Font-Changer/services/db/enity"
)

// InitApp prepares everything the GUI needs: elevation, config, local db,
// logging and optional sentry. Panics on unrecoverable init failure.
func InitApp() {
	admin.MustRunWithAdmin()
	initConf()
	initLog(&global.Conf.Log)
	initLib()
}

func initConf() {
	_ = godotenv.Load(".env")
	if tool.IsFile(".env.local") {
		_ = godotenv.Overload(".env.local")
	}

	*global.Conf = global.DefaultAppConf
	if err := configor.Load(global.Conf); err != nil {
		panic(err)
	}
	if err := initClientConf(); err != nil {
		panic(err)
	}
}

func initClientConf() (err error) {
	dbPath := conf.SqliteDBPath
	var db *gorm.DB
	dbLogger := gormLogger.Discard
	if global.IsDevMode() {
		dbLogger = gormLogger.Default
	}
	gormCfg := &gorm.Config{Logger: dbLogger}
	if !tool.IsFile(dbPath) {
		db, err = gorm.Open(sqlite.Open(dbPath), gormCfg)
		if err != nil {
			return
		}
		bts, _ := json.Marshal(global.DefaultClientConf)
		err = db.Exec(enity.InitLocalClientSql, enity.LocalClientConfKey, string(bts)).Error
		if err != nil {
			return
		}
		*global.ClientConf = global.DefaultClientConf
	} else {
		db, err = gorm.Open(sqlite.Open(dbPath), gormCfg)
		if err != nil {
			return
		}
		confItem := &enity.Config{}
		err = db.Table("config").Where("k = ?", enity.LocalClientConfKey).First(confItem).Error
		if err != nil {
			return
		}
		localClientConf := &conf.Client{}
		err = json.Unmarshal([]byte(confItem.Val), localClientConf)
		if err != nil || conf.ValidClientConf(localClientConf) != nil {
			return errors.New("local client conf is corrupt")
		}
		global.SetClientConf(localClientConf)
	}
	if err = db.AutoMigrate(&enity.BackupLog{}); err != nil {
		return
	}
	global.SqliteDB = db
	return nil
}

func initLog(cfg *conf.LogConf) {
	writeSyncer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filepath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		LocalTime:  true,
	})
	if global.IsDevMode() {
		writeSyncer = zapcore.AddSync(os.Stdout)
	}
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncodeDuration = zapcore.StringDurationEncoder
	level, err := logger.Str2ZapLevel(cfg.Level)
	if err != nil {
		panic("zap level is incorrect")
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(config),
		writeSyncer,
		zap.NewAtomicLevelAt(level),
	)
	global.Logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func initLib() {
	now.WeekStartDay = time.Monday
	if global.Conf.Sentry.Enabled {
		if err := initSentry(global.Conf.Sentry.Dsn); err != nil {
			global.Logger.Warnf("sentry init failed: %v", err)
		}
	}
}

func initSentry(dsn string) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Debug:       global.IsDevMode(),
		SampleRate:  1.0,
		Environment: global.GetEnv(),
	})
	if err == nil {
		global.Cleanups["sentryFlush"] = func() error {
			sentry.Flush(2 * time.Second)
			return nil
		}
		sentry.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetContext("app", map[string]interface{}{
				"version": global.AppBuildInfo.Version,
				"commit":  global.AppBuildInfo.Commit,
			})
		})
	}
	return err
}
