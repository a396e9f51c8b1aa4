package global

import (
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/khiladisngh/Windows-Font-Changer/conf"
)

const (
	AppName = "Windows Font Changer"

	envDev  = "dev"
	envProd = "prod"
)

var (
	Conf       = &conf.AppConf{}
	ClientConf = &conf.Client{}
	Logger     *zap.SugaredLogger
	SqliteDB   *gorm.DB

	Cleanups = make(map[string]func() error)

	confMu sync.Mutex
)

var DefaultAppConf = conf.AppConf{
	Mode: envProd,
	Log: conf.LogConf{
		Level:      "info",
		Filepath:   "font_changer.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	},
	Update: conf.UpdateConf{CheckOnStart: true},
}

var DefaultClientConf = conf.Client{
	PreferredFont:         "",
	ExportDir:             ".",
	CopyScriptToClipboard: true,
}

type AppInfo struct {
	Version   string
	Commit    string
	BuildUser string
	BuildTime string
}

var AppBuildInfo = AppInfo{}

func SetAppInfo(info AppInfo) {
	AppBuildInfo = info
}

func IsDevMode() bool {
	return GetEnv() == envDev
}

func GetEnv() string {
	if Conf.Mode == envDev {
		return envDev
	}
	return envProd
}

func GetClientConf() *conf.Client {
	confMu.Lock()
	defer confMu.Unlock()
	return ClientConf
}

func SetClientConf(c *conf.Client) {
	confMu.Lock()
	ClientConf = c
	confMu.Unlock()
}

func Cleanup() {
	for name, fn := range Cleanups {
		if err := fn(); err != nil && Logger != nil {
			Logger.Warnf("cleanup %s: %v", name, err)
		}
	}
}
