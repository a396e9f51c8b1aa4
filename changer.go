// Package font_changer wires the font-substitution manager to the GUI, the
// local backup history db and the release check.
package font_changer

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/khiladisngh/Windows-Font-Changer/conf"
	"github.com/khiladisngh/Windows-Font-Changer/global"
	"github.com/khiladisngh/Windows-Font-Changer/pkg/logger"
	"github.com/khiladisngh/Windows-Font-Changer/services/db/enity"
	"github.com/khiladisngh/Windows-Font-Changer/services/fontmgr"
)

type options struct {
	debug       bool
	checkUpdate bool
}

var defaultOpts = &options{
	debug:       false,
	checkUpdate: true,
}

// Changer is the application core behind the GUI and CLI: every operation is
// user-triggered, synchronous and routed through the manager's
// capture -> backup -> mutate transaction.
type Changer struct {
	opts  *options
	mgr   *fontmgr.Manager
	mu    sync.Mutex
	fonts []string
}

func NewChanger(opts ...ApplyOption) *Changer {
	o := *defaultOpts
	c := &Changer{opts: &o}
	if global.IsDevMode() {
		opts = append(opts, WithDebug())
	} else {
		opts = append(opts, WithProd())
	}
	opts = append(opts, WithUpdateCheck(global.Conf.Update.CheckOnStart))
	for _, fn := range opts {
		fn(c.opts)
	}
	c.mgr = fontmgr.New(fontmgr.NewSystemStore())
	return c
}

// Run performs the startup tasks: font enumeration for the picker and the
// optional release check. Results land in the GUI output pane.
func (c *Changer) Run() {
	g := errgroup.Group{}
	g.Go(func() error {
		fonts := fontmgr.ListAvailableFonts()
		c.mu.Lock()
		c.fonts = fonts
		c.mu.Unlock()
		if c.opts.debug {
			logger.Debug("startup",
				zap.Int("fonts", len(fonts)),
				zap.String("backupPath", c.mgr.BackupPath()))
		}
		Append(fmt.Sprintf("%s started, %d font families found", global.AppName, len(fonts)))
		return nil
	})
	if c.opts.checkUpdate {
		g.Go(func() error {
			if ok, url, _ := CheckUpdate(); ok {
				Append("a newer release is available: " + url)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Fonts returns the enumerated font families.
func (c *Changer) Fonts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fonts
}

// Current returns the live substitute for the managed logical name.
func (c *Changer) Current() (string, error) {
	return c.mgr.CurrentSubstitute()
}

// Apply sets the system font substitution, recording the backup the manager
// wrote along the way.
func (c *Changer) Apply(fontName string) error {
	prev, err := c.mgr.CurrentSubstitute()
	if err != nil {
		return err
	}
	if err := c.mgr.Apply(fontName); err != nil {
		logger.Error("apply failed", zap.String("font", fontName), zap.Error(err))
		return err
	}
	c.recordBackup(prev)
	logger.Info("font substitution applied", zap.String("font", fontName))
	return nil
}

// RestoreDefault removes the substitution so Windows renders its stock font.
func (c *Changer) RestoreDefault() error {
	prev, err := c.mgr.CurrentSubstitute()
	if err != nil {
		return err
	}
	if err := c.mgr.RestoreDefault(); err != nil {
		logger.Error("restore default failed", zap.Error(err))
		return err
	}
	c.recordBackup(prev)
	logger.Info("default font restored")
	return nil
}

// BackupNow captures and persists the current state without mutating it.
func (c *Changer) BackupNow() (*fontmgr.BackupRecord, error) {
	snap, err := c.mgr.CaptureSnapshot()
	if err != nil {
		return nil, err
	}
	rec, err := c.mgr.Backup(snap)
	if err != nil {
		return nil, err
	}
	sub, _ := snap.Substitute(fontmgr.DefaultFont)
	c.recordBackup(sub)
	return rec, nil
}

// RestoreBackup replays the snapshot in the fixed backup file.
func (c *Changer) RestoreBackup() error {
	rec, err := c.mgr.LoadBackup()
	if err != nil {
		return err
	}
	return c.mgr.Restore(rec.Snapshot)
}

// Export writes the current state as a .reg script into the configured export
// directory and returns the written path.
func (c *Changer) Export() (string, error) {
	snap, err := c.mgr.CaptureSnapshot()
	if err != nil {
		return "", err
	}
	clientCfg := global.GetClientConf()
	path := filepath.Join(clientCfg.ExportDir,
		fmt.Sprintf("font_substitution_%s.reg", time.Now().Format("20060102_150405")))
	if err := c.mgr.ExportToScript(snap, path); err != nil {
		return "", err
	}
	if clientCfg.CopyScriptToClipboard {
		_ = clipboard.WriteAll(fontmgr.ScriptText(snap))
	}
	return path, nil
}

// UpdateClientConf validates and persists the client conf to the local db.
func (c *Changer) UpdateClientConf(cfg *conf.Client) error {
	if err := conf.ValidClientConf(cfg); err != nil {
		return errors.Wrap(err, "client conf")
	}
	if global.SqliteDB == nil {
		return errors.New("local db not initialized")
	}
	bts, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	err = global.SqliteDB.Table("config").
		Where("k = ?", enity.LocalClientConfKey).
		Update("v", string(bts)).Error
	if err != nil {
		return err
	}
	global.SetClientConf(cfg)
	return nil
}

func (c *Changer) recordBackup(font string) {
	if global.SqliteDB == nil {
		return
	}
	row := &enity.BackupLog{
		Path:      c.mgr.BackupPath(),
		Font:      font,
		CreatedAt: time.Now(),
	}
	if err := global.SqliteDB.Create(row).Error; err != nil {
		logger.Warn("recording backup", zap.Error(err))
	}
}

// FriendlyError maps the error taxonomy to messages fit for the output pane.
func FriendlyError(err error) string {
	switch {
	case errors.Is(err, fontmgr.ErrAccessDenied):
		return "Permission denied. Please run as administrator."
	case errors.Is(err, fontmgr.ErrInvalidFontName):
		return err.Error()
	case errors.Is(err, fontmgr.ErrUnsupportedPlatform):
		return "This application only works on Windows."
	default:
		return err.Error()
	}
}
