package font_changer

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/khiladisngh/Windows-Font-Changer/bootstrap"
	"github.com/khiladisngh/Windows-Font-Changer/conf"
	"github.com/khiladisngh/Windows-Font-Changer/global"
)

const (
	layout     = "2006-01-02 15:04:05"
	sampleText = "The quick brown fox jumps over the lazy dog 0123456789"
)

var (
	fc   *gui
	once sync.Once
)

type gui struct {
	output       *widget.Entry
	fontSelect   *widget.Select
	currentLabel *widget.Label
	conf         *conf.Client
	window       fyne.Window
	c            *Changer

	selectedFont string
}

func (g *gui) RunChanger() {
	g.c.Run()
	if fonts := g.c.Fonts(); len(fonts) > 0 {
		g.fontSelect.Options = fonts
		g.fontSelect.Refresh()
	}
	g.refreshCurrent()
}

func (g *gui) LoadUI(app fyne.App) {
	g.output = widget.NewMultiLineEntry()
	g.output.TextStyle.Monospace = true

	w := app.NewWindow(global.AppName)
	g.window = w

	g.currentLabel = widget.NewLabel("current substitute: unknown")
	preview := widget.NewLabel(sampleText)

	g.fontSelect = widget.NewSelect(g.c.Fonts(), func(s string) {
		g.selectedFont = s
		preview.SetText(fmt.Sprintf("%s — %s", s, sampleText))
	})
	if g.conf.PreferredFont != "" {
		g.fontSelect.SetSelected(g.conf.PreferredFont)
	}

	actions := container.NewGridWithColumns(5,
		widget.NewButton("Apply", func() {
			g.apply()
		}),
		widget.NewButton("Restore Default", func() {
			g.restoreDefault()
		}),
		widget.NewButton("Backup Now", func() {
			g.backupNow()
		}),
		widget.NewButton("Restore Backup", func() {
			g.restoreBackup()
		}),
		widget.NewButton("Export .REG", func() {
			g.export()
		}),
	)

	exportDir := binding.BindString(&g.conf.ExportDir)
	confBox := container.NewGridWithColumns(3,
		container.NewHBox(
			widget.NewCheckWithData("Copy exported script to clipboard", binding.BindBool(&g.conf.CopyScriptToClipboard)),
		),
		container.NewHBox(
			widget.NewLabel("Export directory"),
			newBindEntry(exportDir),
		),
		container.NewHBox(
			widget.NewButton("Save settings", func() {
				g.update()
			}),
			widget.NewButton("Clear log", func() {
				display("")
			}),
		),
	)

	box := container.NewGridWithColumns(1,
		container.NewGridWithRows(4,
			container.NewGridWithRows(2, g.currentLabel, preview),
			container.NewGridWithRows(2, widget.NewLabel("Pick a font"), g.fontSelect),
			container.NewGridWithRows(2, widget.NewLabel("Settings"), confBox),
			actions,
		),
		container.NewScroll(g.output))

	w.SetContent(box)
	w.Resize(resize(900, 600))
	w.Show()
}

func newBindEntry(data binding.String) *widget.Entry {
	entry := widget.NewEntry()
	entry.Bind(data)
	return entry
}

func (g *gui) apply() {
	if g.selectedFont == "" {
		Append("pick a font first")
		return
	}
	if err := g.c.Apply(g.selectedFont); err != nil {
		Append(FriendlyError(err))
		return
	}
	g.conf.PreferredFont = g.selectedFont
	g.refreshCurrent()
	Append(fmt.Sprintf("Font changed to %s. Please restart Windows to apply changes.", g.selectedFont))
}

func (g *gui) restoreDefault() {
	if err := g.c.RestoreDefault(); err != nil {
		Append(FriendlyError(err))
		return
	}
	g.refreshCurrent()
	Append("Default font restored. Please restart Windows to apply changes.")
}

func (g *gui) backupNow() {
	rec, err := g.c.BackupNow()
	if err != nil {
		Append(FriendlyError(err))
		return
	}
	Append("backup written to " + rec.Path)
}

func (g *gui) restoreBackup() {
	if err := g.c.RestoreBackup(); err != nil {
		Append(FriendlyError(err))
		return
	}
	g.refreshCurrent()
	Append("backup restored. Please restart Windows to apply changes.")
}

func (g *gui) export() {
	path, err := g.c.Export()
	if err != nil {
		Append(FriendlyError(err))
		return
	}
	msg := "registry script exported to " + path
	if g.conf.CopyScriptToClipboard {
		msg += " (copied to clipboard)"
	}
	Append(msg)
}

func (g *gui) update() {
	if err := g.c.UpdateClientConf(g.conf); err != nil {
		Append("saving settings failed", err)
		return
	}
	Append("settings saved")
}

func (g *gui) refreshCurrent() {
	cur, err := g.c.Current()
	if err != nil {
		g.currentLabel.SetText("current substitute: unavailable")
		return
	}
	g.currentLabel.SetText("current substitute: " + cur)
}

func display(newtext string) {
	GetApp().output.SetText(newtext)
}

func Append(newtext ...interface{}) {
	original := GetApp().output.Text
	text := fmt.Sprint(newtext)
	text = text[1 : len(text)-1]
	GetApp().output.SetText(original + fmt.Sprintf("%s : %s\n", time.Now().Format(layout), text))
}

func resize(w float32, h float32) fyne.Size {
	return fyne.NewSize(w, h)
}

func newApp() *gui {
	bootstrap.InitApp()
	changer := NewChanger()
	return &gui{
		conf: global.GetClientConf(),
		c:    changer,
	}
}

func GetApp() *gui {
	once.Do(func() {
		fc = newApp()
	})
	return fc
}
