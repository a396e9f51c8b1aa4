package main

import (
	"os"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/flopp/go-findfont"

	font_changer "github.com/khiladisngh/Windows-Font-Changer"
	"github.com/khiladisngh/Windows-Font-Changer/global"
)

func init() {
	fontPaths := findfont.List()
	for _, path := range fontPaths {
		if strings.Contains(path, "segoeui.ttf") {
			os.Setenv("FYNE_FONT", path)
			break
		}
	}
}

func main() {
	defer os.Unsetenv("FYNE_FONT")
	defer global.Cleanup()
	a := app.New()

	g := font_changer.GetApp()
	g.LoadUI(a)
	go g.RunChanger()

	a.Run()
}
