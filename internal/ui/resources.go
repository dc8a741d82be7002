package ui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// AppIcon is the icon file shipped next to the executable.
const AppIcon = "media-downloader.png"

// LoadLogoResource loads the icon from the working directory, then from the
// executable's directory.
func LoadLogoResource() (fyne.Resource, error) {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err == nil {
		return res, nil
	}
	exe, exeErr := os.Executable()
	if exeErr != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(filepath.Join(filepath.Dir(exe), AppIcon))
}
