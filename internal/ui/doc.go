// Package ui contains the Fyne desktop window. Presenter holds the
// presentation state and reacts to download lifecycle callbacks; RootUI
// renders it with widgets. All UI strings are localized via Localization.
package ui
