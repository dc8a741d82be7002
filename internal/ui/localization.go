package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// DefaultLanguage is used for "system" and for unknown languages.
const DefaultLanguage = "es"

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyChoosePlatform    = "choose_platform"
	KeyPastePrompt       = "paste_prompt"
	KeyPastePromptFor    = "paste_prompt_for"
	KeyURLPlaceholder    = "url_placeholder"
	KeyDownload          = "download"
	KeyDownloading       = "downloading"
	KeyWelcome           = "welcome"
	KeyPlatformSelected  = "platform_selected"
	KeyStarting          = "starting"
	KeyProgress          = "progress"
	KeyDownloadCompleted = "download_completed"
	KeyErrorPrefix       = "error_prefix"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyLanguage          = "language"
	KeyFile              = "file"
	KeyChooseFolder      = "choose_folder"
	KeyAutoReveal        = "auto_reveal"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		lang = DefaultLanguage
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns the localized text for key with args substituted.
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns the languages with translations
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["es"] = map[string]string{
		KeyAppTitle:          "Descargador de Videos Premium",
		KeyChoosePlatform:    "1. Selecciona una plataforma:",
		KeyPastePrompt:       "2. Pega la URL del video aquí:",
		KeyPastePromptFor:    "2. Pega la URL de %s aquí:",
		KeyURLPlaceholder:    "https://...",
		KeyDownload:          "Descargar Video",
		KeyDownloading:       "Descargando...",
		KeyWelcome:           "Bienvenido. Selecciona una plataforma para comenzar.",
		KeyPlatformSelected:  "Plataforma seleccionada: %s. Listo para descargar.",
		KeyStarting:          "Iniciando descarga...",
		KeyProgress:          "Descargando... %s",
		KeyDownloadCompleted: "¡Descarga completada con éxito!",
		KeyErrorPrefix:       "Error: %s",
		KeyPleaseEnterURL:    "Por favor, introduce una URL.",
		KeyErrorOpeningFile:  "Error al abrir el archivo",
		KeyLanguage:          "Idioma",
		KeyFile:              "Archivo",
		KeyChooseFolder:      "Carpeta de descargas...",
		KeyAutoReveal:        "Mostrar archivo al terminar",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Premium Video Downloader",
		KeyChoosePlatform:    "1. Choose a platform:",
		KeyPastePrompt:       "2. Paste the video URL here:",
		KeyPastePromptFor:    "2. Paste the %s URL here:",
		KeyURLPlaceholder:    "https://...",
		KeyDownload:          "Download Video",
		KeyDownloading:       "Downloading...",
		KeyWelcome:           "Welcome. Choose a platform to get started.",
		KeyPlatformSelected:  "Selected platform: %s. Ready to download.",
		KeyStarting:          "Starting download...",
		KeyProgress:          "Downloading... %s",
		KeyDownloadCompleted: "Download completed successfully!",
		KeyErrorPrefix:       "Error: %s",
		KeyPleaseEnterURL:    "Please enter a URL.",
		KeyErrorOpeningFile:  "Error opening file",
		KeyLanguage:          "Language",
		KeyFile:              "File",
		KeyChooseFolder:      "Download folder...",
		KeyAutoReveal:        "Reveal file when done",
	}
}
