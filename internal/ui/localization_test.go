package ui

import "testing"

func TestLocalization_DefaultsToSpanish(t *testing.T) {
	l := NewLocalization()

	if got := l.GetCurrentLanguage(); got != "es" {
		t.Fatalf("expected es, got %s", got)
	}
	if got := l.GetText(KeyDownloadCompleted); got != "¡Descarga completada con éxito!" {
		t.Errorf("unexpected completion text %q", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "en"},
		{"system", "es"},
		{"", "es"},
		{"ru", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.GetCurrentLanguage(); got != tt.want {
				t.Errorf("SetLanguage(%q) => %s, want %s", tt.lang, got, tt.want)
			}
		})
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	if got := l.Format(KeyPastePromptFor, "TikTok"); got != "2. Pega la URL de TikTok aquí:" {
		t.Errorf("unexpected prompt %q", got)
	}
	if got := l.Format(KeyProgress, "50.0%"); got != "Descargando... 50.0%" {
		t.Errorf("unexpected progress %q", got)
	}
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()
	for lang, texts := range l.texts {
		for key := range l.texts[DefaultLanguage] {
			if _, ok := texts[key]; !ok {
				t.Errorf("language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_UnknownKey(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("nope"); got != "nope" {
		t.Errorf("expected key fallback, got %q", got)
	}
}
