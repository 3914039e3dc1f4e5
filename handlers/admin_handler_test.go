package handlers

import (
	"strings"
	"testing"
)

func TestGenerateCaptchaText(t *testing.T) {
	for i := 0; i < 200; i++ {
		text := generateCaptchaText()
		if len(text) != 6 {
			t.Fatalf("captcha length %d, want 6", len(text))
		}
		for _, r := range text {
			if !strings.ContainsRune(captchaChars, r) {
				t.Fatalf("captcha %q contains %q outside the alphabet", text, r)
			}
		}
	}
}

func TestGenerateCaptchaImageIsDataURL(t *testing.T) {
	img := generateCaptchaImage("AB23CD")
	if !strings.HasPrefix(img, "data:image/svg+xml;base64,") {
		t.Fatalf("unexpected prefix: %s", img[:40])
	}
}
