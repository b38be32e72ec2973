package i18n

import "testing"

func TestLookup(t *testing.T) {
	if got := T("en")["nav_home"]; got != "Home" {
		t.Fatalf(`T("en")["nav_home"] = %q, want "Home"`, got)
	}
	if got := T("ru")["nav_home"]; got != "Главная" {
		t.Fatalf(`T("ru")["nav_home"] = %q, want "Главная"`, got)
	}
}

func TestFallbackToEnglish(t *testing.T) {
	if got := T("de")["nav_home"]; got != "Home" {
		t.Fatalf("unsupported language must fall back to English, got %q", got)
	}
}

func TestSupported(t *testing.T) {
	cases := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"ru", true},
		{"de", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Supported(tc.lang); got != tc.expected {
			t.Fatalf("Supported(%q) = %v, want %v", tc.lang, got, tc.expected)
		}
	}
}

func TestTablesCoverSameKeys(t *testing.T) {
	en, ru := T("en"), T("ru")
	for key := range en {
		if _, ok := ru[key]; !ok {
			t.Fatalf("ru table is missing key %q", key)
		}
	}
	for key := range ru {
		if _, ok := en[key]; !ok {
			t.Fatalf("en table is missing key %q", key)
		}
	}
}
