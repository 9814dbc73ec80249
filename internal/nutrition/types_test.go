package nutrition

import "testing"

func TestLocalizedText_Get(t *testing.T) {
	full := LocalizedText{LangEnglish: "Rice", LangBengali: "ভাত", LangHindi: "चावल", LangAssamese: "ভাত"}
	if got := full.Get(LangBengali); got != "ভাত" {
		t.Errorf("Get(bn) = %q, want ভাত", got)
	}

	enOnly := LocalizedText{LangEnglish: "Rice"}
	if got := enOnly.Get(LangHindi); got != "Rice" {
		t.Errorf("Get(hi) = %q, want English fallback", got)
	}

	bnOnly := LocalizedText{LangBengali: "ভাত"}
	if got := bnOnly.Get(LangHindi); got != "ভাত" {
		t.Errorf("Get(hi) = %q, want any-present fallback", got)
	}

	var empty LocalizedText
	if got := empty.Get(LangEnglish); got != "" {
		t.Errorf("Get on empty = %q, want empty string", got)
	}
}

func TestParseLang(t *testing.T) {
	for _, valid := range []string{"en", "bn", "hi", "as"} {
		if _, ok := ParseLang(valid); !ok {
			t.Errorf("ParseLang(%q) should be valid", valid)
		}
	}
	for _, invalid := range []string{"", "EN", "fr", "bengali"} {
		if _, ok := ParseLang(invalid); ok {
			t.Errorf("ParseLang(%q) should be invalid", invalid)
		}
	}
}

func TestRefusalAdvice_AllLanguages(t *testing.T) {
	advice := RefusalAdvice()
	for _, lang := range Languages() {
		if advice[lang] == "" {
			t.Errorf("Refusal advice missing %s", lang)
		}
	}
}
