package tmdb

import "github.com/davltran/cinequiz/internal/model"

// curatedLanguages is the selector-friendly subset of what TMDB can localize
// titles into. Kept hardcoded so the selector stays usable regardless of the
// live configuration response.
func curatedLanguages() []model.Language {
	return []model.Language{
		{Code: "en", EnglishName: "English", NativeName: "English"},
		{Code: "es", EnglishName: "Spanish", NativeName: "Español"},
		{Code: "fr", EnglishName: "French", NativeName: "Français"},
		{Code: "de", EnglishName: "German", NativeName: "Deutsch"},
		{Code: "it", EnglishName: "Italian", NativeName: "Italiano"},
		{Code: "pt", EnglishName: "Portuguese", NativeName: "Português"},
		{Code: "ru", EnglishName: "Russian", NativeName: "Pусский"},
		{Code: "ja", EnglishName: "Japanese", NativeName: "日本語"},
		{Code: "ko", EnglishName: "Korean", NativeName: "한국어"},
		{Code: "zh", EnglishName: "Chinese", NativeName: "中文"},
		{Code: "hi", EnglishName: "Hindi", NativeName: "हिन्दी"},
		{Code: "ar", EnglishName: "Arabic", NativeName: "العربية"},
	}
}

func fallbackLanguages() []model.Language {
	return []model.Language{
		{Code: "en", EnglishName: "English", NativeName: "English"},
	}
}
