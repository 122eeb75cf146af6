package model

// WorkingLanguage is the canonical language used for retrieval and as the
// universal fallback for every language-keyed table.
const WorkingLanguage = "en"

// Language describes one supported conversation language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// SupportedLanguages is the single source of truth for the languages the
// assistant understands and answers in.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు"},
}

// IsSupportedLanguage reports whether code is in SupportedLanguages.
func IsSupportedLanguage(code string) bool {
	_, ok := LookupLanguage(code)
	return ok
}

// LookupLanguage returns the table entry for code.
func LookupLanguage(code string) (Language, bool) {
	for _, lang := range SupportedLanguages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}

// LanguageCodes returns the codes of SupportedLanguages in table order.
func LanguageCodes() []string {
	codes := make([]string, len(SupportedLanguages))
	for i, lang := range SupportedLanguages {
		codes[i] = lang.Code
	}
	return codes
}
