package service

import "github.com/campusassist/campus-assist/internal/model"

// suggestionTemplates maps language and intent to follow-up questions.
var suggestionTemplates = map[string]map[string][]string{
	"en": {
		"fees":        {"What are the fee payment methods?", "When is the fee deadline?", "Can I pay fees in installments?"},
		"scholarship": {"What documents are required for scholarship?", "When do scholarship applications open?", "Am I eligible for scholarship?"},
		"timetable":   {"Where can I download the timetable?", "Are there any schedule changes?", "What are the exam timings?"},
		"admission":   {"What is the admission process?", "What documents are needed?", "When do admissions close?"},
		"exam":        {"Where can I check my results?", "What is the exam schedule?", "How to apply for revaluation?"},
		"hostel":      {"How to apply for hostel accommodation?", "What are the hostel fees?", "What facilities are available?"},
		"library":     {"What are the library timings?", "How to renew books online?", "What databases are available?"},
	},
	"hi": {
		"fees":        {"फीस भुगतान के तरीके क्या हैं?", "फीस की अंतिम तारीख कब है?", "क्या मैं किस्तों में फीस दे सकता हूं?"},
		"scholarship": {"छात्रवृत्ति के लिए कौन से दस्तावेज चाहिए?", "छात्रवृत्ति आवेदन कब खुलते हैं?", "क्या मैं छात्रवृत्ति के लिए योग्य हूं?"},
		"timetable":   {"समय सारणी कहां से डाउनलोड करें?", "क्या कोई शेड्यूल में बदलाव है?", "परीक्षा का समय क्या है?"},
		"admission":   {"प्रवेश प्रक्रिया क्या है?", "कौन से दस्तावेज चाहिए?", "प्रवेश कब बंद होते हैं?"},
		"exam":        {"मैं अपना परिणाम कहां देख सकता हूं?", "परीक्षा का शेड्यूल क्या है?", "पुनर्मूल्यांकन के लिए कैसे आवेदन करें?"},
		"hostel":      {"छात्रावास के लिए कैसे आवेदन करें?", "छात्रावास की फीस क्या है?", "कौन सी सुविधाएं उपलब्ध हैं?"},
		"library":     {"पुस्तकालय का समय क्या है?", "ऑनलाइन किताबें कैसे नवीकृत करें?", "कौन से डेटाबेस उपलब्ध हैं?"},
	},
}

// genericSuggestions are offered when an intent has no dedicated follow-ups.
var genericSuggestions = map[string][]string{
	"en": {"I need more information", "Talk to a human", "Thank you"},
	"hi": {"मुझे और जानकारी चाहिए", "किसी व्यक्ति से बात करना चाहते हैं", "धन्यवाद"},
}

// suggestionsFor resolves follow-ups: the language's table (English when the
// language has none), then the intent entry, then generic suggestions in the
// language or in English.
func suggestionsFor(intent, lang string) []string {
	templates, ok := suggestionTemplates[lang]
	if !ok {
		templates = suggestionTemplates[model.WorkingLanguage]
	}
	if s, ok := templates[intent]; ok {
		return append([]string(nil), s...)
	}
	if s, ok := genericSuggestions[lang]; ok {
		return append([]string(nil), s...)
	}
	return append([]string(nil), genericSuggestions[model.WorkingLanguage]...)
}
