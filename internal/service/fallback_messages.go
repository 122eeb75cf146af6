package service

import "github.com/campusassist/campus-assist/internal/model"

// fallbackDefaultKey selects the generic escalation message of a language.
const fallbackDefaultKey = "default"

// fallbackMessages holds the templated answers of the fallback tier, keyed by
// language and then by intent.
var fallbackMessages = map[string]map[string]string{
	"en": {
		"default":     "I couldn't find a specific answer to your question. Let me connect you with our support team who can help you better. You can also call our helpline at +91-XXX-XXXXXXX or email at support@college.edu",
		"greeting":    "Hello! I'm here to help you with your campus-related queries. What would you like to know about?",
		"fees":        "For specific fee information, please contact the accounts office at accounts@college.edu or visit the admin building during office hours (9 AM - 5 PM).",
		"scholarship": "For scholarship queries, please visit the student welfare office or check our scholarship portal at portal.college.edu/scholarships",
		"timetable":   "For the latest timetable, please check the academic portal or contact your department office.",
		"admission":   "For admission information, please visit the admission office or check our website at college.edu/admissions",
		"exam":        "For exam schedules and results, please check the academic portal or contact the examination cell.",
		"hostel":      "For hostel accommodation, please contact the hostel office at hostel@college.edu or visit the hostel administration.",
		"library":     "For library services, please visit the library or contact them at library@college.edu",
	},
	"hi": {
		"default":     "मुझे आपके प्रश्न का विशिष्ट उत्तर नहीं मिला। आइए मैं आपको हमारी सहायता टीम से जोड़ता हूं जो आपकी बेहतर सहायता कर सकती है। आप हमारी हेल्पलाइन +91-XXX-XXXXXXX पर कॉल कर सकते हैं या support@college.edu पर ईमेल कर सकते हैं।",
		"greeting":    "नमस्ते! मैं आपके कैंपस संबंधी प्रश्नों में सहायता के लिए यहाँ हूँ। आप क्या जानना चाहते हैं?",
		"fees":        "फीस की विशिष्ट जानकारी के लिए, कृपया accounts@college.edu पर संपर्क करें या कार्यालयीन समय (सुबह 9 से शाम 5 बजे) में प्रशासन भवन में जाएं।",
		"scholarship": "छात्रवृत्ति संबंधी प्रश्नों के लिए, कृपया छात्र कल्याण कार्यालय में जाएं या हमारे छात्रवृत्ति पोर्टल portal.college.edu/scholarships की जांच करें।",
		"timetable":   "नवीनतम समय सारणी के लिए, कृपया शैक्षणिक पोर्टल की जांच करें या अपने विभाग कार्यालय से संपर्क करें।",
		"admission":   "प्रवेश की जानकारी के लिए, कृपया प्रवेश कार्यालय में जाएं या हमारी वेबसाइट college.edu/admissions देखें।",
		"exam":        "परीक्षा कार्यक्रम और परिणामों के लिए, कृपया शैक्षणिक पोर्टल की जांच करें या परीक्षा सेल से संपर्क करें।",
		"hostel":      "छात्रावास आवास के लिए, कृपया hostel@college.edu पर छात्रावास कार्यालय से संपर्क करें या छात्रावास प्रशासन में जाएं।",
		"library":     "पुस्तकालय सेवाओं के लिए, कृपया पुस्तकालय में जाएं या library@college.edu पर संपर्क करें।",
	},
	"mr": {
		"default":     "मला तुमच्या प्रश्नाचे विशिष्ट उत्तर सापडले नाही. मी तुम्हाला आमच्या सहाय्य संघाशी जोडतो जे तुम्हाला चांगली मदत करू शकतात. तुम्ही आमच्या हेल्पलाइनवर +91-XXX-XXXXXXX कॉल करू शकता किंवा support@college.edu वर ईमेल करू शकता.",
		"greeting":    "नमस्कार! मी तुमच्या कॅम्पस संबंधित प्रश्नांमध्ये मदत करण्यासाठी येथे आहे. तुम्हाला काय जाणून घ्यायचे आहे?",
		"fees":        "शुल्काच्या विशिष्ट माहितीसाठी, कृपया accounts@college.edu वर संपर्क साधा किंवा कार्यालयीन वेळेत (सकाळी 9 ते संध्याकाळी 5) प्रशासन इमारतीत जा.",
		"scholarship": "शिष्यवृत्ती संबंधी प्रश्नांसाठी, कृपया विद्यार्थी कल्याण कार्यालयात जा किंवा आमचे शिष्यवृत्ती पोर्टल portal.college.edu/scholarships तपासा.",
		"timetable":   "नवीनतम वेळापत्रकासाठी, कृपया शैक्षणिक पोर्टल तपासा किंवा तुमच्या विभागाच्या कार्यालयाशी संपर्क साधा.",
		"admission":   "प्रवेशाच्या माहितीसाठी, कृपया प्रवेश कार्यालयात जा किंवा आमची वेबसाइट college.edu/admissions पहा.",
		"exam":        "परीक्षा वेळापत्रक आणि निकालांसाठी, कृपया शैक्षणिक पोर्टल तपासा किंवा परीक्षा सेलशी संपर्क साधा.",
		"hostel":      "वसतिगृह निवासासाठी, कृपया hostel@college.edu वर वसतिगृह कार्यालयाशी संपर्क साधा किंवा वसतिगृह प्रशासनात जा.",
		"library":     "वाचनालय सेवांसाठी, कृपया वाचनालयात जा किंवा library@college.edu वर संपर्क साधा.",
	},
	"ta": {
		"default":     "உங்கள் கேள்விக்கு குறிப்பிட்ட பதில் கிடைக்கவில்லை. எங்கள் ஆதரவு குழுவுடன் உங்களை இணைக்கிறேன், அவர்கள் உங்களுக்கு சிறந்த உதவி செய்ய முடியும். நீங்கள் எங்கள் உதவி எண் +91-XXX-XXXXXXX-ல் அழைக்கலாம் அல்லது support@college.edu-க்கு மின்னஞ்சல் அனுப்பலாம்.",
		"greeting":    "வணக்கம்! உங்கள் கல்லூரி தொடர்பான கேள்விகளுக்கு உதவ நான் இங்கே இருக்கிறேன். நீங்கள் என்ன தெரிந்துகொள்ள விரும்புகிறீர்கள்?",
		"fees":        "கட்டணம் பற்றிய குறிப்பிட்ட தகவலுக்கு, accounts@college.edu-ல் தொடர்பு கொள்ளுங்கள் அல்லது அலுவலக நேரத்தில் (காலை 9 முதல் மாலை 5 வரை) நிர்வாக கட்டடத்திற்கு செல்லுங்கள்.",
		"scholarship": "உதவித்தொகை கேள்விகளுக்கு, மாணவர் நல அலுவலகத்திற்கு செல்லுங்கள் அல்லது எங்கள் உதவித்தொகை போர்ட்டல் portal.college.edu/scholarships-ஐ சரிபார்க்கவும்.",
		"timetable":   "சமீபத்திய நேர அட்டவணைக்கு, கல்வி போர்ட்டலை சரிபார்க்கவும் அல்லது உங்கள் துறை அலுவலகத்தை தொடர்பு கொள்ளுங்கள்.",
		"admission":   "சேர்க்கை தகவலுக்கு, சேர்க்கை அலுவலகத்திற்கு செல்லுங்கள் அல்லது எங்கள் வலைத்தளம் college.edu/admissions-ஐ பார்க்கவும்.",
		"exam":        "தேர்வு அட்டவணை மற்றும் முடிவுகளுக்கு, கல்வி போர்ட்டலை சரிபார்க்கவும் அல்லது தேர்வுப் பிரிவை தொடர்பு கொள்ளுங்கள்.",
		"hostel":      "விடுதி தங்குமிடத்திற்கு, hostel@college.edu-ல் விடுதி அலுவலகத்தை தொடர்பு கொள்ளுங்கள் அல்லது விடுதி நிர்வாகத்திற்கு செல்லுங்கள்.",
		"library":     "நூலக சேவைகளுக்கு, நூலகத்திற்கு செல்லுங்கள் அல்லது library@college.edu-ல் தொடர்பு கொள்ளுங்கள்.",
	},
	"te": {
		"default":     "మీ ప్రశ్నకు నిర్దిష్ట సమాధానం దొరకలేదు. మీకు మెరుగైన సహాయం చేయగల మా సపోర్ట్ టీమ్‌తో మిమ్మల్ని కనెక్ట్ చేస్తున్నాను. మీరు మా హెల్ప్‌లైన్ +91-XXX-XXXXXXX కు కాల్ చేయవచ్చు లేదా support@college.edu కు ఇమెయిల్ చేయవచ్చు.",
		"greeting":    "నమస్కారం! మీ క్యాంపస్ సంబంధిత ప్రశ్నలకు సహాయం చేయడానికి నేను ఇక్కడ ఉన్నాను. మీరు ఏమి తెలుసుకోవాలని అనుకుంటున్నారు?",
		"fees":        "ఫీజుల నిర్దిష్ట సమాచారం కోసం, accounts@college.edu కు సంప్రదించండి లేదా కార్యాలయ వేళలలో (ఉదయం 9 నుండి సాయంత్రం 5 వరకు) అడ్మిన్ భవనానికి వెళ్లండి.",
		"scholarship": "స్కాలర్‌షిప్ ప్రశ్నల కోసం, విద్యార్థి సంక్షేమ కార్యాలయానికి వెళ్లండి లేదా మా స్కాలర్‌షిప్ పోర్టల్ portal.college.edu/scholarships చూడండి.",
		"timetable":   "తాజా టైమ్‌టేబుల్ కోసం, అకడమిక్ పోర్టల్ చూడండి లేదా మీ విభాగ కార్యాలయాన్ని సంప్రదించండి.",
		"admission":   "అడ్మిషన్ సమాచారం కోసం, అడ్మిషన్ కార్యాలయానికి వెళ్లండి లేదా మా వెబ్‌సైట్ college.edu/admissions చూడండి.",
		"exam":        "పరీక్ష షెడ్యూల్స్ మరియు రిజల్ట్స్ కోసం, అకడమిక్ పోర్టల్ చూడండి లేదా ఎగ్జామినేషన్ సెల్‌ను సంప్రదించండి.",
		"hostel":      "హాస్టల్ వసతి కోసం, hostel@college.edu వద్ద హాస్టల్ కార్యాలయాన్ని సంప్రదించండి లేదా హాస్టల్ అడ్మినిస్ట్రేషన్‌కు వెళ్లండి.",
		"library":     "లైబ్రరీ సేవల కోసం, లైబ్రరీకి వెళ్లండి లేదా library@college.edu వద్ద సంప్రదించండి.",
	},
}

// fallbackMessage returns the template for intent in lang. Languages without
// templates use English; intents without a template use the default message.
func fallbackMessage(intent, lang string) string {
	messages, ok := fallbackMessages[lang]
	if !ok {
		messages = fallbackMessages[model.WorkingLanguage]
	}
	if msg, ok := messages[intent]; ok {
		return msg
	}
	return messages[fallbackDefaultKey]
}
