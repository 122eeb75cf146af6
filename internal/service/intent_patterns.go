package service

import "github.com/campusassist/campus-assist/internal/model"

// intentDefinition lists the patterns of one intent per language. Intents are
// evaluated in declaration order; earlier intents win confidence ties.
type intentDefinition struct {
	name     string
	patterns map[string][]string
}

// English patterns are anchored on word boundaries so short alternatives
// such as "hi" do not fire inside longer words.
var intentDefinitions = []intentDefinition{
	{
		name: "greeting",
		patterns: map[string][]string{
			"en": {`\b(hello|hi|hey|good morning|good afternoon|good evening)\b`, `\b(how are you|what's up)\b`},
			"hi": {`(नमस्ते|नमस्कार|हैलो|हाय)`, `(क्या हाल है|कैसे हैं आप)`},
			"mr": {`(नमस्कार|नमस्ते|हॅलो)`, `(कसे आहात|काय चालू आहे)`},
			"ta": {`(வணக்கம்|ஹலோ)`, `(எப்படி இருக்கீங்க|என்ன நடக்குது)`},
			"te": {`(నమస్కారం|హలో)`, `(ఎలా ఉన్నారు|ఏమి జరుగుతోంది)`},
		},
	},
	{
		name: "fees",
		patterns: map[string][]string{
			"en": {`\b(fee|fees|payment|tuition|cost|charges|amount)\b`, `\b(how much|price|expense)\b`},
			"hi": {`(शुल्क|फीस|भुगतान|पैसा)`, `(कितना|दाम|खर्च)`},
			"mr": {`(शुल्क|फी|पैसे|खर्च)`, `(किती|दर|पेमेंट)`},
			"ta": {`(கட்டணம்|பணம்|செலுத்த)`, `(எவ்வளவு|விலை|செலவு)`},
			"te": {`(ఫీజు|డబ్బు|చెల్లింపు)`, `(ఎంత|ధర|ఖర్చు)`},
		},
	},
	{
		name: "scholarship",
		patterns: map[string][]string{
			"en": {`\b(scholarship|scholership|financial aid|grant|stipend)\b`, `\b(free education|merit)\b`},
			"hi": {`(छात्रवृत्ति|वजीफा|सहायता)`, `(मुफ्त शिक्षा|मेरिट)`},
			"mr": {`(शिष्यवृत्ती|वजीफा|मदत)`, `(मोफत शिक्षण|गुणवत्ता)`},
			"ta": {`(உதவித்தொகை|கல்வி உதவி)`, `(இலவச கல்வி|தகுதி)`},
			"te": {`(స్కాలర్‌షిప్|విద్య సహాయం)`, `(ఉచిత విద్య|మెరిట్)`},
		},
	},
	{
		name: "timetable",
		patterns: map[string][]string{
			"en": {`\b(timetable|schedule|class timing|lecture|time)\b`, `\b(when|what time|timing)\b`},
			"hi": {`(समय सारणी|कक्षा का समय|लेक्चर)`, `(कब|क्या समय|टाइमिंग)`},
			"mr": {`(वेळापत्रक|वर्गाचा वेळ|व्याख्यान)`, `(केव्हा|काय वेळ|टाइमिंग)`},
			"ta": {`(நேர அட்டவணை|வகுப்பு நேரம்|விரிவுரை)`, `(எப்போது|என்ன நேரம்|டைமிங்)`},
			"te": {`(టైం టేబుల్|క్లాస్ టైమ్|లెక్చర్)`, `(ఎప్పుడు|ఏ సమయం|టైమింగ్)`},
		},
	},
	{
		name: "admission",
		patterns: map[string][]string{
			"en": {`\b(admission|admision|enrollment|registration|apply)\b`, `\b(join|entry|application)\b`},
			"hi": {`(प्रवेश|दाखिला|रजिस्ट्रेशन)`, `(आवेदन|एप्लीकेशन|जॉइन)`},
			"mr": {`(प्रवेश|दाखला|नोंदणी)`, `(अर्ज|अप्लिकेशन|सामील)`},
			"ta": {`(சேர்க்கை|பதிவு|விண்ணப்பம்)`, `(சேர|நுழைவு|அப்ளிகேஷன்)`},
			"te": {`(అడ్మిషన్|ప్రవేశం|రిజిస్ట్రేషన్)`, `(చేరడం|ఎంట్రీ|అప్లికేషన్)`},
		},
	},
	{
		name: "exam",
		patterns: map[string][]string{
			"en": {`\b(exam|examination|test|result|marks|grade)\b`, `\b(score|assessment|evaluation)\b`},
			"hi": {`(परीक्षा|इम्तिहान|टेस्ट|नतीजा|अंक)`, `(स्कोर|मूल्यांकन|ग्रेड)`},
			"mr": {`(परीक्षा|चाचणी|निकाल|गुण)`, `(स्कोअर|मूल्यमापन|ग्रेड)`},
			"ta": {`(தேர்வு|பரீட்சை|டெஸ்ட்|முடிவு|மதிப்பெண்)`, `(ஸ்கோர்|மதிப்பீடு|கிரேடு)`},
			"te": {`(పరీక్ష|టెస్ట్|రిజల్ట్|మార్కులు)`, `(స్కోర్|అసెస్మెంట్|గ్రేడ్)`},
		},
	},
	{
		name: "hostel",
		patterns: map[string][]string{
			"en": {`\b(hostel|accommodation|room|dormitory|stay)\b`, `\b(residence|housing|lodge)\b`},
			"hi": {`(छात्रावास|कमरा|निवास|रहना)`, `(आवास|हाउसिंग|लॉज)`},
			"mr": {`(वसतिगृह|खोली|निवास|राहणे)`, `(आवास|हाउसिंग|लॉज)`},
			"ta": {`(விடுதி|அறை|தங்குமிடம்|தங்க)`, `(குடியிருப்பு|வீட்டுவசதி|லாஜ்)`},
			"te": {`(హాస్టల్|గది|నివాసం|ఉండటం)`, `(వసతి|హౌసింగ్|లాడ్జ్)`},
		},
	},
	{
		name: "library",
		patterns: map[string][]string{
			"en": {`\b(library|books|issue|return|borrow)\b`, `\b(reading|study|reference)\b`},
			"hi": {`(पुस्तकालय|किताब|इश्यू|वापसी)`, `(पढ़ना|अध्ययन|संदर्भ)`},
			"mr": {`(वाचनालय|पुस्तक|इश्यू|परतावा)`, `(वाचन|अभ्यास|संदर्भ)`},
			"ta": {`(நூலகம்|புத்தகம்|வழங்க|திரும்ப)`, `(படிக்க|படிப்பு|குறிப்பு)`},
			"te": {`(లైబ్రరీ|పుస్తకం|ఇష్యూ|రిటర్న్)`, `(చదవడం|చదువు|రిఫరెన్స్)`},
		},
	},
}

// entityDefinition extracts one entity kind for one intent. The first
// matching pattern wins.
type entityDefinition struct {
	intent   string
	kind     string
	patterns map[string][]string
}

var entityDefinitions = []entityDefinition{
	{
		intent: "fees",
		kind:   model.EntityAcademicYear,
		patterns: map[string][]string{
			"en": {`(20\d{2})`, `(first|second|third|fourth)`, `(1st|2nd|3rd|4th)`},
			"hi": {`(पहला|दूसरा|तीसरा|चौथा)`, `(प्रथम|द्वितीय|तृतीय|चतुर्थ)`},
			"mr": {`(पहिला|दुसरा|तिसरा|चौथा)`, `(प्रथम|द्वितीय|तृतीय|चतुर्थ)`},
		},
	},
	{
		intent: "exam",
		kind:   model.EntityExamType,
		patterns: map[string][]string{
			"en": {`(mid|final|internal|external|practical|theory)`},
			"hi": {`(मध्यावधि|अंतिम|आंतरिक|बाहरी|प्रैक्टिकल|सिद्धांत)`},
			"mr": {`(मध्यावधी|अंतिम|अंतर्गत|बाह्य|प्रात्यक्षिक|सिद्धांत)`},
		},
	},
}
