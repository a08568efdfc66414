package legaldata

import "nyaay-saathi/internal/models"

// PhraseTables are keyed by lowercase language code. Phrase order is the
// replacement order.
var PhraseTables = []models.PhraseTable{
	{
		Language: "hindi",
		Phrases:  []models.Phrase{
			{English: "I am an AI assistant", Localized: "मैं एक AI सहायक हूँ"},
			{English: "Please consult a lawyer", Localized: "कृपया एक वकील से परामर्श करें"},
			{English: "for serious or urgent matters", Localized: "गंभीर या जरूरी मामलों के लिए"},
			{English: "How can I help you today?", Localized: "मैं आपकी कैसे सहायता कर सकता हूँ?"},
			{English: "Rights during arrest", Localized: "गिरफ्तारी के दौरान अधिकार"},
			{English: "How to file an FIR?", Localized: "FIR कैसे दर्ज करें?"},
			{English: "Consumer complaint process", Localized: "उपभोक्ता शिकायत प्रक्रिया"},
			{English: "RTI application procedure", Localized: "RTI आवेदन प्रक्रिया"},
			{English: "Legal Documents", Localized: "कानूनी दस्तावेज़"},
			{English: "Legal Timelines", Localized: "कानूनी समयरेखा"},
			{English: "Nearby Resources", Localized: "आस-पास के संसाधन"},
			{English: "Ask a legal question...", Localized: "एक कानूनी प्रश्न पूछें..."},
		},
	},
	{
		Language: "kannada",
		Phrases:  []models.Phrase{
			{English: "I am an AI assistant", Localized: "ನಾನು ಒಂದು AI ಸಹಾಯಕ"},
			{English: "Please consult a lawyer", Localized: "ದಯವಿಟ್ಟು ವಕೀಲರನ್ನು ಸಂಪರ್ಕಿಸಿ"},
			{English: "for serious or urgent matters", Localized: "ಗಂಭೀರ ಅಥವಾ ತುರ್ತು ವಿಷಯಗಳಿಗಾಗಿ"},
			{English: "How can I help you today?", Localized: "ನಾನು ಇಂದು ನಿಮಗೆ ಹೇಗೆ ಸಹಾಯ ಮಾಡಬಹುದು?"},
			{English: "Rights during arrest", Localized: "ಸೆರೆಹಿಡಿಯುವ ಸಮಯದಲ್ಲಿ ಹಕ್ಕುಗಳು"},
			{English: "How to file an FIR?", Localized: "FIR ಅನ್ನು ಹೇಗೆ ದಾಖಲಿಸುವುದು?"},
			{English: "Consumer complaint process", Localized: "ಗ್ರಾಹಕ ದೂರು ಪ್ರಕ್ರಿಯೆ"},
			{English: "RTI application procedure", Localized: "RTI ಅರ್ಜಿ ಪ್ರಕ್ರಿಯೆ"},
			{English: "Legal Documents", Localized: "ಕಾನೂನು ದಾಖಲೆಗಳು"},
			{English: "Legal Timelines", Localized: "ಕಾನೂನು ಸಮಯರೇಖೆ"},
			{English: "Nearby Resources", Localized: "ಹತ್ತಿರದ ಸಂಪನ್ಮೂಲಗಳು"},
			{English: "Ask a legal question...", Localized: "ಕಾನೂನು ಪ್ರಶ್ನೆಯನ್ನು ಕೇಳಿ..."},
		},
	},
	{
		Language: "bengali",
		Phrases:  []models.Phrase{
			{English: "I am an AI assistant", Localized: "আমি একটি AI সহায়ক"},
			{English: "Please consult a lawyer", Localized: "অনুগ্রহ করে একজন আইনজীবীর সাথে পরামর্শ করুন"},
			{English: "for serious or urgent matters", Localized: "গুরুতর বা জরুরি বিষয়ের জন্য"},
			{English: "How can I help you today?", Localized: "আমি আপনাকে আজ কীভাবে সাহায্য করতে পারি?"},
			{English: "Rights during arrest", Localized: "গ্রেপ্তারের সময় অধিকার"},
			{English: "How to file an FIR?", Localized: "FIR কীভাবে দায়ের করবেন?"},
			{English: "Consumer complaint process", Localized: "ভোক্তা অভিযোগ প্রক্রিয়া"},
			{English: "RTI application procedure", Localized: "RTI আবেদন পদ্ধতি"},
			{English: "Legal Documents", Localized: "আইনি নথি"},
			{English: "Legal Timelines", Localized: "আইনি সময়রেখা"},
			{English: "Nearby Resources", Localized: "কাছাকাছি সম্পদ"},
			{English: "Ask a legal question...", Localized: "একটি আইনি প্রশ্ন জিজ্ঞাসা করুন..."},
		},
	},
	{
		Language: "tamil",
		Phrases:  []models.Phrase{
			{English: "I am an AI assistant", Localized: "நான் ஒரு AI உதவியாளர்"},
			{English: "Please consult a lawyer", Localized: "தயவுசெய்து ஒரு வழக்கறிஞரை அணுகவும்"},
			{English: "for serious or urgent matters", Localized: "தீவிரமான அல்லது அவசரமான விஷயங்களுக்கு"},
			{English: "How can I help you today?", Localized: "இன்று நான் உங்களுக்கு எவ்வாறு உதவ முடியும்?"},
			{English: "Rights during arrest", Localized: "கைது செய்யப்படும் போது உரிமைகள்"},
			{English: "How to file an FIR?", Localized: "FIR எப்படி தாக்கல் செய்வது?"},
			{English: "Consumer complaint process", Localized: "நுகர்வோர் புகார் செயல்முறை"},
			{English: "RTI application procedure", Localized: "RTI விண்ணப்ப நடைமுறை"},
			{English: "Legal Documents", Localized: "சட்ட ஆவணங்கள்"},
			{English: "Legal Timelines", Localized: "சட்ட கால வரிசை"},
			{English: "Nearby Resources", Localized: "அருகிலுள்ள வளங்கள்"},
			{English: "Ask a legal question...", Localized: "ஒரு சட்ட கேள்வியைக் கேளுங்கள்..."},
		},
	},
	{
		Language: "telugu",
		Phrases:  []models.Phrase{
			{English: "I am an AI assistant", Localized: "నేను AI సహాయకుడిని"},
			{English: "Please consult a lawyer", Localized: "దయచేసి న్యాయవాదిని సంప్రదించండి"},
			{English: "for serious or urgent matters", Localized: "తీవ్రమైన లేదా అత్యవసర విషయాల కోసం"},
			{English: "How can I help you today?", Localized: "నేను మీకు ఈరోజు ఎలా సహాయం చేయగలను?"},
			{English: "Rights during arrest", Localized: "అరెస్ట్ సమయంలో హక్కులు"},
			{English: "How to file an FIR?", Localized: "FIR ఎలా దాఖలు చేయాలి?"},
			{English: "Consumer complaint process", Localized: "వినియోగదారు ఫిర్యాదు ప్రక్రియ"},
			{English: "RTI application procedure", Localized: "RTI దరఖాస్తు విధానం"},
			{English: "Legal Documents", Localized: "చట్టపరమైన పత్రాలు"},
			{English: "Legal Timelines", Localized: "చట్టపరమైన కాలక్రమాలు"},
			{English: "Nearby Resources", Localized: "సమీప వనరులు"},
			{English: "Ask a legal question...", Localized: "చట్టపరమైన ప్రశ్న అడగండి..."},
		},
	},
	{
		Language: "marathi",
		Phrases:  []models.Phrase{
			{English: "I am an AI assistant", Localized: "मी एक AI सहाय्यक आहे"},
			{English: "Please consult a lawyer", Localized: "कृपया वकिलाचा सल्ला घ्या"},
			{English: "for serious or urgent matters", Localized: "गंभीर किंवा तातडीच्या बाबींसाठी"},
			{English: "How can I help you today?", Localized: "मी आज आपली कशी मदत करू शकतो?"},
			{English: "Rights during arrest", Localized: "अटक करताना अधिकार"},
			{English: "How to file an FIR?", Localized: "FIR कसे दाखल करावे?"},
			{English: "Consumer complaint process", Localized: "ग्राहक तक्रार प्रक्रिया"},
			{English: "RTI application procedure", Localized: "RTI अर्ज प्रक्रिया"},
			{English: "Legal Documents", Localized: "कायदेशीर कागदपत्रे"},
			{English: "Legal Timelines", Localized: "कायदेशीर कालरेषा"},
			{English: "Nearby Resources", Localized: "जवळपासचे स्त्रोत"},
			{English: "Ask a legal question...", Localized: "एक कायदेशीर प्रश्न विचारा..."},
		},
	},
	{
		Language: "gujarati",
		Phrases:  []models.Phrase{
			{English: "I am an AI assistant", Localized: "હું એક AI સહાયક છું"},
			{English: "Please consult a lawyer", Localized: "કૃપા કરીને વકીલની સલાહ લો"},
			{English: "for serious or urgent matters", Localized: "ગંભીર અથવા તાત્કાલિક બાબતો માટે"},
			{English: "How can I help you today?", Localized: "હું આજે તમને કેવી રીતે મદદ કરી શકું?"},
			{English: "Rights during arrest", Localized: "ધરપકડ દરમિયાન અધિકારો"},
			{English: "How to file an FIR?", Localized: "FIR કેવી રીતે નોંધાવી શકાય?"},
			{English: "Consumer complaint process", Localized: "ગ્રાહક ફરિયાદ પ્રક્રિયા"},
			{English: "RTI application procedure", Localized: "RTI અરજી પ્રક્રિયા"},
			{English: "Legal Documents", Localized: "કાનૂની દસ્તાવેજો"},
			{English: "Legal Timelines", Localized: "કાનૂની સમયરેખા"},
			{English: "Nearby Resources", Localized: "નજીકના સંસાધનો"},
			{English: "Ask a legal question...", Localized: "કાનૂની પ્રશ્ન પૂછો..."},
		},
	},
}
