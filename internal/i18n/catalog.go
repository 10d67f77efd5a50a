// Package i18n holds the per-language response catalog and the composer
// that renders template keys into user-facing text. The catalog is static
// data, not control flow, so tests can enumerate every (key, language) pair.
package i18n

// Key identifies one response template.
type Key string

const (
	KeyBalance        Key = "balance"
	KeySavings        Key = "savings"
	KeyTransactions   Key = "transactions"
	KeyBills          Key = "bills"
	KeyHelp           Key = "help"
	KeyConfirmSend    Key = "confirm_send"
	KeyConfirmPayBill Key = "confirm_pay_bill"
	KeyConfirmRequest Key = "confirm_request"
	KeyConfirmSavings Key = "confirm_savings"
	KeySuccessSend    Key = "success_send"
	KeySuccessPayBill Key = "success_pay_bill"
	KeySuccessRequest Key = "success_request"
	KeySuccessSavings Key = "success_savings"
	KeyInsufficient   Key = "insufficient"
	KeyCancelled      Key = "cancelled"
	KeyReprompt       Key = "reprompt"
	KeyExecError      Key = "exec_error"
)

// FallbackLanguage is used whenever the requested language has no variant
// for a key. It must cover every key.
const FallbackLanguage = "en-US"

// Languages supported by the assistant UI.
var Languages = []string{
	"en-US", "hi-IN", "ta-IN", "te-IN", "kn-IN", "mr-IN", "bn-IN", "gu-IN",
}

// catalog maps (key, language) to an ordered list of candidate strings.
// Placeholders: {balance} {available} {savings} {count} {total} {amount}
// {recipient} {bill} {have} {need}. Partial coverage outside en-US is
// expected; the
// composer falls back per key.
var catalog = map[Key]map[string][]string{
	KeyBalance: {
		"en-US": {"Your current account balance is {balance}. You have {available} available for withdrawal."},
		"hi-IN": {"आपका वर्तमान खाता शेष {balance} है।"},
		"ta-IN": {"உங்கள் தற்போதைய கணக்கு இருப்பு {balance} உள்ளது."},
		"te-IN": {"మీ ప్రస్తుత ఖాతా నిల్వ {balance} ఉంది."},
		"kn-IN": {"ನಿಮ್ಮ ಪ್ರಸ್ತುತ ಖಾತೆ ಶಿಲ್ಕು {balance} ಇದೆ."},
		"mr-IN": {"आपल्या सध्याच्या खात्यातील शिल्लक {balance} आहे."},
		"bn-IN": {"আপনার বর্তমান অ্যাকাউন্ট ব্যালেন্স {balance}।"},
		"gu-IN": {"તમારું હાલનું ખાતા બેલેન્સ {balance} છે."},
	},
	KeySavings: {
		"en-US": {"Your current savings are {savings}."},
		"hi-IN": {"आपकी वर्तमान बचत {savings} है।"},
		"ta-IN": {"உங்கள் தற்போதைய சேமிப்பு {savings} உள்ளது."},
		"te-IN": {"మీ ప్రస్తుత పొదుపు {savings} ఉంది."},
		"kn-IN": {"ನಿಮ್ಮ ಪ್ರಸ್ತುತ ಉಳಿತಾಯ {savings} ಇದೆ."},
		"mr-IN": {"आपली सध्याची बचत {savings} आहे."},
		"bn-IN": {"আপনার বর্তমান সঞ্চয় {savings}।"},
		"gu-IN": {"તમારી હાલની બચત {savings} છે."},
	},
	KeyTransactions: {
		"en-US": {"You have {count} recent transactions."},
		"hi-IN": {"आपके पास {count} हाल के लेनदेन हैं।"},
		"ta-IN": {"உங்களிடம் {count} சமீபத்திய பரிமாற்றங்கள் உள்ளன."},
		"te-IN": {"మీకు {count} ఇటీవలి లావాదేవీలు ఉన్నాయి."},
		"kn-IN": {"ನೀವು {count} ಇತ್ತೀಚಿನ ವಹಿವಾಟುಗಳನ್ನು ಹೊಂದಿರುವಿರಿ."},
		"mr-IN": {"आपल्याकडे {count} अलीकडील व्यवहार आहेत."},
		"bn-IN": {"আপনার কাছে {count} সাম্প্রতিক লেনদেন রয়েছে।"},
		"gu-IN": {"તમારી પાસે {count} તાજેતરના વ્યવહાર છે."},
	},
	KeyBills: {
		"en-US": {"You have {count} pending bills totalling {total}."},
		"hi-IN": {"आपके पास {count} बकाया बिल हैं।"},
		"ta-IN": {"உங்களிடம் {count} நிலுவையில் உள்ள பில்கள் உள்ளன."},
		"te-IN": {"మీకు {count} పెండింగ్ బిల్లులు ఉన్నాయి."},
		"kn-IN": {"ನೀವು {count} ಬಾಕಿ ಬಿಲ್‌ಗಳನ್ನು ಹೊಂದಿರುವಿರಿ."},
		"mr-IN": {"आपल्याकडे {count} बाकी बिल आहेत."},
		"bn-IN": {"আপনার কাছে {count} বকেয়া বিল রয়েছে।"},
		"gu-IN": {"તમારી પાસે {count} બાકી બિલ છે."},
	},
	KeyHelp: {
		"en-US": {"I can help with balance inquiries, transactions, bills, and account information."},
		"hi-IN": {"मैं शेष, लेनदेन, बिल और खाता जानकारी में मदद कर सकता हूं।"},
		"ta-IN": {"நான் இருப்பு, பரிமாற்றங்கள், பில்கள் மற்றும் கணக்கு தகவல்களில் உதவ முடியும்."},
		"te-IN": {"నేను బ్యాలెన్స్, లావాదేవీలు, బిల్లులు మరియు ఖాతా సమాచారంలో సహాయం చేయగలను."},
		"kn-IN": {"ನಾನು ಬ್ಯಾಲೆನ್ಸ್, ವಹಿವಾಟುಗಳು, ಬಿಲ್‌ಗಳು ಮತ್ತು ಖಾತೆ ಮಾಹಿತಿಯಲ್ಲಿ ಸಹಾಯ ಮಾಡಬಹುದು."},
		"mr-IN": {"मी शिल्लक, व्यवहार, बिल आणि खाते माहितीमध्ये मदत करू शकतो."},
		"bn-IN": {"আমি ব্যালেন্স, লেনদেন, বিল এবং অ্যাকাউন্ট তথ্যে সহায়তা করতে পারি।"},
		"gu-IN": {"હું બેલેન્સ, વ્યવહારો, બિલ અને ખાતાની માહિતીમાં મદદ કરી શકું છું."},
	},
	KeyConfirmSend: {
		"en-US": {`I'll send {amount} to {recipient}. Please confirm by typing "yes" or "confirm".`},
		"hi-IN": {"मैं {recipient} को {amount} भेजूंगा। कृपया पुष्टि करें।"},
	},
	KeyConfirmPayBill: {
		"en-US": {`I'll pay your {bill} bill of {amount}. Please confirm by typing "yes" or "confirm".`},
		"hi-IN": {"मैं आपका {bill} बिल {amount} का भुगतान करूंगा। कृपया पुष्टि करें।"},
	},
	KeyConfirmRequest: {
		"en-US": {`I'll request {amount} from {recipient}. Please confirm by typing "yes" or "confirm".`},
		"hi-IN": {"मैं {recipient} से {amount} का अनुरोध करूंगा। कृपया पुष्टि करें।"},
	},
	KeyConfirmSavings: {
		"en-US": {`I'll add {amount} to your savings. Please confirm by typing "yes" or "confirm".`},
		"hi-IN": {"मैं आपकी बचत में {amount} जोड़ूंगा। कृपया पुष्टि करें।"},
	},
	KeySuccessSend: {
		"en-US": {"Successfully sent {amount} to {recipient}!"},
		"hi-IN": {"{recipient} को {amount} सफलतापूर्वक भेजा गया!"},
	},
	KeySuccessPayBill: {
		"en-US": {"Successfully paid {bill} bill of {amount}!"},
		"hi-IN": {"{bill} बिल {amount} का सफलतापूर्वक भुगतान किया गया!"},
	},
	KeySuccessRequest: {
		"en-US": {"Money request sent to {recipient} for {amount}!"},
		"hi-IN": {"{recipient} को {amount} का अनुरोध भेजा गया!"},
	},
	KeySuccessSavings: {
		"en-US": {"Added {amount} to your savings!"},
		"hi-IN": {"आपकी बचत में {amount} जोड़ा गया!"},
	},
	KeyInsufficient: {
		"en-US": {"Insufficient balance. You have {have} but need {need}."},
		"hi-IN": {"अपर्याप्त शेष। आपके पास {have} है लेकिन {need} चाहिए।"},
	},
	KeyCancelled: {
		"en-US": {"Transaction cancelled."},
		"hi-IN": {"लेनदेन रद्द कर दिया गया।"},
	},
	KeyReprompt: {
		"en-US": {`You have a pending transaction. Please reply "yes" to confirm or "no" to cancel.`},
		"hi-IN": {`आपका एक लेनदेन लंबित है। पुष्टि के लिए "yes" या रद्द करने के लिए "no" लिखें।`},
	},
	KeyExecError: {
		"en-US": {"Sorry, there was an error processing your transaction. Please try again."},
		"hi-IN": {"क्षमा करें, आपके लेनदेन में त्रुटि हुई। कृपया पुनः प्रयास करें।"},
	},
}
