package nutrition

// Lang is a supported display language code.
type Lang string

const (
	LangEnglish  Lang = "en"
	LangBengali  Lang = "bn"
	LangHindi    Lang = "hi"
	LangAssamese Lang = "as"
)

// Languages lists every supported language, in fallback-search order.
func Languages() []Lang {
	return []Lang{LangEnglish, LangBengali, LangHindi, LangAssamese}
}

// ParseLang validates a language code from user input.
func ParseLang(s string) (Lang, bool) {
	switch Lang(s) {
	case LangEnglish, LangBengali, LangHindi, LangAssamese:
		return Lang(s), true
	default:
		return "", false
	}
}

// LocalizedText maps each supported language to a display string for one
// logical piece of text. After normalization every supported language is
// present and non-empty whenever any value was present at all.
type LocalizedText map[Lang]string

// Get returns the string for lang, falling back to English, then to any
// present value, then to "".
func (t LocalizedText) Get(lang Lang) string {
	if s := t[lang]; s != "" {
		return s
	}
	if s := t[LangEnglish]; s != "" {
		return s
	}
	for _, l := range Languages() {
		if s := t[l]; s != "" {
			return s
		}
	}
	return ""
}

// VerifyStatus classifies how nutritionally sound a detected item is.
type VerifyStatus string

const (
	StatusPass    VerifyStatus = "PASS"
	StatusWarning VerifyStatus = "WARNING"
	StatusFail    VerifyStatus = "FAIL"
)

// FoodItem is one detected item on the plate. Items are created only as
// part of an AnalysisResult and are immutable thereafter.
type FoodItem struct {
	Name     LocalizedText `json:"name"`
	Portion  LocalizedText `json:"portion"`
	Calories float64       `json:"calories"`
	Protein  float64       `json:"protein"`
	Carbs    float64       `json:"carbs"`
	Fats     float64       `json:"fats"`
	Notes    LocalizedText `json:"notes"`
	Status   VerifyStatus  `json:"status"`
}

// AnalysisResult is a normalized nutrition analysis for one meal photo.
// Item order is presentation order.
type AnalysisResult struct {
	Items         []FoodItem    `json:"items"`
	TotalCalories float64       `json:"totalCalories"`
	TotalProtein  float64       `json:"totalProtein"`
	TotalCarbs    float64       `json:"totalCarbs"`
	TotalFats     float64       `json:"totalFats"`
	HealthRating  float64       `json:"healthRating"`
	Advice        LocalizedText `json:"advice"`
}

// RefusalAdvice is the standardized advice attached to a result with no
// detected food. It overrides whatever the model produced alongside an
// empty item list.
func RefusalAdvice() LocalizedText {
	return LocalizedText{
		LangEnglish:  "No edible food detected in this image. Please take a clearer photo of a meal.",
		LangBengali:  "এই ছবিতে কোনো খাবার শনাক্ত করা যায়নি। অনুগ্রহ করে খাবারের একটি পরিষ্কার ছবি তুলুন।",
		LangHindi:    "इस तस्वीर में कोई खाद्य पदार्थ नहीं मिला। कृपया भोजन की एक साफ़ तस्वीर लें।",
		LangAssamese: "এই ছবিত কোনো খাদ্য ধৰা পৰা নাই। অনুগ্ৰহ কৰি আহাৰৰ এখন স্পষ্ট ফটো তোলক।",
	}
}
