package i18n

import "strconv"

// Language represents a supported language.
type Language string

const (
	// English is the English language.
	English Language = "en"
	// Finnish is the Finnish language.
	Finnish Language = "fi"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = Language(English)

// translations maps language codes to translation keys and their values.
var translations = map[Language]map[string]string{
	English: {
		"day.1":                  "Monday",
		"day.2":                  "Tuesday",
		"day.3":                  "Wednesday",
		"day.4":                  "Thursday",
		"day.5":                  "Friday",
		"day.6":                  "Saturday",
		"day.7":                  "Sunday",
		"plan.title":             "Training program",
		"plan.split":             "Split",
		"plan.cycle_weeks":       "Cycle length (weeks)",
		"plan.estimated_minutes": "Estimated duration (min)",
		"plan.column.order":      "#",
		"plan.column.exercise":   "Exercise",
		"plan.column.sets":       "Sets",
		"plan.column.reps":       "Reps",
		"plan.column.rest":       "Rest (s)",
		"plan.column.rpe":        "RPE",
		"plan.column.tempo":      "Tempo",
		"focus.full_body":        "Full body",
		"focus.push_core":        "Push and core",
		"focus.pull_legs":        "Pull and legs",
		"focus.push":             "Push",
		"focus.pull":             "Pull",
		"focus.legs":             "Legs",
		"focus.chest_triceps":    "Chest and triceps",
		"focus.back_biceps":      "Back and biceps",
		"focus.lower":            "Lower body",
		"focus.shoulders":        "Shoulders",
		"split.full_body":        "Full body",
		"split.half_body":        "Upper/lower",
		"split.push_pull":        "Push/pull",
		"split.push_pull_legs":   "Push/pull/legs",
		"split.split":            "Body part split",
		"language.name.en":       "English",
		"language.name.fi":       "Suomi",
	},
	Finnish: {
		"day.1":                  "Maanantai",
		"day.2":                  "Tiistai",
		"day.3":                  "Keskiviikko",
		"day.4":                  "Torstai",
		"day.5":                  "Perjantai",
		"day.6":                  "Lauantai",
		"day.7":                  "Sunnuntai",
		"plan.title":             "Harjoitusohjelma",
		"plan.split":             "Jako",
		"plan.cycle_weeks":       "Jakson pituus (viikkoa)",
		"plan.estimated_minutes": "Arvioitu kesto (min)",
		"plan.column.order":      "#",
		"plan.column.exercise":   "Liike",
		"plan.column.sets":       "Sarjat",
		"plan.column.reps":       "Toistot",
		"plan.column.rest":       "Lepo (s)",
		"plan.column.rpe":        "RPE",
		"plan.column.tempo":      "Tempo",
		"focus.full_body":        "Koko keho",
		"focus.push_core":        "Työntävät ja keskivartalo",
		"focus.pull_legs":        "Vetävät ja jalat",
		"focus.push":             "Työntävät",
		"focus.pull":             "Vetävät",
		"focus.legs":             "Jalat",
		"focus.chest_triceps":    "Rinta ja ojentajat",
		"focus.back_biceps":      "Selkä ja hauikset",
		"focus.lower":            "Alavartalo",
		"focus.shoulders":        "Olkapäät",
		"split.full_body":        "Koko keho",
		"split.half_body":        "Ylä/ala",
		"split.push_pull":        "Työntö/veto",
		"split.push_pull_legs":   "Työntö/veto/jalat",
		"split.split":            "Lihasryhmäjako",
		"language.name.en":       "English",
		"language.name.fi":       "Suomi",
	},
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{English, Finnish}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	// Try the requested language.
	if langTranslations, ok := translations[lang]; ok {
		if translation, ok := langTranslations[key]; ok {
			return translation
		}
	}

	// Fallback to default language.
	if lang != DefaultLanguage {
		if langTranslations, ok := translations[DefaultLanguage]; ok {
			if translation, ok := langTranslations[key]; ok {
				return translation
			}
		}
	}

	// Return the key itself if no translation found.
	return key
}

// DayName returns the localised name of a 1-based day of the week starting on Monday. Days past Sunday
// wrap around.
func DayName(lang Language, dayOfWeek int) string {
	const daysInWeek = 7
	if dayOfWeek < 1 {
		return strconv.Itoa(dayOfWeek)
	}
	return Translate(lang, "day."+strconv.Itoa((dayOfWeek-1)%daysInWeek+1))
}
