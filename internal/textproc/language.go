package textproc

type languageRules struct {
	abbreviations map[string]bool
	stopWords     map[string]bool
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var languages = map[string]languageRules{
	"english": {
		abbreviations: set(
			"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "mt", "vs",
			"inc", "ltd", "co", "corp", "dept", "univ", "approx", "fig",
			"no", "vol", "jan", "feb", "mar", "apr", "jun", "jul", "aug",
			"sep", "sept", "oct", "nov", "dec", "gen", "col", "sgt", "lt",
		),
		stopWords: set(
			"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
			"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
			"to", "was", "were", "will", "with", "this", "but", "they", "have",
			"had", "what", "when", "where", "who", "which", "why", "how", "all",
			"any", "both", "each", "few", "more", "most", "other", "some",
			"such", "no", "nor", "not", "only", "own", "same", "so", "than",
			"too", "very", "can", "did", "do", "does", "doing", "done", "i",
			"you", "we", "she", "him", "her", "them", "our", "your", "my",
			"me", "us", "or", "if", "then", "there", "here", "just", "about",
		),
	},
	"german": {
		abbreviations: set(
			"dr", "prof", "hr", "fr", "nr", "str", "bzw", "ca", "evtl",
			"ggf", "usw", "vgl", "z", "bsp", "inkl", "jan", "feb", "okt", "dez",
		),
		stopWords: set(
			"der", "die", "das", "und", "ist", "ein", "eine", "zu", "den",
			"von", "mit", "sich", "des", "auf", "für", "im", "dem", "nicht",
			"es", "auch", "als", "an", "er", "sie", "wir", "ich", "aber",
		),
	},
	"french": {
		abbreviations: set(
			"m", "mm", "mme", "mlle", "dr", "pr", "st", "ste", "av", "bd",
			"env", "cf", "etc", "janv", "févr", "avr", "juil", "sept", "oct", "nov", "déc",
		),
		stopWords: set(
			"le", "la", "les", "de", "des", "du", "un", "une", "et", "est",
			"en", "que", "qui", "dans", "pour", "pas", "sur", "au", "aux",
			"il", "elle", "nous", "vous", "ils", "ce", "se", "ne", "je",
		),
	},
	"spanish": {
		abbreviations: set(
			"sr", "sra", "srta", "dr", "dra", "ud", "uds", "av", "pág",
			"núm", "aprox", "etc", "ene", "feb", "abr", "ago", "sept", "oct", "dic",
		),
		stopWords: set(
			"el", "la", "los", "las", "de", "del", "un", "una", "y", "es",
			"en", "que", "por", "con", "para", "no", "se", "al", "lo", "su",
			"como", "más", "pero", "yo", "tú", "él", "ella", "nosotros",
		),
	},
}
