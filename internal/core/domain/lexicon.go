package domain

import "strings"

// LexiconName identifies a parser keyword vocabulary.
type LexiconName string

// Available lexicons.
const (
	// LexiconEnglish matches English keywords (chassis, km, h, failure...).
	LexiconEnglish LexiconName = "en"

	// LexiconRussian matches the Russian field vocabulary the intake
	// sheet was originally operated with (шасси, км, ч, отказ...).
	LexiconRussian LexiconName = "ru"
)

// IsValid returns true if the lexicon name is recognised.
func (n LexiconName) IsValid() bool {
	switch n {
	case LexiconEnglish, LexiconRussian:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (n LexiconName) String() string {
	return string(n)
}

// Description returns a human-readable description of the lexicon.
func (n LexiconName) Description() string {
	switch n {
	case LexiconEnglish:
		return "English keywords"
	case LexiconRussian:
		return "Russian keywords"
	default:
		return "Unknown"
	}
}

// ModelKeyword is one entry of the vehicle-model candidate vocabulary.
type ModelKeyword struct {
	// Word is the lowercase form matched as a whole word in the text.
	Word string

	// Canonical is the display casing used when the matched span cannot
	// be recovered from the original text.
	Canonical string
}

// Lexicon is the keyword vocabulary driving the field extractor. All
// pattern fields are regular-expression sources compiled by the extractor;
// they are matched case-insensitively against the lowercased text.
//
// The candidate lists are ordered: the first listed keyword that matches
// wins, so list order is a tie-break, not just an enumeration.
type Lexicon struct {
	// Name identifies the lexicon.
	Name LexiconName

	// OrgDelimiters is the alternation of organisation-boundary tokens.
	// The extractor anchors it as `^(.*?)\s*(?:<OrgDelimiters>)` and
	// takes the captured prefix as the organisation.
	OrgDelimiters string

	// ChassisPrefix is the chassis keyword plus the optional separator
	// preceding the chassis digits.
	ChassisPrefix string

	// DistancePattern captures the distance digits before the unit.
	DistancePattern string

	// HoursPattern captures the engine-hours digits before the unit.
	HoursPattern string

	// DistanceSuffix and HoursSuffix follow the digits when the matched
	// phrase is removed from the description residue.
	DistanceSuffix string
	HoursSuffix    string

	// DistanceUnit and HoursUnit are the display units of the composite
	// mileage/hours field.
	DistanceUnit string
	HoursUnit    string

	// FailurePatterns are applied in order over the whole text; every
	// match span is collected into the failure description.
	FailurePatterns []string

	// Models is the ordered vehicle-model candidate vocabulary.
	Models []ModelKeyword
}

// ComposeMileageHours assembles the composite mileage/hours field from the
// extracted readings: present components joined with ", ", distance first.
// Both absent yields "".
func (l Lexicon) ComposeMileageHours(distance, hours string) string {
	parts := make([]string, 0, 2)
	if distance != "" {
		parts = append(parts, distance+" "+l.DistanceUnit)
	}
	if hours != "" {
		parts = append(parts, hours+" "+l.HoursUnit)
	}
	return strings.Join(parts, ", ")
}

// EnglishLexicon returns the default English vocabulary.
//
// Note on boundaries: the trailing \b is attached to word keywords only.
// Anchoring punctuation delimiters (dash, colon) with \b would make them
// unmatchable before whitespace, which is exactly where they appear in
// practice ("Acme Corp - chassis: ...").
func EnglishLexicon() Lexicon {
	return Lexicon{
		Name:            LexiconEnglish,
		OrgDelimiters:   `chassis\b|at\s|on\s|—|–|-|:|,\s*where\b|,\s*in\b`,
		ChassisPrefix:   `chassis\s*[:\s]?\s*`,
		DistancePattern: `(\d{2,7})\s*km\b`,
		HoursPattern:    `(\d{1,6})\s*h\b`,
		DistanceSuffix:  `\s*km`,
		HoursSuffix:     `\s*h`,
		DistanceUnit:    "km",
		HoursUnit:       "h",
		FailurePatterns: []string{
			`protection[:\s]*[^.,;]+`,
			`error[:\s]*[^.,;]+`,
			`error\s+[^.,;]+`,
			`failure[:\s]*[^.,;]+`,
		},
		Models: []ModelKeyword{
			{Word: "belaz", Canonical: "BelAZ"},
			{Word: "cat", Canonical: "CAT"},
			{Word: "volvo", Canonical: "Volvo"},
			{Word: "komatsu", Canonical: "Komatsu"},
			{Word: "dumper", Canonical: "Dumper"},
			{Word: "kamaz", Canonical: "KamAZ"},
			{Word: "shacman", Canonical: "Shacman"},
			{Word: "moxy", Canonical: "Moxy"},
			{Word: "terex", Canonical: "Terex"},
		},
	}
}

// RussianLexicon returns the Russian vocabulary.
//
// \b in Go's regexp is an ASCII word boundary and never fires between a
// space and a Cyrillic letter, so Cyrillic keywords use explicit
// letter/digit classes instead.
func RussianLexicon() Lexicon {
	return Lexicon{
		Name:            LexiconRussian,
		OrgDelimiters:   `шасси(?:[^\p{L}\p{N}_]|$)|на\s|—|–|-|:|,\s*где(?:[^\p{L}\p{N}_]|$)|,\s*в(?:[^\p{L}\p{N}_]|$)`,
		ChassisPrefix:   `шасси\s*[:\s]?\s*`,
		DistancePattern: `(\d{2,7})\s*км(?:[^\p{L}\p{N}]|$)`,
		HoursPattern:    `(\d{1,6})\s*ч(?:[^\p{L}\p{N}]|$)`,
		DistanceSuffix:  `\s*км`,
		HoursSuffix:     `\s*ч`,
		DistanceUnit:    "км",
		HoursUnit:       "ч",
		FailurePatterns: []string{
			`защита[:\s]*[^.,;]+`,
			`ошибка[:\s]*[^.,;]+`,
			`ошибка\s+[^.,;]+`,
			`отказ[:\s]*[^.,;]+`,
		},
		Models: []ModelKeyword{
			{Word: "белаз", Canonical: "БелАЗ"},
			{Word: "cat", Canonical: "CAT"},
			{Word: "volvo", Canonical: "Volvo"},
			{Word: "komatsu", Canonical: "Komatsu"},
			{Word: "dumper", Canonical: "Dumper"},
			{Word: "камаз", Canonical: "КамАЗ"},
			{Word: "shacman", Canonical: "Shacman"},
			{Word: "moxy", Canonical: "Moxy"},
			{Word: "terex", Canonical: "Terex"},
		},
	}
}

// LexiconByName resolves a lexicon by its configured name.
func LexiconByName(name LexiconName) (Lexicon, error) {
	switch name {
	case LexiconEnglish:
		return EnglishLexicon(), nil
	case LexiconRussian:
		return RussianLexicon(), nil
	default:
		return Lexicon{}, ErrUnknownLexicon
	}
}

// AllLexicons returns all available lexicon names.
func AllLexicons() []LexiconName {
	return []LexiconName{LexiconEnglish, LexiconRussian}
}
