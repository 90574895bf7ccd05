package card

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	// A stat/keyword-granting verb phrase. Stripped before required-keyword
	// matching so a card that grants Evasive does not register a dependency
	// on Evasive.
	grantPhraseRE = regexp.MustCompile(`(?:gains?|gets|give|gives) [^.]*`)

	singerCostRE = regexp.MustCompile(`\bsinger (\d+)\b`)
)

// SanitizeText lowercases text and collapses all whitespace runs to single
// spaces.
func SanitizeText(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(strings.ToLower(s), " "))
}

// universe holds the tag and name spaces of a catalog, with one compiled
// boundary pattern per tag so derivation does not rebuild regexps per card.
type universe struct {
	keywords        map[string]*regexp.Regexp
	classifications map[string]*regexp.Regexp
	types           map[Type]*regexp.Regexp
	names           []string
}

func boundaryPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(tag)) + `\b`)
}

func buildUniverse(cards []*Card) *universe {
	u := &universe{
		keywords:        make(map[string]*regexp.Regexp),
		classifications: make(map[string]*regexp.Regexp),
		types:           make(map[Type]*regexp.Regexp),
	}
	for _, t := range Types {
		// Character is near-universal; matching it would make every card
		// self-referential.
		if t == TypeCharacter {
			continue
		}
		u.types[t] = boundaryPattern(t.String())
	}
	seenNames := make(map[string]bool)
	for _, c := range cards {
		for _, kw := range c.Keywords {
			key := strings.ToLower(kw)
			if _, ok := u.keywords[key]; !ok {
				u.keywords[key] = boundaryPattern(kw)
			}
		}
		for _, cl := range c.Classifications {
			key := strings.ToLower(cl)
			if _, ok := u.classifications[key]; !ok {
				u.classifications[key] = boundaryPattern(cl)
			}
		}
		for _, part := range c.NameParts() {
			key := strings.ToLower(part)
			if key != "" && !seenNames[key] {
				seenNames[key] = true
				u.names = append(u.names, key)
			}
		}
	}
	return u
}

// deriveFlags populates the mechanical flags read off the keyword list and
// ability text. A Singer keyword without a parseable cost threshold leaves
// SingCost at zero, which disables the sing dependency rather than erroring.
func deriveFlags(c *Card) {
	c.SanitizedText = SanitizeText(c.Text)
	c.CanShift = c.HasKeyword(KeywordShift)
	if c.HasKeyword(KeywordSinger) {
		if m := singerCostRE.FindStringSubmatch(c.SanitizedText); m != nil {
			c.SingCost, _ = strconv.Atoi(m[1])
		}
	}
}

// deriveRequirements scans a card's sanitized text against the catalog's
// tag and name spaces and fills in its required sets. Empty text yields
// empty sets.
func deriveRequirements(c *Card, u *universe) {
	text := c.SanitizedText
	if text == "" && !c.CanShift {
		return
	}
	stripped := grantPhraseRE.ReplaceAllString(text, "")

	for key, re := range u.keywords {
		// A card's own keyword line (and its reminder text) is
		// self-referential noise, not a dependency.
		if c.HasKeyword(key) {
			continue
		}
		if re.MatchString(stripped) {
			c.RequiredKeywords = appendUnique(c.RequiredKeywords, key)
		}
	}
	for key, re := range u.classifications {
		if re.MatchString(text) {
			c.RequiredClassifications = appendUnique(c.RequiredClassifications, key)
		}
	}
	for t, re := range u.types {
		if re.MatchString(text) {
			c.RequiredTypes = appendUniqueType(c.RequiredTypes, t)
		}
	}
	for _, name := range u.names {
		if strings.Contains(text, name) {
			c.RequiredCardNames = appendUnique(c.RequiredCardNames, name)
		}
	}

	// A shift card implicitly requires its own name(s): each half of a
	// dual identity individually.
	if c.CanShift {
		for _, part := range c.NameParts() {
			c.RequiredCardNames = appendUnique(c.RequiredCardNames, strings.ToLower(part))
		}
	}
}

func appendUnique(set []string, v string) []string {
	for _, s := range set {
		if s == v {
			return set
		}
	}
	return append(set, v)
}

func appendUniqueType(set []Type, v Type) []Type {
	for _, t := range set {
		if t == v {
			return set
		}
	}
	return append(set, v)
}
