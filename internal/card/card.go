package card

import (
	"fmt"
	"strings"
)

// --- Enums ---

type Ink int

const (
	InkNone Ink = iota
	InkAmber
	InkAmethyst
	InkEmerald
	InkRuby
	InkSapphire
	InkSteel
)

func (i Ink) String() string {
	switch i {
	case InkAmber:
		return "Amber"
	case InkAmethyst:
		return "Amethyst"
	case InkEmerald:
		return "Emerald"
	case InkRuby:
		return "Ruby"
	case InkSapphire:
		return "Sapphire"
	case InkSteel:
		return "Steel"
	default:
		return "None"
	}
}

// Inks lists the six playable ink colors.
var Inks = []Ink{InkAmber, InkAmethyst, InkEmerald, InkRuby, InkSapphire, InkSteel}

// ParseInk parses an ink color name (case-insensitive).
func ParseInk(s string) (Ink, error) {
	for _, ink := range Inks {
		if strings.EqualFold(s, ink.String()) {
			return ink, nil
		}
	}
	return InkNone, fmt.Errorf("unknown ink %q", s)
}

// ParseInks parses a comma-separated list of ink color names.
func ParseInks(s string) ([]Ink, error) {
	var inks []Ink
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ink, err := ParseInk(part)
		if err != nil {
			return nil, err
		}
		inks = append(inks, ink)
	}
	return inks, nil
}

type Type int

const (
	TypeCharacter Type = iota
	TypeAction
	TypeSong
	TypeItem
	TypeLocation
)

func (t Type) String() string {
	switch t {
	case TypeCharacter:
		return "Character"
	case TypeAction:
		return "Action"
	case TypeSong:
		return "Song"
	case TypeItem:
		return "Item"
	case TypeLocation:
		return "Location"
	default:
		return "Unknown"
	}
}

// Types lists every card type.
var Types = []Type{TypeCharacter, TypeAction, TypeSong, TypeItem, TypeLocation}

// ParseType parses a card type name (case-insensitive).
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return TypeCharacter, fmt.Errorf("unknown card type %q", s)
}

// Well-known keywords referenced by the composition rules.
const (
	KeywordShift  = "Shift"
	KeywordSinger = "Singer"
)

// ShiftWildcard is the base name of the card that any shift card may use as
// its anchor, regardless of name.
const ShiftWildcard = "Morph"

// DualNameSeparator splits a dual-identity display name into its halves.
const DualNameSeparator = " & "

// --- Card definition (static, from the catalog) ---

// Card is one printing in the catalog. Multiple printings of the same
// character share a Name but carry distinct IDs. The Required* sets are
// derived once at catalog load and treated as immutable afterwards.
type Card struct {
	ID              int
	Name            string
	Title           string
	Cost            int
	Ink             Ink
	Inkwell         bool
	Lore            int
	Types           []Type
	Keywords        []string
	Classifications []string
	Text            string
	SanitizedText   string

	// Derived mechanical flags, meaningful only when the matching
	// keyword is present.
	CanShift bool
	SingCost int

	// Derived requirement sets (see DeriveRequirements).
	RequiredKeywords        []string
	RequiredClassifications []string
	RequiredTypes           []Type
	RequiredCardNames       []string
}

func (c *Card) String() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// HasType reports whether the card carries the given type tag.
func (c *Card) HasType(t Type) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// HasKeyword reports whether the card carries the given keyword
// (case-insensitive).
func (c *Card) HasKeyword(k string) bool {
	for _, kw := range c.Keywords {
		if strings.EqualFold(kw, k) {
			return true
		}
	}
	return false
}

// HasClassification reports whether the card carries the given thematic
// classification (case-insensitive).
func (c *Card) HasClassification(cl string) bool {
	for _, cc := range c.Classifications {
		if strings.EqualFold(cc, cl) {
			return true
		}
	}
	return false
}

// NameParts returns the halves of a dual-identity name, or the whole name
// when no separator is present.
func (c *Card) NameParts() []string {
	if strings.Contains(c.Name, DualNameSeparator) {
		return strings.Split(c.Name, DualNameSeparator)
	}
	return []string{c.Name}
}

// IsSong reports whether the card is a song.
func (c *Card) IsSong() bool { return c.HasType(TypeSong) }

// IsSinger reports whether the card can sing songs above its cost.
func (c *Card) IsSinger() bool { return c.SingCost > 0 }
