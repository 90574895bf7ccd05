package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"inkforge/internal/card"
)

// Config collects every tunable constant in the weight heuristic so a run
// (or a test) can swap the whole tuning at once instead of editing
// scattered literals.
type Config struct {
	DeckSize  int `yaml:"deck_size"`
	MaxCopies int `yaml:"max_copies"`

	// Base components.
	BaseWeight    float64 `yaml:"base_weight"`
	CostExponent  float64 `yaml:"cost_exponent"`
	InkwellBonus  float64 `yaml:"inkwell_bonus"`
	LoreBase      float64 `yaml:"lore_base"`
	TextBonus     float64 `yaml:"text_bonus"`
	NoTextPenalty float64 `yaml:"no_text_penalty"`

	CharacterFactor float64 `yaml:"character_factor"`
	ActionFactor    float64 `yaml:"action_factor"`
	SongFactor      float64 `yaml:"song_factor"`
	ItemFactor      float64 `yaml:"item_factor"`
	LocationFactor  float64 `yaml:"location_factor"`

	// Soft quotas per secondary type, with an exponential boost per deck
	// card demanding that type.
	SongQuota     int     `yaml:"song_quota"`
	ItemQuota     int     `yaml:"item_quota"`
	LocationQuota int     `yaml:"location_quota"`
	ActionQuota   int     `yaml:"action_quota"`
	TypeNeedBase  float64 `yaml:"type_need_base"`

	// Cross-synergy boosts per satisfied requirement dimension.
	KeywordSynergy        float64 `yaml:"keyword_synergy"`
	ClassificationSynergy float64 `yaml:"classification_synergy"`
	TypeSynergy           float64 `yaml:"type_synergy"`
	NameSynergy           float64 `yaml:"name_synergy"`

	// Late-deck tightening.
	LateDeckSize     int     `yaml:"late_deck_size"`
	UnmetLatePenalty float64 `yaml:"unmet_late_penalty"`

	// Shift and singer shaping.
	ShiftAnchorBoost float64 `yaml:"shift_anchor_boost"`
	ShiftReadyBoost  float64 `yaml:"shift_ready_boost"`
	SingerSongBoost  float64 `yaml:"singer_song_boost"`
	CheapSongBoost   float64 `yaml:"cheap_song_boost"`

	// Repeat-count suppression curve: factor ((K-N)/K)^2 with K > MaxCopies.
	CopyCurveBase float64 `yaml:"copy_curve_base"`

	// Known-good phrase bonuses.
	DrawBonus      float64 `yaml:"draw_bonus"`
	BanishBonus    float64 `yaml:"banish_bonus"`
	BanishAllBonus float64 `yaml:"banish_all_bonus"`
	BounceBonus    float64 `yaml:"bounce_bonus"`
	RampBonus      float64 `yaml:"ramp_bonus"`

	// Additive term per point of "gain N lore".
	LorePointBonus float64 `yaml:"lore_point_bonus"`
}

// DefaultConfig returns the baseline tuning.
func DefaultConfig() Config {
	return Config{
		DeckSize:  60,
		MaxCopies: 4,

		BaseWeight:    100,
		CostExponent:  1.5,
		InkwellBonus:  1.2,
		LoreBase:      1.15,
		TextBonus:     1.25,
		NoTextPenalty: 0.6,

		CharacterFactor: 1.0,
		ActionFactor:    1.0,
		SongFactor:      0.8,
		ItemFactor:      0.7,
		LocationFactor:  0.7,

		SongQuota:     8,
		ItemQuota:     4,
		LocationQuota: 3,
		ActionQuota:   10,
		TypeNeedBase:  1.6,

		KeywordSynergy:        2.0,
		ClassificationSynergy: 2.5,
		TypeSynergy:           1.8,
		NameSynergy:           3.0,

		LateDeckSize:     42,
		UnmetLatePenalty: 0.02,

		ShiftAnchorBoost: 4.0,
		ShiftReadyBoost:  50,
		SingerSongBoost:  3.0,
		CheapSongBoost:   1.5,

		CopyCurveBase: 6,

		DrawBonus:      1.5,
		BanishBonus:    2.0,
		BanishAllBonus: 5.0,
		BounceBonus:    1.75,
		RampBonus:      2.0,

		LorePointBonus: 15,
	}
}

// LoadConfig reads a YAML tuning file layered over the defaults, so a file
// only needs to name the knobs it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config YAML: %w", err)
	}
	return cfg, nil
}

// quotaFor returns the soft ceiling for a secondary type, or false for
// types without one.
func (cfg Config) quotaFor(t card.Type) (int, bool) {
	switch t {
	case card.TypeSong:
		return cfg.SongQuota, true
	case card.TypeItem:
		return cfg.ItemQuota, true
	case card.TypeLocation:
		return cfg.LocationQuota, true
	case card.TypeAction:
		return cfg.ActionQuota, true
	default:
		return 0, false
	}
}

// typeFactor returns the base multiplier for the card's primary category.
func (cfg Config) typeFactor(c *card.Card) float64 {
	switch {
	case c.HasType(card.TypeCharacter):
		return cfg.CharacterFactor
	case c.HasType(card.TypeSong):
		return cfg.SongFactor
	case c.HasType(card.TypeAction):
		return cfg.ActionFactor
	case c.HasType(card.TypeItem):
		return cfg.ItemFactor
	case c.HasType(card.TypeLocation):
		return cfg.LocationFactor
	default:
		return 1.0
	}
}
