package engine

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// Defaults applied to records that are missing hit points
const (
	DefaultMaxHP     = 10
	DefaultCurrentHP = 10
)

// Normalize turns a loose character record into one that satisfies every
// invariant the calculators rely on. It never fails and never modifies its
// input: bad or missing values are replaced with defaults.
func Normalize(record *dnd5e.PartialCharacter) *dnd5e.Character {
	if record == nil {
		record = &dnd5e.PartialCharacter{}
	}

	return &dnd5e.Character{
		ID:            record.ID,
		PlayerID:      record.PlayerID,
		Name:          strings.TrimSpace(record.Name),
		Level:         normalizeLevel(record.Level),
		ClassID:       normalizeID(record.ClassID),
		RaceID:        normalizeID(record.RaceID),
		AbilityScores: normalizeAbilityScores(record.AbilityScores),
		Armor:         normalizeArmor(record.Armor),
		HitPoints:     normalizeHitPoints(record.HitPoints),
		Skills:        normalizeSkills(record.Skills),
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

func normalizeID(s string) string {
	return dnd5e.NormalizeID(s)
}

func normalizeLevel(v interface{}) int {
	level, ok := toInt(v)
	if !ok {
		return dnd5e.MinLevel
	}
	return ClampLevel(level)
}

func normalizeAbilityScores(raw map[string]interface{}) dnd5e.AbilityScores {
	scores := make(dnd5e.AbilityScores, len(dnd5e.Abilities))
	for _, a := range dnd5e.Abilities {
		scores[a] = dnd5e.DefaultAbilityScore
	}

	// the exact canonical key wins, then any other spelling of the full name,
	// then the abbreviation; ties go to the first key in sorted order
	rank := make(map[dnd5e.Ability]int, len(dnd5e.Abilities))
	for _, key := range sortedKeys(raw) {
		ability, ok := dnd5e.ParseAbility(key)
		if !ok {
			continue
		}
		r := abilityKeyRank(key, ability)
		if prev, seen := rank[ability]; seen && prev <= r {
			continue
		}
		rank[ability] = r

		score, ok := toInt(raw[key])
		if !ok || score < dnd5e.MinAbilityScore || score > dnd5e.MaxAbilityScore {
			score = dnd5e.DefaultAbilityScore
		}
		scores[ability] = score
	}
	return scores
}

func abilityKeyRank(key string, ability dnd5e.Ability) int {
	trimmed := strings.TrimSpace(key)
	switch {
	case trimmed == string(ability):
		return 0
	case strings.EqualFold(trimmed, string(ability)):
		return 1
	default:
		return 2
	}
}

func normalizeArmor(raw *dnd5e.PartialArmor) dnd5e.Armor {
	if raw == nil {
		return dnd5e.Armor{Type: dnd5e.ArmorTypeNone}
	}
	armorType := normalizeID(raw.Type)
	if armorType == "" {
		armorType = dnd5e.ArmorTypeNone
	}
	return dnd5e.Armor{Type: armorType, Shield: toBool(raw.Shield)}
}

func normalizeHitPoints(raw *dnd5e.PartialHitPoints) dnd5e.HitPoints {
	if raw == nil {
		return dnd5e.HitPoints{Max: DefaultMaxHP, Current: DefaultCurrentHP}
	}

	hp := dnd5e.HitPoints{Max: DefaultMaxHP}
	if v, ok := toInt(raw.Max); ok && v >= 0 {
		hp.Max = v
	}
	hp.Current = hp.Max
	if v, ok := toInt(raw.Current); ok {
		hp.Current = v
	}
	if v, ok := toInt(raw.Temp); ok {
		hp.Temp = v
	}
	if die := dnd5e.HitDie(strings.ToLower(strings.TrimSpace(raw.HitDie))); die.Valid() {
		hp.HitDie = die
	}
	return hp.Clamp()
}

func normalizeSkills(raw map[string]*dnd5e.PartialSkill) map[dnd5e.SkillID]dnd5e.SkillProficiency {
	skills := make(map[dnd5e.SkillID]dnd5e.SkillProficiency, len(raw))
	// a key already in canonical form beats any other spelling of the same skill
	canonical := make(map[dnd5e.SkillID]bool, len(raw))
	for _, key := range sortedKeys(raw) {
		v := raw[key]
		id := dnd5e.ParseSkillID(key)
		if id == "" || v == nil {
			continue
		}
		exact := key == string(id)
		if _, seen := skills[id]; seen && (canonical[id] || !exact) {
			continue
		}
		canonical[id] = exact

		bonus, _ := toInt(v.Bonus)
		skills[id] = dnd5e.SkillProficiency{
			Proficient: toBool(v.Proficient),
			Expertise:  toBool(v.Expertise),
			Bonus:      bonus,
		}
	}
	return skills
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toInt reads an integer out of whatever a decoder produced. NaN, infinities,
// empty strings and non-numeric strings are rejected; fractions are floored.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(math.Floor(f)), true
}

func toBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	default:
		n, ok := toInt(v)
		return ok && n != 0
	}
}
