package dnd5e_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

func TestMaxDexBonus_JSON(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		data, err := json.Marshal([]dnd5e.MaxDexBonus{dnd5e.DexBonusUnlimited, 2, 0})
		require.NoError(t, err)
		assert.JSONEq(t, `["unlimited", 2, 0]`, string(data))
	})

	t.Run("decode", func(t *testing.T) {
		var got []dnd5e.MaxDexBonus
		require.NoError(t, json.Unmarshal([]byte(`["unlimited", "UNLIMITED", 2, "3", -1, null]`), &got))
		assert.Equal(t, []dnd5e.MaxDexBonus{
			dnd5e.DexBonusUnlimited, dnd5e.DexBonusUnlimited, 2, 3, 0, dnd5e.DexBonusUnlimited,
		}, got)
	})

	t.Run("decode garbage", func(t *testing.T) {
		var got dnd5e.MaxDexBonus
		assert.Error(t, json.Unmarshal([]byte(`"plenty"`), &got))
		assert.Error(t, json.Unmarshal([]byte(`true`), &got))
	})
}

func TestMaxDexBonus_YAML(t *testing.T) {
	var doc struct {
		Caps []dnd5e.MaxDexBonus `yaml:"caps"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("caps: [unlimited, 2, 0]"), &doc))
	assert.Equal(t, []dnd5e.MaxDexBonus{dnd5e.DexBonusUnlimited, 2, 0}, doc.Caps)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "unlimited")

	err = yaml.Unmarshal([]byte("caps: [[1]]"), &doc)
	assert.ErrorContains(t, err, "must be a scalar")
}

func TestMaxDexBonus_Cap(t *testing.T) {
	assert.Equal(t, 0, dnd5e.DexBonusUnlimited.Cap())
	assert.Equal(t, 0, dnd5e.MaxDexBonus(-5).Cap())
	assert.Equal(t, 2, dnd5e.MaxDexBonus(2).Cap())
	assert.Equal(t, "unlimited", dnd5e.DexBonusUnlimited.String())
	assert.Equal(t, "2", dnd5e.MaxDexBonus(2).String())
}

func TestHitDie_Size(t *testing.T) {
	valid := map[dnd5e.HitDie]int{
		"d8": 8, "D10": 10, "1d12": 12, "6": 6, " d6 ": 6,
	}
	for die, size := range valid {
		got, ok := die.Size()
		assert.True(t, ok, die)
		assert.Equal(t, size, got, die)
	}

	for _, die := range []dnd5e.HitDie{"", "d", "dX", "2d6", "d0", "d-4"} {
		_, ok := die.Size()
		assert.False(t, ok, die)
		assert.False(t, die.Valid(), die)
	}

	assert.Equal(t, dnd5e.HitDieD12, dnd5e.HitDieFromSize(12))
}

func TestHitPoints(t *testing.T) {
	hp := dnd5e.HitPoints{Max: 30, Current: 20}

	t.Run("temporary hit points absorb damage first", func(t *testing.T) {
		got := hp.SetTemporary(5).ApplyDamage(8)
		assert.Equal(t, dnd5e.HitPoints{Max: 30, Current: 17}, got)
	})

	t.Run("damage stops at zero", func(t *testing.T) {
		assert.Equal(t, 0, hp.ApplyDamage(500).Current)
	})

	t.Run("negative damage is ignored", func(t *testing.T) {
		assert.Equal(t, hp, hp.ApplyDamage(-4))
	})

	t.Run("healing stops at max", func(t *testing.T) {
		assert.Equal(t, 30, hp.Heal(100).Current)
		assert.Equal(t, 20, hp.Heal(-3).Current)
	})

	t.Run("temporary hit points do not stack", func(t *testing.T) {
		got := hp.SetTemporary(8).SetTemporary(3)
		assert.Equal(t, 8, got.Temp)
		assert.Equal(t, 10, got.SetTemporary(10).Temp)
	})

	t.Run("lower max clamps current", func(t *testing.T) {
		assert.Equal(t, dnd5e.HitPoints{Max: 12, Current: 12}, hp.WithMax(12))
		assert.Equal(t, dnd5e.HitPoints{Max: 0, Current: 0}, hp.WithMax(-1))
	})

	t.Run("values are not shared", func(t *testing.T) {
		_ = hp.ApplyDamage(10)
		assert.Equal(t, 20, hp.Current)
	})
}

func TestParseAbility(t *testing.T) {
	for input, expected := range map[string]dnd5e.Ability{
		"strength": dnd5e.AbilityStrength,
		"STR":      dnd5e.AbilityStrength,
		" Dex ":    dnd5e.AbilityDexterity,
		"wis":      dnd5e.AbilityWisdom,
		"Charisma": dnd5e.AbilityCharisma,
	} {
		got, ok := dnd5e.ParseAbility(input)
		assert.True(t, ok, input)
		assert.Equal(t, expected, got, input)
	}

	_, ok := dnd5e.ParseAbility("luck")
	assert.False(t, ok)
}

func TestNormalizeID(t *testing.T) {
	for input, expected := range map[string]string{
		"Chain Mail":   "chain-mail",
		" chain_mail ": "chain-mail",
		"Half-Orc":     "half-orc",
		"":             "",
	} {
		assert.Equal(t, expected, dnd5e.NormalizeID(input), input)
	}
}

func TestParseSkillID(t *testing.T) {
	for input, expected := range map[string]dnd5e.SkillID{
		"Stealth":               dnd5e.SkillStealth,
		"Sleight of Hand":       dnd5e.SkillSleightOfHand,
		"sleight_of_hand":       dnd5e.SkillSleightOfHand,
		"skill-animal-handling": dnd5e.SkillAnimalHandling,
		"Cooking":               "cooking",
		"   ":                   "",
	} {
		assert.Equal(t, expected, dnd5e.ParseSkillID(input), input)
	}
}

func TestParseArmorProficiency(t *testing.T) {
	assert.Equal(t, []dnd5e.ArmorCategory{
		dnd5e.ArmorCategoryLight, dnd5e.ArmorCategoryMedium, dnd5e.ArmorCategoryHeavy,
	}, dnd5e.ParseArmorProficiency("All armor"))
	assert.Equal(t, []dnd5e.ArmorCategory{dnd5e.ArmorCategoryShield}, dnd5e.ParseArmorProficiency("Shields"))
	assert.Equal(t, []dnd5e.ArmorCategory{dnd5e.ArmorCategoryMedium}, dnd5e.ParseArmorProficiency("Medium Armor"))
	assert.Nil(t, dnd5e.ParseArmorProficiency("Exotic"))
}

func TestSkillProficiency_State(t *testing.T) {
	assert.Equal(t, dnd5e.ProficiencyNone, dnd5e.SkillProficiency{}.State())
	assert.Equal(t, dnd5e.ProficiencyProficient, dnd5e.SkillProficiency{Proficient: true}.State())
	assert.Equal(t, dnd5e.ProficiencyExpertise, dnd5e.SkillProficiency{Proficient: true, Expertise: true}.State())

	broken := dnd5e.SkillProficiency{Expertise: true}
	assert.Equal(t, dnd5e.ProficiencyExpertise, broken.State())
	assert.True(t, broken.Inconsistent())
}

func TestCharacter_Clone(t *testing.T) {
	original := &dnd5e.Character{
		ID:            "char_1",
		AbilityScores: dnd5e.AbilityScores{dnd5e.AbilityStrength: 15},
		Skills:        map[dnd5e.SkillID]dnd5e.SkillProficiency{dnd5e.SkillStealth: {Proficient: true}},
	}

	clone := original.Clone()
	clone.AbilityScores[dnd5e.AbilityStrength] = 8
	clone.Skills[dnd5e.SkillStealth] = dnd5e.SkillProficiency{}

	assert.Equal(t, 15, original.AbilityScores.Get(dnd5e.AbilityStrength))
	assert.True(t, original.Skill(dnd5e.SkillStealth).Proficient)
	assert.Equal(t, dnd5e.DefaultAbilityScore, original.AbilityScores.Get(dnd5e.AbilityWisdom))

	var nilChar *dnd5e.Character
	assert.Nil(t, nilChar.Clone())
}

func TestCharacter_ToPartialJSON(t *testing.T) {
	char := &dnd5e.Character{
		ID:            "char_2",
		Name:          "Tamsin",
		Level:         4,
		ClassID:       dnd5e.ClassBard,
		AbilityScores: dnd5e.AbilityScores{dnd5e.AbilityCharisma: 17},
		Armor:         dnd5e.Armor{Type: "leather-armor"},
		HitPoints:     dnd5e.HitPoints{Max: 27, Current: 20, Temp: 2, HitDie: dnd5e.HitDieD8},
		Skills:        map[dnd5e.SkillID]dnd5e.SkillProficiency{dnd5e.SkillPersuasion: {Proficient: true, Expertise: true}},
	}

	data, err := json.Marshal(char.ToPartial())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "bard", raw["class"])
	assert.Equal(t, float64(4), raw["level"])
	assert.Equal(t, map[string]interface{}{
		"max": float64(27), "current": float64(20), "temp": float64(2), "hit_die": "d8",
	}, raw["hp"])
}

func TestCharacter_AsEntity(t *testing.T) {
	entity := (&dnd5e.Character{ID: "char_3"}).AsEntity()

	assert.Equal(t, "char_3", entity.GetID())
	assert.Equal(t, dnd5e.EntityTypeCharacter, entity.GetType())
}
