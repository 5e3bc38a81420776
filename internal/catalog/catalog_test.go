package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog"
	catalogmock "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog/mock"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

func TestBuiltin(t *testing.T) {
	c := catalog.Builtin()

	assert.Len(t, c.ListArmor(), 13)
	assert.Len(t, c.ListClasses(), 12)
	assert.Len(t, c.ListSkills(), len(dnd5e.StandardSkills))
	assert.Len(t, c.ListRaces(), 9)
	assert.Empty(t, c.FallbackTables())

	for _, id := range dnd5e.StandardSkills {
		def, ok := c.Skill(id)
		assert.True(t, ok, id)
		assert.NotEmpty(t, def.GoverningAbility, id)
	}

	t.Run("armor lookups", func(t *testing.T) {
		leather, ok := c.Armor("Leather")
		require.True(t, ok)
		assert.Equal(t, "leather-armor", leather.ID)
		assert.True(t, leather.MaxDexBonus.Unlimited())

		plate, ok := c.Armor(" plate-armor ")
		require.True(t, ok)
		assert.Equal(t, 15, plate.StrengthRequirement)

		chain, ok := c.Armor("Chain Mail")
		require.True(t, ok)
		assert.Equal(t, "chain-mail", chain.ID)

		_, ok = c.Armor("adamantine")
		assert.False(t, ok)
	})

	t.Run("class lookups", func(t *testing.T) {
		rogue, ok := c.Class("ROGUE")
		require.True(t, ok)
		assert.Equal(t, dnd5e.HitDieD8, rogue.HitDie)
		assert.False(t, rogue.Spellcasting)
		assert.True(t, rogue.HasSavingThrow(dnd5e.AbilityDexterity))

		wizard, ok := c.Class(dnd5e.ClassWizard)
		require.True(t, ok)
		assert.True(t, wizard.Spellcasting)
		assert.False(t, wizard.ProficientWithArmor(dnd5e.ArmorCategoryLight))
		assert.True(t, wizard.ProficientWithArmor(dnd5e.ArmorCategoryNone))
	})

	t.Run("listing is sorted", func(t *testing.T) {
		races := c.ListRaces()
		assert.Equal(t, dnd5e.RaceDragonborn, races[0].ID)
		assert.Equal(t, dnd5e.RaceTiefling, races[len(races)-1].ID)
	})
}

func TestNew_FallsBackPerTable(t *testing.T) {
	c := catalog.New(&catalog.Tables{
		Armor: []dnd5e.ArmorTypeDefinition{
			{ID: "Mithral-Shirt", BaseAC: 13, MaxDexBonus: 2, Category: dnd5e.ArmorCategoryMedium},
		},
		Races: []dnd5e.RaceDefinition{{ID: "kenku", Name: "Kenku", Speed: 30}},
	})

	assert.Equal(t, []string{catalog.TableClasses, catalog.TableSkills}, c.FallbackTables())

	mithral, ok := c.Armor("mithral-shirt")
	require.True(t, ok)
	assert.Equal(t, "mithral-shirt", mithral.Name)
	assert.Len(t, c.ListArmor(), 1)

	// ids the source does not carry still resolve from the built-in tables
	plate, ok := c.Armor("plate")
	require.True(t, ok)
	assert.Equal(t, 18, plate.BaseAC)

	_, ok = c.Race(dnd5e.RaceHalfling)
	assert.True(t, ok)
	_, ok = c.Class(dnd5e.ClassFighter)
	assert.True(t, ok)
}

func TestNew_NilTables(t *testing.T) {
	c := catalog.New(nil)

	assert.Equal(t,
		[]string{catalog.TableArmor, catalog.TableClasses, catalog.TableSkills, catalog.TableRaces},
		c.FallbackTables())
	assert.Equal(t, catalog.Builtin().ListArmor(), c.ListArmor())
}

func TestDefaultMaxDexBonus(t *testing.T) {
	assert.True(t, catalog.DefaultMaxDexBonus(dnd5e.ArmorCategoryLight).Unlimited())
	assert.Equal(t, dnd5e.MaxDexBonus(2), catalog.DefaultMaxDexBonus(dnd5e.ArmorCategoryMedium))
	assert.Equal(t, dnd5e.MaxDexBonus(0), catalog.DefaultMaxDexBonus(dnd5e.ArmorCategoryHeavy))
}

type LoadTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	loader *catalogmock.MockLoader
	ctx    context.Context
}

func TestLoadSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}

func (s *LoadTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.loader = catalogmock.NewMockLoader(s.ctrl)
	s.ctx = context.Background()
}

func (s *LoadTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LoadTestSuite) TestNilLoader() {
	c := catalog.Load(s.ctx, nil)
	s.Len(c.FallbackTables(), 4)
}

func (s *LoadTestSuite) TestLoaderFailure() {
	s.loader.EXPECT().Load(s.ctx).Return(nil, errors.New("connection refused"))

	c := catalog.Load(s.ctx, s.loader)

	s.Len(c.FallbackTables(), 4)
	_, ok := c.Class(dnd5e.ClassBard)
	s.True(ok)
}

func (s *LoadTestSuite) TestEmptyTables() {
	s.loader.EXPECT().Load(s.ctx).Return(&catalog.Tables{}, nil)

	c := catalog.Load(s.ctx, s.loader)

	s.Len(c.FallbackTables(), 4)
	s.Len(c.ListSkills(), len(dnd5e.StandardSkills))
}

func (s *LoadTestSuite) TestLoadedTables() {
	s.loader.EXPECT().Load(s.ctx).Return(&catalog.Tables{
		Skills: []dnd5e.SkillDefinition{
			{ID: "Cooking", Name: "Cooking", GoverningAbility: dnd5e.AbilityWisdom},
		},
	}, nil)

	c := catalog.Load(s.ctx, s.loader)

	s.Equal([]string{catalog.TableArmor, catalog.TableClasses, catalog.TableRaces}, c.FallbackTables())
	cooking, ok := c.Skill("cooking")
	s.Require().True(ok)
	s.Equal(dnd5e.AbilityWisdom, cooking.GoverningAbility)
}

func TestFileLoader_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	builtin := catalog.BuiltinTables()
	require.NoError(t, catalog.WriteDir(dir, builtin))

	for _, name := range []string{catalog.ArmorFile, catalog.ClassesFile, catalog.SkillsFile, catalog.RacesFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	c := catalog.Load(context.Background(), catalog.NewFileLoader(dir))

	assert.Empty(t, c.FallbackTables())
	assert.Equal(t, catalog.Builtin().ListArmor(), c.ListArmor())
	assert.Equal(t, catalog.Builtin().ListSkills(), c.ListSkills())
	assert.Equal(t, catalog.Builtin().ListRaces(), c.ListRaces())
	require.Len(t, c.ListClasses(), len(builtin.Classes))

	fighter, ok := c.Class(dnd5e.ClassFighter)
	require.True(t, ok)
	assert.Equal(t, dnd5e.HitDieD10, fighter.HitDie)
	assert.Equal(t, []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution}, fighter.SavingThrows)
	assert.True(t, fighter.ProficientWithArmor(dnd5e.ArmorCategoryHeavy))
}

func TestFileLoader_HandWritten(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, catalog.ArmorFile, `
armor:
  - id: mithral-shirt
    name: Mithral Shirt
    base_ac: 13
    category: medium
  - id: silk-vest
    name: Silk Vest
    base_ac: 11
    max_dex_bonus: unlimited
  - id: iron-coat
    name: Iron Coat
    base_ac: 15
    max_dex_bonus: 1
    category: Heavy Armor
    strength_requirement: 14
`)
	writeFile(t, dir, catalog.RacesFile, `
races:
  - id: Kenku
    name: Kenku
    speed: 30
`)

	tables, err := catalog.NewFileLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tables.Armor, 3)
	assert.Empty(t, tables.Classes)
	assert.Empty(t, tables.Skills)

	assert.Equal(t, dnd5e.MaxDexBonus(2), tables.Armor[0].MaxDexBonus)
	assert.Equal(t, dnd5e.ArmorCategoryMedium, tables.Armor[0].Category)
	assert.True(t, tables.Armor[1].MaxDexBonus.Unlimited())
	assert.Equal(t, dnd5e.ArmorCategoryLight, tables.Armor[1].Category)
	assert.Equal(t, dnd5e.MaxDexBonus(1), tables.Armor[2].MaxDexBonus)
	assert.Equal(t, dnd5e.ArmorCategoryHeavy, tables.Armor[2].Category)

	c := catalog.New(tables)
	assert.Equal(t, []string{catalog.TableClasses, catalog.TableSkills}, c.FallbackTables())
	_, ok := c.Race("kenku")
	assert.True(t, ok)
}

func TestFileLoader_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing dir", func(t *testing.T) {
		_, err := catalog.NewFileLoader(filepath.Join(t.TempDir(), "nope")).Load(ctx)
		assert.Error(t, err)
	})

	t.Run("not a dir", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "armor.txt", "plain")
		_, err := catalog.NewFileLoader(filepath.Join(dir, "armor.txt")).Load(ctx)
		assert.ErrorContains(t, err, "not a directory")
	})

	t.Run("bad yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, catalog.SkillsFile, "skills: [unclosed")
		_, err := catalog.NewFileLoader(dir).Load(ctx)
		assert.ErrorContains(t, err, "parse")
	})

	t.Run("bad max dex bonus", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, catalog.ArmorFile, "armor:\n  - id: odd\n    max_dex_bonus: lots\n")
		_, err := catalog.NewFileLoader(dir).Load(ctx)
		assert.ErrorContains(t, err, "max dex bonus")
	})

	t.Run("failed load degrades to built-in", func(t *testing.T) {
		c := catalog.Load(ctx, catalog.NewFileLoader(filepath.Join(t.TempDir(), "nope")))
		assert.Len(t, c.FallbackTables(), 4)
	})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
