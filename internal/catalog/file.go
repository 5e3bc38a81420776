package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// File names read by FileLoader
const (
	ArmorFile   = "armor.yaml"
	ClassesFile = "classes.yaml"
	SkillsFile  = "skills.yaml"
	RacesFile   = "races.yaml"
)

// FileLoader reads reference tables from YAML files in a directory.
// Missing files leave their table empty.
type FileLoader struct {
	dir string
}

// NewFileLoader creates a loader rooted at dir
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

// armorYAML lets max_dex_bonus be omitted; the category then decides it
type armorYAML struct {
	ID                  string             `yaml:"id"`
	Name                string             `yaml:"name"`
	BaseAC              int                `yaml:"base_ac"`
	MaxDexBonus         *dnd5e.MaxDexBonus `yaml:"max_dex_bonus"`
	StrengthRequirement int                `yaml:"strength_requirement"`
	StealthDisadvantage bool               `yaml:"stealth_disadvantage"`
	Category            string             `yaml:"category"`
}

type armorFile struct {
	Armor []armorYAML `yaml:"armor"`
}

type classesFile struct {
	Classes []dnd5e.ClassDefinition `yaml:"classes"`
}

type skillsFile struct {
	Skills []dnd5e.SkillDefinition `yaml:"skills"`
}

type racesFile struct {
	Races []dnd5e.RaceDefinition `yaml:"races"`
}

// Load implements Loader
func (l *FileLoader) Load(ctx context.Context) (*Tables, error) {
	info, err := os.Stat(l.dir)
	if err != nil {
		return nil, fmt.Errorf("catalog dir %s: %w", l.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog dir %s: not a directory", l.dir)
	}

	tables := &Tables{}

	var armor armorFile
	if err := l.readFile(ctx, ArmorFile, &armor); err != nil {
		return nil, err
	}
	for _, a := range armor.Armor {
		def := dnd5e.ArmorTypeDefinition{
			ID:                  a.ID,
			Name:                a.Name,
			BaseAC:              a.BaseAC,
			StrengthRequirement: a.StrengthRequirement,
			StealthDisadvantage: a.StealthDisadvantage,
			Category:            dnd5e.ArmorCategoryLight,
		}
		if a.Category != "" {
			def.Category = dnd5e.ParseArmorCategory(a.Category)
		}
		if a.MaxDexBonus != nil {
			def.MaxDexBonus = *a.MaxDexBonus
		} else {
			def.MaxDexBonus = DefaultMaxDexBonus(def.Category)
		}
		tables.Armor = append(tables.Armor, def)
	}

	var classes classesFile
	if err := l.readFile(ctx, ClassesFile, &classes); err != nil {
		return nil, err
	}
	tables.Classes = classes.Classes

	var skills skillsFile
	if err := l.readFile(ctx, SkillsFile, &skills); err != nil {
		return nil, err
	}
	tables.Skills = skills.Skills

	var races racesFile
	if err := l.readFile(ctx, RacesFile, &races); err != nil {
		return nil, err
	}
	tables.Races = races.Races

	return tables, nil
}

func (l *FileLoader) readFile(ctx context.Context, name string, out interface{}) error {
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path) // #nosec G304 -- path is built from the configured catalog dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.DebugContext(ctx, "catalog file not found, table left empty", "path", path)
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// DefaultMaxDexBonus is the SRD dexterity cap for an armor category
func DefaultMaxDexBonus(category dnd5e.ArmorCategory) dnd5e.MaxDexBonus {
	switch category {
	case dnd5e.ArmorCategoryMedium:
		return 2
	case dnd5e.ArmorCategoryHeavy, dnd5e.ArmorCategoryShield:
		return 0
	default:
		return dnd5e.DexBonusUnlimited
	}
}

// WriteDir writes tables as YAML files in dir, the format FileLoader reads
func WriteDir(dir string, tables *Tables) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	files := map[string]interface{}{
		ArmorFile:   map[string]interface{}{"armor": tables.Armor},
		ClassesFile: classesFile{Classes: tables.Classes},
		SkillsFile:  skillsFile{Skills: tables.Skills},
		RacesFile:   racesFile{Races: tables.Races},
	}
	for name, v := range files {
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
