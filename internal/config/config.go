package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/misenavi/shiftplanner/pkg/core/model"
)

// Policy holds the scheduling policy: quota defaults, weekday priority
// classes, the evening veteran rule and the labels used in the outputs.
// Defaults match the house rules baked into the weekly schedule; a YAML
// file can override any of them so test suites and other venues can run
// alternate policies without touching code.
type Policy struct {
	DefaultMinVeterans int `yaml:"defaultMinVeterans" validate:"gte=0"`
	DefaultMinKitchen  int `yaml:"defaultMinKitchen" validate:"gte=0"`

	// PeakDays get the highest weekday priority class, MidDays the middle
	// one; every other day gets the base class.
	PeakDays []string `yaml:"peakDays,omitempty" validate:"dive,required"`
	MidDays  []string `yaml:"midDays,omitempty" validate:"dive,required"`

	// EveningVeteranDays are the days whose slots starting at or after
	// EveningStartHour must include at least one veteran.
	EveningVeteranDays []string `yaml:"eveningVeteranDays,omitempty" validate:"dive,required"`
	EveningStartHour   int      `yaml:"eveningStartHour" validate:"gte=0,lte=24"`

	// KitchenKeywords mark an employee as kitchen staff when their role
	// label contains any of them.
	KitchenKeywords []string `yaml:"kitchenKeywords" validate:"min=1,dive,required"`

	// DayTokens maps locale-specific availability tokens (e.g. Japanese
	// day kanji) to canonical weekday names. English names and
	// abbreviations are always accepted.
	DayTokens map[string]string `yaml:"dayTokens,omitempty"`

	// Labels used in the schedule and human view outputs.
	VeteranTag       string `yaml:"veteranTag" validate:"required"`
	NewcomerTag      string `yaml:"newcomerTag" validate:"required"`
	UnderstaffedNote string `yaml:"understaffedNote" validate:"required"`

	// Cost report defaults, overridable per run from the CLI.
	TargetSales   float64 `yaml:"targetSales" validate:"gte=0"`
	MaxLaborRatio float64 `yaml:"maxLaborRatio" validate:"gt=0"`

	// Compiled lookup tables, populated by Validate.
	dayPriority     map[model.Weekday]int
	eveningVeterans map[model.Weekday]bool
	dayTokens       map[string]model.Weekday
}

// Weekday priority classes. Peak days are staffed first so scarce
// veteran and kitchen capacity is not exhausted by easier slots.
const (
	dayPriorityBase = 1
	dayPriorityMid  = 2
	dayPriorityPeak = 3
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the built-in policy: Friday/Saturday peak, Sunday mid,
// evening veteran rule from 17:00, one veteran and one kitchen hand per
// slot, Japanese day tokens accepted on input.
func Default() *Policy {
	p := &Policy{
		DefaultMinVeterans: 1,
		DefaultMinKitchen:  1,
		PeakDays:           []string{"Friday", "Saturday"},
		MidDays:            []string{"Sunday"},
		EveningVeteranDays: []string{"Friday", "Saturday"},
		EveningStartHour:   17,
		KitchenKeywords:    []string{"キッチン", "kitchen"},
		DayTokens: map[string]string{
			"月": "Monday",
			"火": "Tuesday",
			"水": "Wednesday",
			"木": "Thursday",
			"金": "Friday",
			"土": "Saturday",
			"日": "Sunday",
		},
		VeteranTag:       "veteran",
		NewcomerTag:      "newcomer",
		UnderstaffedNote: "understaffed",
		TargetSales:      700000,
		MaxLaborRatio:    0.25,
	}
	if err := Validate(p); err != nil {
		// The built-in policy is covered by tests; failing here means the
		// defaults above are broken.
		panic(err)
	}
	return p
}

// Load loads the policy from the path in SHIFTPLANNER_CONFIG, falling
// back to shiftplanner.yaml in the current directory, then to the
// built-in defaults when neither exists.
func Load() (*Policy, error) {
	if path := os.Getenv("SHIFTPLANNER_CONFIG"); path != "" {
		return LoadFromPath(path)
	}
	path := "shiftplanner.yaml"
	if _, err := os.Stat(path); err == nil {
		return LoadFromPath(path)
	}
	return Default(), nil
}

// LoadFromPath loads and validates the policy from a specific file.
// Fields omitted from the file keep their default values.
func LoadFromPath(path string) (*Policy, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid policy in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate runs struct validation, resolves every configured weekday
// name and compiles the lookup tables used during scheduling.
func Validate(p *Policy) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}

	p.dayPriority = make(map[model.Weekday]int)
	for _, name := range p.MidDays {
		day, err := model.ParseWeekday(name)
		if err != nil {
			return fmt.Errorf("invalid midDays entry: %w", err)
		}
		p.dayPriority[day] = dayPriorityMid
	}
	for _, name := range p.PeakDays {
		day, err := model.ParseWeekday(name)
		if err != nil {
			return fmt.Errorf("invalid peakDays entry: %w", err)
		}
		p.dayPriority[day] = dayPriorityPeak
	}

	p.eveningVeterans = make(map[model.Weekday]bool)
	for _, name := range p.EveningVeteranDays {
		day, err := model.ParseWeekday(name)
		if err != nil {
			return fmt.Errorf("invalid eveningVeteranDays entry: %w", err)
		}
		p.eveningVeterans[day] = true
	}

	p.dayTokens = make(map[string]model.Weekday)
	for token, name := range p.DayTokens {
		day, err := model.ParseWeekday(name)
		if err != nil {
			return fmt.Errorf("invalid dayTokens mapping for %q: %w", token, err)
		}
		p.dayTokens[token] = day
	}

	return nil
}

// DayPriority returns the priority class for a weekday.
func (p *Policy) DayPriority(day model.Weekday) int {
	if pri, ok := p.dayPriority[day]; ok {
		return pri
	}
	return dayPriorityBase
}

// BlockPriority ranks dinner-like blocks above lunch-like blocks.
func (p *Policy) BlockPriority(block model.Block) int {
	if block == model.BlockDinner {
		return 2
	}
	return 1
}

// RequiresEveningVeteran reports whether a slot on the given day starting
// at the given hour falls under the evening veteran rule.
func (p *Policy) RequiresEveningVeteran(day model.Weekday, startHour int) bool {
	return p.eveningVeterans[day] && startHour >= p.EveningStartHour
}

// ResolveDayToken parses one availability token, consulting the
// configured token table before the canonical English names.
func (p *Policy) ResolveDayToken(token string) (model.Weekday, error) {
	if day, ok := p.dayTokens[token]; ok {
		return day, nil
	}
	return model.ParseWeekday(token)
}

// IsKitchen reports whether the employee counts toward kitchen quotas
// under this policy.
func (p *Policy) IsKitchen(e model.Employee) bool {
	return e.IsKitchen(p.KitchenKeywords)
}

// SeniorityTag returns the display tag for an employee's seniority.
func (p *Policy) SeniorityTag(e model.Employee) string {
	if e.Newcomer {
		return p.NewcomerTag
	}
	return p.VeteranTag
}
