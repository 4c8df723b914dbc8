package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every behaviour knob the agent reads. Values are loadable
// from YAML so match configurations can be swapped without a rebuild; the
// zero-value fields of a partial file fall back to the defaults.
type Tuning struct {
	BoardSize int `yaml:"board_size"`

	// Turn thresholds splitting the episode into three strategy phases.
	MidgameTurn  int `yaml:"midgame_turn"`  // first turn of the all-attack phase
	LategameTurn int `yaml:"lategame_turn"` // first turn of the split explore/defend phase

	// Weapon envelope shared by all roles in the final behaviour set.
	FireRadius int `yaml:"fire_radius"`

	// Ships below this health never get reassigned to attack, and defenders
	// at or below it fall back to the home planet.
	LowHPThreshold int `yaml:"low_hp_threshold"`

	// Random-walk screening around the home planet.
	WalkLeash    int `yaml:"walk_leash"`    // max Manhattan distance from home
	WalkAttempts int `yaml:"walk_attempts"` // samples before the degenerate fallback

	// MaxMoveSpeed caps every move command.
	MaxMoveSpeed int `yaml:"max_move_speed"`

	// Construction: build min(cap, resources/divisor) ships per tick.
	ConstructionDivisor int `yaml:"construction_divisor"`
	ConstructionCap     int `yaml:"construction_cap"`
}

// DefaultTuning returns the tournament defaults.
func DefaultTuning() *Tuning {
	return &Tuning{
		BoardSize:           100,
		MidgameTurn:         250,
		LategameTurn:        500,
		FireRadius:          8,
		LowHPThreshold:      30,
		WalkLeash:           15,
		WalkAttempts:        10,
		MaxMoveSpeed:        3,
		ConstructionDivisor: 100,
		ConstructionCap:     10,
	}
}

// LoadTuning reads a YAML tuning file, overlaying it on the defaults so a
// file only needs to name the knobs it changes.
func LoadTuning(path string) (*Tuning, error) {
	tu := DefaultTuning()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(b, tu); err != nil {
		return nil, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := tu.validate(); err != nil {
		return nil, fmt.Errorf("tuning %s: %w", path, err)
	}
	return tu, nil
}

func (tu *Tuning) validate() error {
	if tu.BoardSize <= 0 {
		return fmt.Errorf("board_size must be positive, got %d", tu.BoardSize)
	}
	if tu.MidgameTurn > tu.LategameTurn {
		return fmt.Errorf("midgame_turn %d exceeds lategame_turn %d", tu.MidgameTurn, tu.LategameTurn)
	}
	if tu.FireRadius <= 0 {
		return fmt.Errorf("fire_radius must be positive, got %d", tu.FireRadius)
	}
	if tu.WalkAttempts <= 0 {
		return fmt.Errorf("walk_attempts must be positive, got %d", tu.WalkAttempts)
	}
	if tu.MaxMoveSpeed <= 0 || tu.MaxMoveSpeed > 3 {
		return fmt.Errorf("max_move_speed must be in [1,3], got %d", tu.MaxMoveSpeed)
	}
	// Zero would divide the build-order resource count.
	if tu.ConstructionDivisor <= 0 {
		return fmt.Errorf("construction_divisor must be positive, got %d", tu.ConstructionDivisor)
	}
	if tu.WalkLeash <= 0 {
		return fmt.Errorf("walk_leash must be positive, got %d", tu.WalkLeash)
	}
	return nil
}
