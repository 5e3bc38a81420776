package dnd5e

import (
	"fmt"
	"strconv"
	"strings"
)

// HitDie is a die expression such as "d8"
type HitDie string

// Common hit dice
const (
	HitDieD6  HitDie = "d6"
	HitDieD8  HitDie = "d8"
	HitDieD10 HitDie = "d10"
	HitDieD12 HitDie = "d12"
)

// DefaultHitDie is used when neither the record nor the class supplies one
const DefaultHitDie = HitDieD8

// HitDieFromSize builds a HitDie from a die size
func HitDieFromSize(size int) HitDie {
	return HitDie(fmt.Sprintf("d%d", size))
}

// Size parses the die size. Accepts "d10", "D10", "1d10" and "10".
func (h HitDie) Size() (int, bool) {
	s := strings.ToLower(strings.TrimSpace(string(h)))
	if i := strings.IndexByte(s, 'd'); i >= 0 {
		if prefix := s[:i]; prefix != "" && prefix != "1" {
			return 0, false
		}
		s = s[i+1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Valid reports whether the die parses
func (h HitDie) Valid() bool {
	_, ok := h.Size()
	return ok
}

// HitPoints tracks a character's hit point state
type HitPoints struct {
	Max     int    `json:"max"`
	Current int    `json:"current"`
	Temp    int    `json:"temp"`
	HitDie  HitDie `json:"hit_die,omitempty"`
}

// Clamp returns a copy with Current in [0, Max] and Temp >= 0
func (hp HitPoints) Clamp() HitPoints {
	if hp.Max < 0 {
		hp.Max = 0
	}
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}
	if hp.Current < 0 {
		hp.Current = 0
	}
	if hp.Temp < 0 {
		hp.Temp = 0
	}
	return hp
}

// WithMax returns a copy using a new maximum and the current value clamped into range
func (hp HitPoints) WithMax(maxHP int) HitPoints {
	hp.Max = maxHP
	return hp.Clamp()
}

// ApplyDamage removes temporary hit points first, then current hit points.
// Current never drops below 0.
func (hp HitPoints) ApplyDamage(amount int) HitPoints {
	if amount <= 0 {
		return hp.Clamp()
	}
	if hp.Temp > 0 {
		absorbed := min(hp.Temp, amount)
		hp.Temp -= absorbed
		amount -= absorbed
	}
	hp.Current -= amount
	return hp.Clamp()
}

// Heal restores current hit points up to the maximum
func (hp HitPoints) Heal(amount int) HitPoints {
	if amount > 0 {
		hp.Current += amount
	}
	return hp.Clamp()
}

// SetTemporary grants temporary hit points. They do not stack; the higher value wins.
func (hp HitPoints) SetTemporary(amount int) HitPoints {
	if amount > hp.Temp {
		hp.Temp = amount
	}
	return hp.Clamp()
}
