// Package model defines domain models for pool share accounting and settlement.
package model

import (
	"fmt"
	"strings"
)

// MinerClass identifies the share difficulty class a miner connects with.
type MinerClass uint8

const (
	// ClassLow is the entry class for small devices.
	ClassLow MinerClass = iota + 1
	// ClassMedium is the default class.
	ClassMedium
	// ClassHigh is reserved for large farms.
	ClassHigh
)

// MinerClasses lists every known class in ascending difficulty order.
var MinerClasses = []MinerClass{ClassLow, ClassMedium, ClassHigh}

// String implements fmt.Stringer.
func (c MinerClass) String() string {
	switch c {
	case ClassLow:
		return "low"
	case ClassMedium:
		return "medium"
	case ClassHigh:
		return "high"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Valid reports whether c is a known class.
func (c MinerClass) Valid() bool {
	return c >= ClassLow && c <= ClassHigh
}

// ParseMinerClass converts a class name into a MinerClass.
func ParseMinerClass(s string) (MinerClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return ClassLow, nil
	case "medium", "mid":
		return ClassMedium, nil
	case "high":
		return ClassHigh, nil
	default:
		return 0, fmt.Errorf("unknown miner class %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c MinerClass) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid miner class %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *MinerClass) UnmarshalText(text []byte) error {
	parsed, err := ParseMinerClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
