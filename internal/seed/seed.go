// Package seed supplies generation seeds at the request boundary.
// The palette engine itself never invents a seed; callers that omit one get
// a pseudo-random 32-bit value from here before the engine is invoked.
package seed

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Mode determines how a seed is obtained.
type Mode string

const (
	// ModeManual uses a caller-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom draws a fresh seed (varies each run).
	ModeRandom Mode = "random"
)

// MaxSeed is the largest seed that survives the engine's 32-bit reduction
// unchanged.
const MaxSeed = math.MaxUint32

// Config holds configuration for seed resolution.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Resolve returns the seed described by config.
func Resolve(config Config) (int64, error) {
	switch config.Mode {
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		if *config.Value < 0 {
			return 0, fmt.Errorf("seed must be a non-negative number, got %d", *config.Value)
		}
		return *config.Value, nil
	case ModeRandom:
		return int64(Random()), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// Random returns a non-deterministic 32-bit seed.
func Random() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err == nil {
		return binary.LittleEndian.Uint32(buf[:])
	}
	// #nosec G115 -- truncation to 32 bits is the intent
	return uint32(time.Now().UnixNano())
}

// Parse converts a command-line seed value into a Config.
// "random" (or an empty string) selects ModeRandom; anything else must be a
// decimal integer in [0, MaxSeed].
func Parse(s string) (Config, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(ModeRandom)) {
		return Config{Mode: ModeRandom}, nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid seed %q: must be a non-negative integer or %q", s, ModeRandom)
	}
	if v < 0 {
		return Config{}, fmt.Errorf("invalid seed %q: must be non-negative", s)
	}
	if v > MaxSeed {
		return Config{}, fmt.Errorf("invalid seed %q: must not exceed %d", s, int64(MaxSeed))
	}
	return Config{Mode: ModeManual, Value: &v}, nil
}
