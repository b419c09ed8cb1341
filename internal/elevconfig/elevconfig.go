// Package elevconfig loads SimulationProperties from a YAML file or a
// Java-properties style key=value file. Loading never fails: a missing or
// malformed file yields the full default set, and a single bad value falls
// back to that value's default.
package elevconfig

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/dinaMadelen/elevsim/internal/elevconsts"
	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var Log = logger.GetLogger()

const (
	KeyFloors            = "floors"
	KeyArrivalProb       = "passengers"
	KeyElevators         = "elevators"
	KeyElevatorCapacity  = "elevatorCapacity"
	KeyDuration          = "duration"
	KeyMaxTravelDistance = "maxTravelDistance"
	KeyListType          = "listType"
	KeySeed              = "seed"
	KeyIncludeInTransit  = "includeInTransit"
)

var (
	ErrNoPath        = errors.New("no properties file provided")
	ErrOutOfRange    = errors.New("value out of range")
	ErrMalformedLine = errors.New("malformed properties line")
)

// LoadError means the whole file was unusable and defaults were used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FieldError means one value was unusable and its default was used.
type FieldError struct {
	Key   string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("property %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

type SimulationProperties struct {
	Floors            int
	ArrivalProb       float64
	Elevators         int
	ElevatorCapacity  int
	Duration          int
	MaxTravelDistance int
	Storage           elevconsts.StorageKind
	Seed              int64
	SeedSet           bool
	IncludeInTransit  bool

	fileLoaded  bool
	loadErr     error
	fieldErrors []error
}

func Defaults() *SimulationProperties {
	return &SimulationProperties{
		Floors:            elevconsts.DefaultFloors,
		ArrivalProb:       elevconsts.DefaultArrivalProb,
		Elevators:         elevconsts.DefaultElevators,
		ElevatorCapacity:  elevconsts.DefaultElevatorCapacity,
		Duration:          elevconsts.DefaultDuration,
		MaxTravelDistance: elevconsts.DefaultMaxTravelDistance,
		Storage:           elevconsts.DefaultStorage,
	}
}

// Load reads path. Files ending in .yaml or .yml are parsed as YAML, anything
// else as key=value properties.
func Load(path string) *SimulationProperties {
	props := Defaults()
	if path == "" {
		props.loadErr = &LoadError{Err: ErrNoPath}
		return props
	}

	var values map[string]string
	var lineErrs []*FieldError
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		values, err = readYAML(path)
	default:
		values, lineErrs, err = readProperties(path)
	}
	if err != nil {
		props.loadErr = &LoadError{Path: path, Err: err}
		Log.Warn().Err(err).Msgf("Error reading properties file %s, using default values", path)
		return props
	}

	props.fileLoaded = true
	for _, lineErr := range lineErrs {
		props.addFieldError(lineErr)
	}
	props.Apply(values)
	return props
}

// readProperties parses path one line at a time so that a malformed line only
// loses itself. Blank lines and lines starting with # or ! are comments.
func readProperties(path string) (map[string]string, []*FieldError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	values := map[string]string{}
	var lineErrs []*FieldError
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		key, value, err := parsePropertiesLine(line)
		if err != nil {
			lineErrs = append(lineErrs, &FieldError{Key: fmt.Sprintf("line %d", i+1), Value: line, Err: err})
			continue
		}
		values[key] = value
	}
	return values, lineErrs, nil
}

// parsePropertiesLine splits a line on the first = or :, or on the first
// whitespace when neither is present. The value goes through godotenv for
// quoting and inline comments.
func parsePropertiesLine(line string) (string, string, error) {
	sep := strings.IndexAny(line, "=:")
	if sep < 0 {
		sep = strings.IndexAny(line, " \t")
	}
	if sep < 0 {
		return "", "", fmt.Errorf("%w: no separator", ErrMalformedLine)
	}

	key := strings.TrimSpace(line[:sep])
	if !validKey(key) {
		return "", "", fmt.Errorf("%w: bad key %q", ErrMalformedLine, key)
	}
	rest := strings.TrimLeft(line[sep:], " \t")
	rest = strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(rest, "="), ":"), " \t")

	parsed, err := godotenv.Unmarshal(key + "=" + rest)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return key, parsed[key], nil
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			return false
		}
	}
	return true
}

func readYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		if value == nil {
			continue
		}
		values[key] = fmt.Sprint(value)
	}
	return values, nil
}

// Apply overrides the properties present in values. Keys that are absent
// keep their current value.
func (p *SimulationProperties) Apply(values map[string]string) {
	p.Floors = p.intField(values, KeyFloors, p.Floors, 1)
	p.Elevators = p.intField(values, KeyElevators, p.Elevators, 0)
	p.ElevatorCapacity = p.intField(values, KeyElevatorCapacity, p.ElevatorCapacity, 0)
	p.Duration = p.intField(values, KeyDuration, p.Duration, 0)
	p.MaxTravelDistance = p.intField(values, KeyMaxTravelDistance, p.MaxTravelDistance, 0)

	if raw, ok := lookup(values, KeyArrivalProb); ok {
		prob, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			p.fieldError(KeyArrivalProb, raw, err)
		case math.IsNaN(prob) || prob < 0 || prob > 1:
			p.fieldError(KeyArrivalProb, raw, ErrOutOfRange)
		default:
			p.ArrivalProb = prob
		}
	}

	if raw, ok := lookup(values, KeyListType); ok {
		p.Storage = ParseStorageKind(raw)
	}

	if raw, ok := lookup(values, KeySeed); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			p.fieldError(KeySeed, raw, err)
		} else {
			p.Seed = seed
			p.SeedSet = true
		}
	}

	if raw, ok := lookup(values, KeyIncludeInTransit); ok {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			p.fieldError(KeyIncludeInTransit, raw, err)
		} else {
			p.IncludeInTransit = include
		}
	}
}

func lookup(values map[string]string, key string) (string, bool) {
	raw, ok := values[key]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

func (p *SimulationProperties) intField(values map[string]string, key string, current, minimum int) int {
	raw, ok := lookup(values, key)
	if !ok {
		return current
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		p.fieldError(key, raw, err)
		return current
	}
	if value < minimum {
		p.fieldError(key, raw, fmt.Errorf("%w: minimum is %d", ErrOutOfRange, minimum))
		return current
	}
	return value
}

func (p *SimulationProperties) fieldError(key, raw string, err error) {
	p.addFieldError(&FieldError{Key: key, Value: raw, Err: err})
}

func (p *SimulationProperties) addFieldError(fieldErr *FieldError) {
	p.fieldErrors = append(p.fieldErrors, fieldErr)
	Log.Warn().Msgf("Invalid %v, using default", fieldErr)
}

// ParseStorageKind accepts the listType spellings. Anything that is not a
// linked list is array-backed.
func ParseStorageKind(raw string) elevconsts.StorageKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "linked", "linkedlist":
		return elevconsts.Linked
	default:
		return elevconsts.ArrayBacked
	}
}

// FileLoaded reports whether the values came from a file.
func (p *SimulationProperties) FileLoaded() bool { return p.fileLoaded }

func (p *SimulationProperties) LoadErr() error { return p.loadErr }

func (p *SimulationProperties) FieldErrors() []error {
	out := make([]error, len(p.fieldErrors))
	copy(out, p.fieldErrors)
	return out
}

func (p *SimulationProperties) String() string {
	return fmt.Sprintf("floors=%d passengers=%v elevators=%d elevatorCapacity=%d duration=%d maxTravelDistance=%d listType=%s includeInTransit=%v",
		p.Floors, p.ArrivalProb, p.Elevators, p.ElevatorCapacity, p.Duration, p.MaxTravelDistance, p.Storage, p.IncludeInTransit)
}
