package elevconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dinaMadelen/elevsim/internal/elevconsts"
	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) returned error %v", path, err)
	}
	return path
}

func checkDefaults(t *testing.T, props *SimulationProperties) {
	t.Helper()
	expected := Defaults()
	if props.Floors != expected.Floors ||
		props.ArrivalProb != expected.ArrivalProb ||
		props.Elevators != expected.Elevators ||
		props.ElevatorCapacity != expected.ElevatorCapacity ||
		props.Duration != expected.Duration ||
		props.MaxTravelDistance != expected.MaxTravelDistance ||
		props.Storage != expected.Storage {
		t.Errorf("properties = %v, expected defaults %v", props, expected)
	}
}

func TestDefaults(t *testing.T) {
	props := Defaults()
	if props.Floors != 32 || props.ArrivalProb != 0.03 || props.Elevators != 1 ||
		props.ElevatorCapacity != 10 || props.Duration != 500 || props.MaxTravelDistance != 5 ||
		props.Storage != elevconsts.ArrayBacked {
		t.Errorf("Defaults() = %v, expected 32/0.03/1/10/500/5/ArrayList", props)
	}
}

func TestLoadNoPath(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	props := Load("")
	if props.FileLoaded() {
		t.Errorf("FileLoaded() = true, expected false")
	}
	if !errors.Is(props.LoadErr(), ErrNoPath) {
		t.Errorf("LoadErr() = %v, expected %v", props.LoadErr(), ErrNoPath)
	}
	checkDefaults(t, props)
}

func TestLoadMissingFile(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	props := Load(filepath.Join(t.TempDir(), "missing.properties"))
	if props.FileLoaded() {
		t.Errorf("FileLoaded() = true, expected false")
	}
	var loadErr *LoadError
	if !errors.As(props.LoadErr(), &loadErr) {
		t.Errorf("LoadErr() = %v, expected a *LoadError", props.LoadErr())
	}
	checkDefaults(t, props)
}

func TestLoadUnreadableFile(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	props := Load(t.TempDir())
	if props.FileLoaded() {
		t.Errorf("FileLoaded() = true for a directory, expected false")
	}
	checkDefaults(t, props)
}

func TestLoadProperties(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	path := writeFile(t, "sim.properties", `# elevator simulation
floors=10
passengers=0.25
elevators=3
elevatorCapacity=4
duration=50
maxTravelDistance=2
listType=Linked
seed=42
`)

	props := Load(path)
	if !props.FileLoaded() {
		t.Fatalf("FileLoaded() = false, LoadErr() = %v", props.LoadErr())
	}
	if props.Floors != 10 || props.ArrivalProb != 0.25 || props.Elevators != 3 ||
		props.ElevatorCapacity != 4 || props.Duration != 50 || props.MaxTravelDistance != 2 {
		t.Errorf("Load() = %v, expected values from file", props)
	}
	if props.Storage != elevconsts.Linked {
		t.Errorf("Storage = %v, expected Linked", props.Storage)
	}
	if !props.SeedSet || props.Seed != 42 {
		t.Errorf("Seed = (%d, %v), expected (42, true)", props.Seed, props.SeedSet)
	}
	if len(props.FieldErrors()) != 0 {
		t.Errorf("FieldErrors() = %v, expected none", props.FieldErrors())
	}
}

func TestLoadPartialProperties(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	props := Load(writeFile(t, "sim.properties", "floors=12\n"))
	if props.Floors != 12 {
		t.Errorf("Floors = %d, expected 12", props.Floors)
	}
	if props.Duration != elevconsts.DefaultDuration {
		t.Errorf("Duration = %d, expected default %d", props.Duration, elevconsts.DefaultDuration)
	}
	if props.SeedSet {
		t.Errorf("SeedSet = true, expected false when no seed is given")
	}
}

func TestFieldFallback(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	path := writeFile(t, "sim.properties", `floors=lots
passengers=1.5
elevators=2
elevatorCapacity=-1
duration=abc
includeInTransit=maybe
`)

	props := Load(path)
	if !props.FileLoaded() {
		t.Fatalf("FileLoaded() = false, expected the file to load")
	}
	if props.Floors != elevconsts.DefaultFloors {
		t.Errorf("Floors = %d, expected default", props.Floors)
	}
	if props.ArrivalProb != elevconsts.DefaultArrivalProb {
		t.Errorf("ArrivalProb = %v, expected default", props.ArrivalProb)
	}
	if props.Elevators != 2 {
		t.Errorf("Elevators = %d, expected 2", props.Elevators)
	}
	if props.ElevatorCapacity != elevconsts.DefaultElevatorCapacity {
		t.Errorf("ElevatorCapacity = %d, expected default", props.ElevatorCapacity)
	}
	if props.Duration != elevconsts.DefaultDuration {
		t.Errorf("Duration = %d, expected default", props.Duration)
	}
	if props.IncludeInTransit {
		t.Errorf("IncludeInTransit = true, expected default false")
	}

	fieldErrors := props.FieldErrors()
	if len(fieldErrors) != 5 {
		t.Fatalf("FieldErrors() returned %d errors, expected 5: %v", len(fieldErrors), fieldErrors)
	}
	outOfRange := 0
	for _, err := range fieldErrors {
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Errorf("FieldErrors() contains %v, expected *FieldError", err)
		}
		if errors.Is(err, ErrOutOfRange) {
			outOfRange++
		}
	}
	if outOfRange != 2 {
		t.Errorf("%d out-of-range errors, expected 2 (passengers, elevatorCapacity)", outOfRange)
	}
}

func TestMalformedLinesOnlyLoseThemselves(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	path := writeFile(t, "sim.properties", `! elevator settings
# java properties style
floors=10
elevators 2
elevator capacity=4
duration: 80
=5
maxTravelDistance = 3 # jump
listType:Linked
`)

	props := Load(path)
	if !props.FileLoaded() {
		t.Fatalf("FileLoaded() = false, LoadErr() = %v", props.LoadErr())
	}
	if props.Floors != 10 || props.Elevators != 2 || props.Duration != 80 || props.MaxTravelDistance != 3 {
		t.Errorf("Load() = %v, expected the well-formed lines to be kept", props)
	}
	if props.Storage != elevconsts.Linked {
		t.Errorf("Storage = %v, expected Linked", props.Storage)
	}
	if props.ElevatorCapacity != elevconsts.DefaultElevatorCapacity {
		t.Errorf("ElevatorCapacity = %d, expected default", props.ElevatorCapacity)
	}

	fieldErrors := props.FieldErrors()
	if len(fieldErrors) != 2 {
		t.Fatalf("FieldErrors() returned %d errors, expected 2: %v", len(fieldErrors), fieldErrors)
	}
	for _, err := range fieldErrors {
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("FieldErrors() contains %v, expected %v", err, ErrMalformedLine)
		}
	}
	var fieldErr *FieldError
	if errors.As(fieldErrors[0], &fieldErr) && fieldErr.Key != "line 5" {
		t.Errorf("first FieldError key = %q, expected \"line 5\"", fieldErr.Key)
	}
}

func TestParsePropertiesLine(t *testing.T) {
	cases := []struct {
		line  string
		key   string
		value string
	}{
		{"floors=10", "floors", "10"},
		{"floors = 10", "floors", "10"},
		{"floors: 10", "floors", "10"},
		{"floors 10", "floors", "10"},
		{"passengers=0.05 # busy", "passengers", "0.05"},
		{`listType="Linked"`, "listType", "Linked"},
	}
	for _, c := range cases {
		key, value, err := parsePropertiesLine(c.line)
		if err != nil || key != c.key || value != c.value {
			t.Errorf("parsePropertiesLine(%q) = (%q, %q, %v), expected (%q, %q, nil)", c.line, key, value, err, c.key, c.value)
		}
	}

	for _, line := range []string{"floors", "elevator capacity=4", "=5"} {
		if _, _, err := parsePropertiesLine(line); !errors.Is(err, ErrMalformedLine) {
			t.Errorf("parsePropertiesLine(%q) error = %v, expected %v", line, err, ErrMalformedLine)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	path := writeFile(t, "sim.yaml", `floors: 8
passengers: 0.5
elevators: 2
elevatorCapacity: 6
duration: 120
maxTravelDistance: 3
listType: ArrayList
includeInTransit: true
`)

	props := Load(path)
	if !props.FileLoaded() {
		t.Fatalf("FileLoaded() = false, LoadErr() = %v", props.LoadErr())
	}
	if props.Floors != 8 || props.ArrivalProb != 0.5 || props.Elevators != 2 ||
		props.ElevatorCapacity != 6 || props.Duration != 120 || props.MaxTravelDistance != 3 {
		t.Errorf("Load() = %v, expected values from file", props)
	}
	if props.Storage != elevconsts.ArrayBacked {
		t.Errorf("Storage = %v, expected ArrayList", props.Storage)
	}
	if !props.IncludeInTransit {
		t.Errorf("IncludeInTransit = false, expected true")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	props := Load(writeFile(t, "sim.yml", "floors: [1, 2\n"))
	if props.FileLoaded() {
		t.Errorf("FileLoaded() = true for malformed YAML, expected false")
	}
	checkDefaults(t, props)
}

func TestParseStorageKind(t *testing.T) {
	cases := map[string]elevconsts.StorageKind{
		"Linked":       elevconsts.Linked,
		"linked":       elevconsts.Linked,
		"LinkedList":   elevconsts.Linked,
		"ArrayList":    elevconsts.ArrayBacked,
		"array-backed": elevconsts.ArrayBacked,
		"":             elevconsts.ArrayBacked,
	}
	for raw, expected := range cases {
		if got := ParseStorageKind(raw); got != expected {
			t.Errorf("ParseStorageKind(%q) = %v, expected %v", raw, got, expected)
		}
	}
}
