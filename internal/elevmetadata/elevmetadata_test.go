package elevmetadata

import (
	"testing"

	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestString(t *testing.T) {
	metadata := SimMetaData{
		SoftwareVersion: "smj2acjkvv4h1zkwjz2ocsn2lkfrjmzf9qn4i2m3",
		RunID:           uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Identifier:      "uwvvblrtct",
		Seed:            42,
		ConfigLoaded:    false,
	}

	jsonString := "{\"software_version\":\"smj2acjkvv4h1zkwjz2ocsn2lkfrjmzf9qn4i2m3\",\"run_id\":\"6ba7b810-9dad-11d1-80b4-00c04fd430c8\",\"identifier\":\"uwvvblrtct\",\"seed\":42,\"config_loaded\":false}"

	if metadata.String() != jsonString {
		t.Errorf("String() = %s, expected %s", metadata.String(), jsonString)
	}
}

func TestNewSimMetaData(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	named := NewSimMetaData("dev", "lobby", 7)
	if named.Identifier != "lobby" {
		t.Errorf("Identifier = %s, expected lobby", named.Identifier)
	}
	if named.RunID == uuid.Nil {
		t.Errorf("RunID = %v, expected a generated id", named.RunID)
	}

	generated := NewSimMetaData("dev", "", 7)
	if generated.Identifier == "" {
		t.Errorf("Identifier = \"\", expected a generated identifier")
	}
	if generated.RunID == named.RunID {
		t.Errorf("two runs share RunID %v", named.RunID)
	}
}
