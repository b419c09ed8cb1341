package elevmetadata

import (
	"encoding/json"

	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/google/uuid"
	"github.com/xyproto/randomstring"
)

var Log = logger.GetLogger()

const IDENTIFIER_DEFAULT_LEN = 10

type SimMetaData struct {
	SoftwareVersion string    `json:"software_version"`
	RunID           uuid.UUID `json:"run_id"`
	Identifier      string    `json:"identifier"`
	Seed            int64     `json:"seed"`
	ConfigPath      string    `json:"config_path,omitempty"`
	ConfigLoaded    bool      `json:"config_loaded"`
}

// NewSimMetaData stamps a fresh run id and, when identifier is empty, a
// random human-readable identifier.
func NewSimMetaData(version, identifier string, seed int64) *SimMetaData {
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN)
		Log.Debug().Msgf("No run identifier provided, generated random identifier \"%v\"", identifier)
	}
	return &SimMetaData{
		SoftwareVersion: version,
		RunID:           uuid.New(),
		Identifier:      identifier,
		Seed:            seed,
	}
}

func (simMetaData *SimMetaData) String() string {
	jsonData, err := json.Marshal(simMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising SimMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}
