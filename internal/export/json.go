package export

import (
	"encoding/json"
	"os"

	"github.com/mechdata/hvac-dataset/internal/model"
)

// MarshalJSON renders the full dataset as an indented JSON document.
func MarshalJSON(ds model.Dataset) ([]byte, error) {
	return json.MarshalIndent(ds, "", "  ")
}

// WriteJSON writes the full dataset, including the nested billing line
// items and bid estimates, to a single JSON file.
func WriteJSON(ds model.Dataset, path string) error {
	data, err := MarshalJSON(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
