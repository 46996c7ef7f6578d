package watch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"TechSentinel/internal/model"
)

// LoadState reads the watch state from a JSON file. Returns an empty state if the file doesn't exist.
func LoadState(filePath string) (*model.WatchState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.WatchState{Symbols: map[string]model.SymbolState{}}, nil
		}
		return nil, err
	}
	var state model.WatchState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Symbols == nil {
		state.Symbols = map[string]model.SymbolState{}
	}
	return &state, nil
}

// SaveState writes the watch state to a JSON file.
func SaveState(filePath string, state *model.WatchState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0644)
}
