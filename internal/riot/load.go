package riot

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadMatch reads a saved Match-v5 response body from a JSON file.
func LoadMatch(path string) (*MatchResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read match file: %w", err)
	}
	var m MatchResponse
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode match %s: %w", path, err)
	}
	if len(m.Info.Participants) == 0 {
		return nil, fmt.Errorf("match %s has no participants", path)
	}
	return &m, nil
}

// LoadTimeline reads a saved Timeline-v5 response body from a JSON file.
func LoadTimeline(path string) (*TimelineResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timeline file: %w", err)
	}
	var tl TimelineResponse
	if err := json.Unmarshal(data, &tl); err != nil {
		return nil, fmt.Errorf("decode timeline %s: %w", path, err)
	}
	return &tl, nil
}
