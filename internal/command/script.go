package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tailscale/hujson"
)

// LoadScript reads a HuJSON array of command lines, for example:
//
//	[
//	  // morning
//	  "add buy milk",
//	  "toggle 1",
//	]
func LoadScript(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	var lines []string
	if err := json.Unmarshal(std, &lines); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return lines, nil
}
