package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs a successful operation result. Human-readable output is
// printed by the individual commands; this covers the machine modes.
func (f *OutputFormatter) Success(data interface{}) (bool, error) {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return true, nil
		}
	}

	if f.JSON {
		return true, json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	return false, nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]interface{}{
				"code":    code,
				"message": message,
			},
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	return nil
}
