package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/integralab/internal/numeric"
	"github.com/san-kum/integralab/internal/symbolic"
	"github.com/san-kum/integralab/internal/viz"
)

// Report is the JSON document written by the export command.
type Report struct {
	Expression     string                `json:"expression"`
	Lower          float64               `json:"lower"`
	Upper          float64               `json:"upper"`
	Antiderivative *symbolic.Result      `json:"antiderivative,omitempty"`
	Approximation  numeric.Approximation `json:"approximation"`
	Viewport       viz.Viewport          `json:"viewport"`
	Stats          numeric.SampleStats   `json:"stats"`
	Samples        []numeric.Sample      `json:"samples"`
}

func WriteJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func SaveJSON(path string, r *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, r)
}
