package generation

import "github.com/goodnatureofminers/passblock-backend/internal/model"

// Prompt is the input sent to the external generator.
type Prompt struct {
	Hint           string   `json:"hint"`
	Length         int      `json:"length"`
	AllowedClasses []string `json:"allowed_classes"`
}

// NewPrompt describes a secret of difficulty d seeded by hint.
func NewPrompt(hint string, d model.Difficulty) Prompt {
	return Prompt{
		Hint:           hint,
		Length:         d.Length,
		AllowedClasses: d.Classes.Names(),
	}
}
