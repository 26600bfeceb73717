package generation

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

// Fallback draws d.Length characters uniformly from the alphabet of d.Classes.
// It only fails when d itself is unusable or the system entropy source breaks.
func Fallback(d model.Difficulty) (string, error) {
	alphabet := []rune(d.Classes.Alphabet())
	if len(alphabet) == 0 {
		return "", errors.New("difficulty allows no characters")
	}
	if d.Length < 1 {
		return "", fmt.Errorf("difficulty length %d must be positive", d.Length)
	}

	size := big.NewInt(int64(len(alphabet)))
	out := make([]rune, d.Length)
	for i := range out {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("draw random character: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
