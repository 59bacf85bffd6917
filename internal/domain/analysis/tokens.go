package analysis

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// tokenCounter counts prompt tokens with the cl100k_base encoding. When the
// encoding cannot be initialized it degrades to whitespace word counting.
type tokenCounter struct {
	enc *tiktoken.Tiktoken
}

func newTokenCounter() *tokenCounter {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return &tokenCounter{}
	}
	return &tokenCounter{enc: enc}
}

func (t *tokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	if t.enc == nil {
		return len(strings.Fields(text))
	}
	return len(t.enc.Encode(text, nil, nil))
}
