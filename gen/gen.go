package gen

import (
	"math/rand"

	"github.com/pkg/errors"
	regen "github.com/zach-klippenstein/goregen"
)

// Pattern describes URIs the grammar accepts in full. Every generated URI
// parses with an empty remainder and renders back to itself.
const Pattern = `(http|https)://` +
	`([a-z][a-z0-9]{0,8}(:[a-z0-9]{1,8})?@)?` +
	`([a-z][a-z0-9-]{0,10}\.){1,3}[a-z]{2,5}` +
	`(:[1-9][0-9]{0,3})?` +
	`(/[a-z0-9.]{1,8}){0,4}` +
	`(\?[a-z]{1,5}=[a-z0-9]{1,5}(&[a-z]{1,5}=[a-z0-9]{1,5}){0,3})?` +
	`(#[a-z0-9]{1,8})?`

// Generator of sample URIs
type Generator struct {
	g regen.Generator
}

// New generator seeded with seed, the same seed yields the same URIs
func New(seed int64) (*Generator, error) {
	return NewFromPattern(Pattern, seed)
}

// NewFromPattern for callers that want a narrower or wider set of inputs
func NewFromPattern(pattern string, seed int64) (*Generator, error) {
	g, err := regen.NewGenerator(pattern, &regen.GeneratorArgs{
		RngSource:               rand.NewSource(seed),
		MaxUnboundedRepeatCount: 8,
	})
	if err != nil {
		return nil, errors.Wrap(err, "compiling generator pattern")
	}
	return &Generator{g: g}, nil
}

// Generate one URI
func (g *Generator) Generate() string {
	return g.g.Generate()
}

// GenerateN URIs
func (g *Generator) GenerateN(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Generate())
	}
	return out
}
