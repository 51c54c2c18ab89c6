package gen_test

import (
	"regexp"
	"testing"

	"gitlab.com/urlp/gen"
)

func TestGenerate(t *testing.T) {
	match := regexp.MustCompile("^" + gen.Pattern + "$")

	g, err := gen.New(1)
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	for _, u := range g.GenerateN(50) {
		if !match.MatchString(u) {
			t.Fatalf("generated %s does not match pattern\n", u)
		}
	}
}

func TestGenerateSeeded(t *testing.T) {
	a, _ := gen.New(7)
	b, _ := gen.New(7)
	for i := 0; i < 10; i++ {
		if x, y := a.Generate(), b.Generate(); x != y {
			t.Fatalf("same seed generated %s and %s\n", x, y)
		}
	}
}

func TestBadPattern(t *testing.T) {
	if _, err := gen.NewFromPattern("(", 1); err == nil {
		t.Fatalf("expected error for invalid pattern\n")
	}
}
