package randgen

import (
	"fmt"
	"testing"

	"github.com/ravelin-labs/pltlsynth/pkg/parse"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
)

func TestNewIsReproducibleForTheSameSeed(t *testing.T) {
	a := New(5, 3, 6, 42)
	b := New(5, 3, 6, 42)
	for i := range a {
		if a[i].String() != b[i].String() {
			t.Fatalf("game %d differs across runs with the same seed:\n%s\nvs\n%s", i, a[i], b[i])
		}
	}
}

func TestNewProducesParseableFormulas(t *testing.T) {
	games := New(20, 4, 8, 7)
	for _, g := range games {
		ctx := prop.NewContext()
		formulaSrc := fmt.Sprintf("%s(%s)", g.Kind, g.Body)
		if _, _, err := parse.TopLevel(ctx, formulaSrc); err != nil {
			t.Fatalf("generated formula %q does not parse: %v", formulaSrc, err)
		}
	}
}

func TestNewSplitsAtLeastOneInput(t *testing.T) {
	for _, g := range New(10, 5, 4, 1) {
		if len(g.Inputs) < 1 {
			t.Fatalf("game has no declared inputs: %v", g)
		}
	}
}
