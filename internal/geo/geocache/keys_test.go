package geocache

import (
	"regexp"
	"testing"
	"unicode"
)

func TestKey_Deterministic(t *testing.T) {
	k1 := Key("Paris, France")
	k2 := Key("Paris, France")
	if k1 != k2 {
		t.Fatalf("determinism failed:\n k1=%s\n k2=%s", k1, k2)
	}
}

func TestKey_CaseAndFormattingSensitive(t *testing.T) {
	variants := []string{"Paris, France", "paris, france", "Paris,France", " Paris, France"}
	seen := map[string]string{}
	for _, v := range variants {
		k := Key(v)
		if prior, dup := seen[k]; dup {
			t.Fatalf("inputs %q and %q collided on key %s", prior, v, k)
		}
		seen[k] = v
	}
}

func TestKey_ASCIISafeWithHashSuffix(t *testing.T) {
	k := Key("Göteborg, Sverige 雪")

	for _, r := range k {
		if r > unicode.MaxASCII {
			t.Fatalf("non-ASCII rune leaked into key: %q in %s", r, k)
		}
	}

	if m := regexp.MustCompile(`:h=([0-9a-f]{16})$`).FindStringSubmatch(k); len(m) != 2 {
		t.Fatalf("missing or invalid :h=<hex64> suffix in key: %s", k)
	}
}

func TestKey_LongInputTruncatedButStillUnique(t *testing.T) {
	long := ""
	for range 40 {
		long += "abcdefgh"
	}
	k1 := Key(long + "x")
	k2 := Key(long + "y")
	if k1 == k2 {
		t.Fatalf("truncated keys must still differ via hash suffix")
	}
}
