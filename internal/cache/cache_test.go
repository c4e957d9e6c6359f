package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	t.Parallel()

	c := New()
	c.Set("k", "中文标题 (English Title)", time.Hour)

	got, ok := c.Get("k")
	if !ok {
		t.Fatalf("Get missed a fresh entry")
	}
	if got != "中文标题 (English Title)" {
		t.Errorf("Get = %q", got)
	}
	if _, ok := c.Get("missing"); ok {
		t.Errorf("Get hit on a missing key")
	}
}

func TestExpiredEntryIsDroppedOnRead(t *testing.T) {
	t.Parallel()

	c := New()
	c.Set("k", "v", -time.Second)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("Get hit on an expired entry")
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len = %d after expired read, want 0", got)
	}
}

func TestKeyIsStableAndDistinct(t *testing.T) {
	t.Parallel()

	if Key("title", "a") != Key("title", "a") {
		t.Errorf("same parts produced different keys")
	}
	if Key("title", "a") == Key("title", "b") {
		t.Errorf("different parts produced the same key")
	}
	// The separator keeps ("ab","c") and ("a","bc") apart.
	if Key("ab", "c") == Key("a", "bc") {
		t.Errorf("part boundaries are ambiguous")
	}
}
