package tokenize

import "testing"

func TestForEncodingReturnsSingleton(t *testing.T) {
	c1, err := ForEncoding("o200k_base")
	if err != nil {
		t.Fatalf("ForEncoding: %v", err)
	}
	c2, err := ForEncoding("o200k_base")
	if err != nil {
		t.Fatalf("ForEncoding: %v", err)
	}
	if c1 != c2 {
		t.Errorf("expected singleton instance to be reused")
	}
}

func TestCountNonEmpty(t *testing.T) {
	c, err := ForEncoding("o200k_base")
	if err != nil {
		t.Fatalf("ForEncoding: %v", err)
	}
	if n := c.Count("hello world"); n == 0 {
		t.Errorf("expected non-zero token count")
	}
	if n := c.Count(""); n != 0 {
		t.Errorf("expected zero tokens for empty string, got %d", n)
	}
}

func TestReleaseForcesReload(t *testing.T) {
	c1, _ := ForEncoding("cl100k_base")
	Release("cl100k_base")
	c2, err := ForEncoding("cl100k_base")
	if err != nil {
		t.Fatalf("ForEncoding: %v", err)
	}
	if c1 == c2 {
		t.Errorf("expected a fresh instance after Release")
	}
}
