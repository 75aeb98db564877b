package puaa

import "testing"

func TestMinifyRoundTrip(t *testing.T) {
	cases := []string{"", "A", "NL", "Lu", "abcd"}
	for _, s := range cases {
		ref, ok := minifyBytes([]byte(s))
		if !ok {
			t.Fatalf("minifyBytes(%q) failed, expected ok", s)
		}
		if ref&inlineTag == 0 {
			t.Fatalf("minifyBytes(%q) = %#x, missing inline tag", s, ref)
		}
		if got := unminify(ref); got != s {
			t.Errorf("unminify(minifyBytes(%q)) = %q", s, got)
		}
	}
}

func TestMinifyRejectsLongOrNonASCII(t *testing.T) {
	if _, ok := minifyBytes([]byte("abcde")); ok {
		t.Error("expected 5-byte string to be rejected")
	}
	if _, ok := minifyBytes([]byte{0x80}); ok {
		t.Error("expected a high-bit byte to be rejected")
	}
}

func TestStringPoolAddrDedupes(t *testing.T) {
	sp := newStringPool(100)
	long := "a fairly long string that will not fit inline"
	a := sp.addr(long, true, false)
	b := sp.addr(long, true, false)
	if a != b {
		t.Fatalf("expected repeated string to reuse the same address, got %#x and %#x", a, b)
	}
	if len(sp.blobs) != 1 {
		t.Fatalf("expected exactly one pooled blob, got %d", len(sp.blobs))
	}
}

func TestStringPoolAddrAbsentIsZero(t *testing.T) {
	sp := newStringPool(100)
	if addr := sp.addr("", false, false); addr != 0 {
		t.Fatalf("expected absent string to encode as 0, got %#x", addr)
	}
}

func TestStringPoolForceFullSkipsInline(t *testing.T) {
	sp := newStringPool(100)
	addr := sp.addr("Lu", true, true)
	if addr&inlineTag != 0 {
		t.Fatal("forceFull should bypass the inline encoding even for a short string")
	}
}

func TestStringPoolBytesAndGetStrRoundTrip(t *testing.T) {
	sp := newStringPool(0)
	long := "General_Category property values table"
	addr := sp.addr(long, true, true)
	data := sp.bytes()

	got, ok := getStr(data, addr)
	if !ok || got != long {
		t.Fatalf("getStr round trip = %q, %v; want %q, true", got, ok, long)
	}
}

func TestGetStrInlineAndAbsent(t *testing.T) {
	ref, _ := minifyBytes([]byte("Nd"))
	if got, ok := getStr(nil, ref); !ok || got != "Nd" {
		t.Fatalf("getStr(inline) = %q, %v; want Nd, true", got, ok)
	}
	if _, ok := getStr(nil, 0); ok {
		t.Fatal("getStr(0) should report absent")
	}
}
