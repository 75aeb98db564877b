package puaa

import "testing"

func TestVerifyRoundTripAccepts(t *testing.T) {
	data := buildSampleTable().Compile()
	if err := VerifyRoundTrip(data); err != nil {
		t.Fatalf("VerifyRoundTrip failed on a well-formed blob: %v", err)
	}
}

func TestVerifyRoundTripRejectsMalformed(t *testing.T) {
	if err := VerifyRoundTrip([]byte{0, 1}); err == nil {
		t.Fatal("expected an error for a too-short blob")
	}
}
