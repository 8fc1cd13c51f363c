package kv

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeWithoutTTLPassthrough(t *testing.T) {
	value := []byte("plain")

	encoded, wrapped, err := encodeWithTTL(value, 0)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if wrapped {
		t.Fatal("zero ttl should not wrap")
	}

	if !bytes.Equal(encoded, value) {
		t.Fatalf("encoded = %q, want %q", encoded, value)
	}
}

func TestDecodeUnwrappedPassthrough(t *testing.T) {
	raw := []byte{0x00, 0xff, 'x'}

	val, expired, wrapped, err := decodeWithTTL(raw, time.Now())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if wrapped || expired {
		t.Fatalf("wrapped = %v, expired = %v; want false, false", wrapped, expired)
	}

	if !bytes.Equal(val, raw) {
		t.Fatalf("val = %q, want %q", val, raw)
	}
}

func TestTTLRoundtripAndExpiry(t *testing.T) {
	value := []byte("share-payload")

	encoded, wrapped, err := encodeWithTTL(value, time.Minute)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if !wrapped {
		t.Fatal("positive ttl should wrap")
	}

	if !bytes.HasPrefix(encoded, []byte(ttlMagic)) {
		t.Fatalf("encoded value missing magic prefix %q", ttlMagic)
	}

	// 有效期内
	val, expired, wrapped, err := decodeWithTTL(encoded, time.Now())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !wrapped || expired {
		t.Fatalf("wrapped = %v, expired = %v; want true, false", wrapped, expired)
	}

	if !bytes.Equal(val, value) {
		t.Fatalf("val = %q, want %q", val, value)
	}

	// 过期之后
	_, expired, _, err = decodeWithTTL(encoded, time.Now().Add(2*time.Minute))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !expired {
		t.Fatal("value should be expired past deadline")
	}
}

func TestDecodeCorruptWrapper(t *testing.T) {
	corrupt := append([]byte(ttlMagic), []byte("{not json")...)

	if _, _, _, err := decodeWithTTL(corrupt, time.Now()); err == nil {
		t.Fatal("expected error for corrupt wrapper")
	}
}
