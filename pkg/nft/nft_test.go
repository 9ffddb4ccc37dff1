package nft

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTokenURIRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	m := NewMetadata("Sunset #1", "A warm evening", created)

	uri, err := EncodeTokenURI(m)
	if err != nil {
		t.Fatalf("EncodeTokenURI() failed: %v", err)
	}
	if !strings.HasPrefix(uri, "data:application/json;base64,") {
		t.Fatalf("unexpected uri prefix %q", uri[:40])
	}

	got, err := DecodeTokenURI(uri)
	if err != nil {
		t.Fatalf("DecodeTokenURI() failed: %v", err)
	}
	if got.Name != m.Name || got.Description != m.Description || got.Image != m.Image {
		t.Fatalf("metadata mismatch: %+v vs %+v", got, m)
	}
	if len(got.Attributes) != 1 || got.Attributes[0].TraitType != "Created" {
		t.Fatalf("unexpected attributes %+v", got.Attributes)
	}
	if got.Attributes[0].Value != "2024-03-01T12:30:00.000Z" {
		t.Fatalf("unexpected created value %s", got.Attributes[0].Value)
	}
}

func TestPlaceholderImageEscapesName(t *testing.T) {
	got := PlaceholderImage("Sunset #1")
	want := "https://via.placeholder.com/400x400?text=Sunset%20%231"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDecodePlainDataURI(t *testing.T) {
	m, err := DecodeTokenURI(`data:application/json,{"name":"plain","description":"d","image":"x","attributes":[]}`)
	if err != nil {
		t.Fatalf("DecodeTokenURI() failed: %v", err)
	}
	if m.Name != "plain" {
		t.Fatalf("expected plain, got %s", m.Name)
	}
}

func TestDecodeUnsupportedURI(t *testing.T) {
	if _, err := DecodeTokenURI("ipfs://bafy/1.json"); !errors.Is(err, ErrUnsupportedURI) {
		t.Fatalf("expected ErrUnsupportedURI, got %v", err)
	}
	if _, err := DecodeTokenURI("data:application/json;base64,!!!"); err == nil {
		t.Fatal("expected decode error")
	}
}
