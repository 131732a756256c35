package storage

import (
	"errors"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	record := sampleRecord("exp-codec", "2025-02-02T00:00:00Z")
	payload, err := EncodeExperiment(record)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeExperiment(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != record.ID || decoded.Parameter != record.Parameter {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if decoded.Config.Mutant != "altruist" {
		t.Fatalf("config mutant lost: %+v", decoded.Config)
	}
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	record := sampleRecord("exp-old", "2025-02-02T00:00:00Z")
	record.SchemaVersion = CurrentSchemaVersion + 1
	payload, err := EncodeExperiment(record)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeExperiment(payload); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got %v", err)
	}
}

func TestNewStoreRejectsUnknownKind(t *testing.T) {
	if _, err := NewStore("etcd", ""); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}
