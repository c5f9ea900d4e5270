package textenc_test

import (
	"os"
	"path/filepath"
	"testing"

	"vidharvest/internal/textenc"
)

func TestDecodeStrictUTF8Wins(t *testing.T) {
	text, enc := textenc.Decode([]byte("WEBVTT\n\nHello 香港\n"))
	if enc != textenc.EncodingUTF8 {
		t.Fatalf("expected utf-8, got %q", enc)
	}
	if text != "WEBVTT\n\nHello 香港\n" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDecodeStripsByteOrderMark(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("WEBVTT\n")...)
	text, enc := textenc.Decode(raw)
	if enc != textenc.EncodingUTF8BOM {
		t.Fatalf("expected utf-8-sig, got %q", enc)
	}
	if text != "WEBVTT\n" {
		t.Fatalf("BOM not stripped: %q", text)
	}
}

func TestDecodeGBK(t *testing.T) {
	// "你好" encoded as GBK.
	raw := []byte{0xC4, 0xE3, 0xBA, 0xC3}
	text, enc := textenc.Decode(raw)
	if enc != textenc.EncodingGBK {
		t.Fatalf("expected gbk, got %q", enc)
	}
	if text != "你好" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDecodeFallsBackToLatin1(t *testing.T) {
	// 0xFF is an invalid lead byte in UTF-8, GBK, and GB18030.
	raw := []byte{0xFF, 0x41}
	text, enc := textenc.Decode(raw)
	if enc != textenc.EncodingLatin1 {
		t.Fatalf("expected latin-1 fallback, got %q", enc)
	}
	if text != "ÿA" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDecodeNeverFails(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0x00},
		{0xFE, 0xFF, 0x00, 0x41},
		{0x80, 0x81, 0x82, 0xFF, 0xFF},
	}
	for _, raw := range inputs {
		text, enc := textenc.Decode(raw)
		if enc == "" {
			t.Fatalf("no encoding reported for %v", raw)
		}
		_ = text
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub.vtt")
	if err := os.WriteFile(path, []byte("WEBVTT\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, enc, err := textenc.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if enc != textenc.EncodingUTF8 || text != "WEBVTT\n" {
		t.Fatalf("unexpected result: %q %q", text, enc)
	}

	if _, _, err := textenc.ReadFile(filepath.Join(t.TempDir(), "missing.vtt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
