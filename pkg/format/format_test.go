package format

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Snake_case and--dashes", "snake-case-and-dashes"},
		{"Price: $20 (new!)", "price-20-new"},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q) = %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumberGroupsDigits(t *testing.T) {
	if got := FormatNumberIn(language.English, 1234567); got != "1,234,567" {
		t.Fatalf("FormatNumberIn = %q want 1,234,567", got)
	}
}

func TestFormatPriceIn(t *testing.T) {
	if got := FormatPriceIn(language.English, 1234567.4, "usd"); got != "1,234,567 USD" {
		t.Fatalf("FormatPriceIn = %q want 1,234,567 USD", got)
	}
	if got := FormatPriceIn(language.English, 99.6, ""); got != "100 UZS" {
		t.Fatalf("FormatPriceIn default currency = %q want 100 UZS", got)
	}
}

func TestFormatPriceUsesDefaultCurrency(t *testing.T) {
	if got := FormatPrice(5000, ""); !strings.HasSuffix(got, " UZS") {
		t.Fatalf("FormatPrice = %q want UZS suffix", got)
	}
}

func TestFormatDate(t *testing.T) {
	want := "March 5, 2024"

	got, err := FormatDate(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC))
	if err != nil || got != want {
		t.Fatalf("FormatDate(time) = %q, %v want %q", got, err, want)
	}

	for _, in := range []string{"2024-03-05", "2024-03-05T10:00:00Z", "2024-03-05T10:00:00"} {
		got, err := FormatDate(in)
		if err != nil || got != want {
			t.Fatalf("FormatDate(%q) = %q, %v want %q", in, got, err, want)
		}
	}

	if _, err := FormatDate("yesterday"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
	if _, err := FormatDate(42); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{5 * 1024 * 1024 * 1024, "5 GB"},
		{3 * 1024 * 1024 * 1024 * 1024 * 1024, "3072 TB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.in); got != tt.want {
			t.Fatalf("FormatFileSize(%d) = %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := TruncateText("short", 10); got != "short" {
		t.Fatalf("TruncateText kept = %q", got)
	}
	if got := TruncateText("hello world", 5); got != "hello..." {
		t.Fatalf("TruncateText = %q want hello...", got)
	}
	if got := TruncateText("exact", 5); got != "exact" {
		t.Fatalf("TruncateText exact fit = %q", got)
	}
}

func TestValidators(t *testing.T) {
	urls := map[string]bool{
		"https://example.com/shop": true,
		"mailto:help@example.com":  true,
		"/relative/path":           false,
		"not a url":                false,
		"":                         false,
	}
	for in, want := range urls {
		if got := IsValidURL(in); got != want {
			t.Fatalf("IsValidURL(%q) = %v want %v", in, got, want)
		}
	}

	emails := map[string]bool{
		"user@example.com": true,
		"a.b@c.d":          true,
		"missing-at.com":   false,
		"user@nodot":       false,
		"sp ace@x.io":      false,
	}
	for in, want := range emails {
		if got := IsValidEmail(in); got != want {
			t.Fatalf("IsValidEmail(%q) = %v want %v", in, got, want)
		}
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID(0)
	if len(id) != DefaultIDLength {
		t.Fatalf("GenerateID(0) length = %d want %d", len(id), DefaultIDLength)
	}
	for _, r := range GenerateID(64) {
		if !strings.ContainsRune(idAlphabet, r) {
			t.Fatalf("GenerateID produced %q outside the alphabet", r)
		}
	}
	if GenerateID(16) == GenerateID(16) {
		t.Fatalf("expected distinct ids")
	}
}

func TestDeepClone(t *testing.T) {
	type item struct {
		Tags  []string
		Attrs map[string]int
	}
	orig := item{Tags: []string{"a"}, Attrs: map[string]int{"x": 1}}

	clone, err := DeepClone(orig)
	if err != nil {
		t.Fatalf("DeepClone: %v", err)
	}
	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}

	clone.Tags[0] = "b"
	clone.Attrs["x"] = 2
	if orig.Tags[0] != "a" || orig.Attrs["x"] != 1 {
		t.Fatalf("clone shares memory with original")
	}
}

func TestDebounceCoalescesCalls(t *testing.T) {
	var calls atomic.Int32
	call, cancel := Debounce(func() { calls.Add(1) }, 20*time.Millisecond)
	defer cancel()

	for i := 0; i < 5; i++ {
		call()
	}

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("debounced fn ran %d times want 1", got)
	}
}

func TestDebounceCancel(t *testing.T) {
	var calls atomic.Int32
	call, cancel := Debounce(func() { calls.Add(1) }, 20*time.Millisecond)

	call()
	cancel()
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Fatalf("cancelled fn ran %d times", got)
	}
}
