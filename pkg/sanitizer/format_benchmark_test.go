package sanitizer_test

import (
	"testing"

	"github.com/dmitrymomot/validaten/pkg/sanitizer"
)

func BenchmarkRemoveSpaces(b *testing.B) {
	cards := []string{
		"4035 3005 3980 4083",
		"4035300539804083",
	}

	for _, card := range cards {
		b.Run(card, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = sanitizer.RemoveSpaces(card)
			}
		})
	}
}

func BenchmarkMaskCreditCard(b *testing.B) {
	card := "4035300539804083"
	b.ResetTimer()
	for b.Loop() {
		_ = sanitizer.MaskCreditCard(card)
	}
}

func BenchmarkFormatCreditCard(b *testing.B) {
	card := "4035300539804083"
	b.ResetTimer()
	for b.Loop() {
		_ = sanitizer.FormatCreditCard(card)
	}
}
