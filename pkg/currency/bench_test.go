package currency_test

import (
	"testing"

	"github.com/SscSPs/isocurrency/pkg/currency"
)

var sink currency.Currency

func BenchmarkFromCode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = currency.FromCode("EUR")
	}
}

func BenchmarkFromNumeric(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = currency.FromNumeric(978)
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = currency.Parse("SEK")
	}
}

func BenchmarkUsedBy(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = currency.EUR.UsedBy()
	}
}
