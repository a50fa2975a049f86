package board_test

import (
	"context"
	"math/rand"
	"testing"

	"coursework/board"
)

func benchCount(b *testing.B, fen string, bitboards bool) {
	bd, pieces, err := board.FromFEN(fen)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	bd.UseBitboards = bitboards
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range pieces {
			_ = bd.Count(p)
		}
	}
}

func BenchmarkCount_Initial(b *testing.B) {
	benchCount(b, board.FENStartPos, false)
}

func BenchmarkCount_Kiwipete(b *testing.B) {
	benchCount(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", false)
}

func BenchmarkCount_KiwipeteBitboards(b *testing.B) {
	benchCount(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", true)
}

func BenchmarkCountAll_LargeBoard(b *testing.B) {
	bd, pieces := randomBoard(rand.New(rand.NewSource(9)), 1000, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := board.CountAll(context.Background(), bd, pieces, 8); err != nil {
			b.Fatal(err)
		}
	}
}
