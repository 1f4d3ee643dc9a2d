package main

import (
	"flag"
	"fmt"
	"os"

	"xiangqi/internal/xiangqi"
)

// perft 叶子节点数，用于核对走法生成
func perft(s *xiangqi.Snapshot, depth int) int {
	if depth == 0 {
		return 1
	}
	n := 0
	for _, m := range s.GenerateLegalMoves() {
		child := s.Apply(m)
		n += perft(&child, depth-1)
	}
	return n
}

func main() {
	fen := flag.String("fen", xiangqi.InitialFEN, "position to inspect")
	depth := flag.Int("perft", 2, "perft depth")
	flag.Parse()

	pos, err := xiangqi.DecodeFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Hash:", fmt.Sprintf("%016x", pos.Hash()))
	fmt.Println("Check:", pos.Check(pos.Next()))
	moves := pos.GenerateLegalMoves()
	fmt.Println("Legal moves:", len(moves))
	for _, m := range moves {
		fmt.Print(m, " ")
	}
	fmt.Println()
	for d := 1; d <= *depth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, perft(&pos, d))
	}
}
