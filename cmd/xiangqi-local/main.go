package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"xiangqi/internal/config"
	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

const help = `commands:
  <move>      play a move in ICCS notation, e.g. h2e2
  auto        let the computer move
  undo        take back one move
  rotate      flip the board
  fen [FEN]   print the position, or load one
  new         start over
  quit`

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	depth := flag.Int("depth", cfg.Search.Depth, "search depth")
	strategy := flag.String("strategy", cfg.Search.Strategy, "search strategy: alphabeta or minimax")
	computer := flag.String("computer", "black", "side played by the computer: red, black or none")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(cfg.Level())

	if err := cfg.Override(*depth, *strategy); err != nil {
		log.WithError(err).Fatal("bad -depth or -strategy")
	}
	g := engine.NewGame(cfg.EngineConfig())
	auto := parseSide(*computer)

	run(g, auto, os.Stdin, os.Stdout)
}

func parseSide(s string) xiangqi.Side {
	switch strings.ToLower(s) {
	case "red", "r", "w":
		return xiangqi.Red
	case "black", "b":
		return xiangqi.Black
	}
	return xiangqi.NoSide
}

func run(g *engine.Game, auto xiangqi.Side, in io.Reader, out io.Writer) {
	printBoard(out, g)
	sc := bufio.NewScanner(in)
	for {
		if g.NextPlayer() == auto {
			st := g.AutoMove()
			res := g.LastSearch()
			fmt.Fprintf(out, "computer: %v (%v, score %d, %d nodes)\n", res.BestMove, st, res.Score, res.Nodes)
			printBoard(out, g)
			if st.Has(xiangqi.StatusDead) {
				fmt.Fprintln(out, "game over")
				auto = xiangqi.NoSide
			}
			continue
		}

		fmt.Fprintf(out, "%v> ", g.NextPlayer())
		if !sc.Scan() {
			return
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit", "q":
			return
		case "help", "?":
			fmt.Fprintln(out, help)
		case "new":
			g.Init()
			printBoard(out, g)
		case "undo":
			if !g.UndoMakeMove() {
				fmt.Fprintln(out, "nothing to undo")
				continue
			}
			printBoard(out, g)
		case "rotate":
			g.Rotate()
			printBoard(out, g)
		case "auto":
			st := g.AutoMove()
			fmt.Fprintf(out, "computer: %v (%v)\n", g.LastSearch().BestMove, st)
			printBoard(out, g)
		case "fen":
			if len(fields) == 1 {
				fmt.Fprintln(out, g.Snapshot().Encode())
				continue
			}
			s, err := xiangqi.DecodeFEN(strings.Join(fields[1:], " "))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			g.Load(s)
			printBoard(out, g)
		default:
			m, err := xiangqi.ParseMove(fields[0])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			st := g.MakeMove(m)
			fmt.Fprintln(out, st)
			if st.Has(xiangqi.StatusOK) {
				printBoard(out, g)
			}
		}
	}
}

// printBoard 文本棋盘，左侧为 ICCS 行号，底部为列字母
func printBoard(out io.Writer, g *engine.Game) {
	s := g.Snapshot()
	trigger := g.Trigger()
	for r := 0; r < xiangqi.Rows; r++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d ", xiangqi.Rows-1-r)
		for c := 0; c < xiangqi.Cols; c++ {
			p := xiangqi.Pos{Row: r, Col: c}
			mark := ' '
			if p == trigger.From || p == trigger.To {
				mark = '*'
			}
			sb.WriteString(s.At(p).String())
			sb.WriteRune(mark)
		}
		fmt.Fprintln(out, sb.String())
	}
	fmt.Fprintln(out, "  a b c d e f g h i")
	fmt.Fprintf(out, "red %d  black %d  to move: %v\n", g.Score(xiangqi.Red), g.Score(xiangqi.Black), g.NextPlayer())
}
