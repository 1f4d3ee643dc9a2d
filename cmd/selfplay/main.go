package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"xiangqi/internal/config"
	"xiangqi/internal/engine"
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

var errGameOver = errors.New("game over")

// result 一局自对弈的结果
type result struct {
	ID     string
	Plies  int
	Winner xiangqi.Side
	FEN    string
	Time   time.Duration
}

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	depth := flag.Int("depth", cfg.Search.Depth, "search depth")
	strategy := flag.String("strategy", cfg.Search.Strategy, "search strategy: alphabeta or minimax")
	games := flag.Int("games", 2, "number of games played in parallel")
	maxPlies := flag.Int("maxplies", 60, "max plies per game")
	bench := flag.Bool("bench", false, "compare minimax and alphabeta on the opening position and exit")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(cfg.Level())

	if *pprofAddr != "" {
		go func() {
			log.Infof("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.WithError(err).Warn("pprof failed")
			}
		}()
	}

	if err := cfg.Override(*depth, *strategy); err != nil {
		log.WithError(err).Fatal("bad -depth or -strategy")
	}
	sc := cfg.EngineConfig()

	if *bench {
		for _, line := range benchmark(xiangqi.InitialFEN, sc.Depth) {
			fmt.Println(line)
		}
		return
	}

	m := game.NewManager(sc)
	results := selfplay(m, *games, *maxPlies)
	for _, r := range results {
		fmt.Printf("%s plies=%d winner=%v time=%v\n  %s\n", r.ID, r.Plies, r.Winner, r.Time.Round(time.Millisecond), r.FEN)
	}
	log.Info("selfplay finished")
}

// selfplay 并行下 n 局，每局最多 maxPlies 步，结果按开局顺序返回
func selfplay(m *game.Manager, n, maxPlies int) []result {
	results := make([]result, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		id := m.NewGame()
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = playOut(m, id, maxPlies)
		}(i, id)
	}
	wg.Wait()
	return results
}

func playOut(m *game.Manager, id string, maxPlies int) result {
	r := result{ID: id, Winner: xiangqi.NoSide}
	start := time.Now()
	ctx := log.WithField("game", id)
	for r.Plies < maxPlies {
		err := m.Do(id, func(g *engine.Game) error {
			side := g.NextPlayer()
			st := g.AutoMove()
			if st.Has(xiangqi.StatusOK) {
				r.Plies++
				ctx.WithFields(log.Fields{
					"ply":    r.Plies,
					"side":   side,
					"move":   g.LastSearch().BestMove,
					"status": st,
				}).Debug("move")
			}
			if st.Has(xiangqi.StatusDead) {
				// 走完后对方死，或自己已无着可走
				if st.Has(xiangqi.StatusOK) {
					r.Winner = side
				} else {
					r.Winner = side.Opposite()
				}
				return errGameOver
			}
			return nil
		})
		if err != nil {
			if !errors.Is(err, errGameOver) {
				ctx.WithError(err).Error("selfplay aborted")
			}
			break
		}
	}
	if err := m.Do(id, func(g *engine.Game) error {
		r.FEN = g.Snapshot().Encode()
		return nil
	}); err != nil {
		ctx.WithError(err).Error("read final position")
	}
	r.Time = time.Since(start)
	return r
}

// benchmark 同一局面下逐层比较两种搜索的节点数与耗时
func benchmark(fen string, maxDepth int) []string {
	s := xiangqi.MustDecodeFEN(fen)
	var lines []string
	for d := 1; d <= maxDepth; d++ {
		for _, strat := range []engine.Strategy{engine.StrategyMinimax, engine.StrategyAlphaBeta} {
			res := engine.NewEngine(engine.SearchConfig{Depth: d, Strategy: strat}).Search(&s)
			nps := int64(0)
			if secs := res.TimeUsed.Seconds(); secs > 0 {
				nps = int64(float64(res.Nodes) / secs)
			}
			lines = append(lines, fmt.Sprintf("depth=%d %-9s best=%v score=%d nodes=%d time=%v nps=%d",
				d, strat, res.BestMove, res.Score, res.Nodes, res.TimeUsed, nps))
		}
	}
	return lines
}
