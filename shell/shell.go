package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"negamax/config"
	"negamax/game"
	"negamax/game/tictactoe"
	"negamax/searcher"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

// ShellController lets a human play tic-tac-toe against the negamax searcher. The human moves
// first.
type ShellController struct {
	l   *readline.Instance
	out io.Writer

	game      *tictactoe.Game
	ai        *searcher.Negamax
	advisor   *searcher.Negamax
	humanSide game.Side
	over      bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func searchOptions(cfg *config.Config) []searcher.Option {
	options := []searcher.Option{searcher.WithCutoff(cfg.Cutoff)}
	if cfg.OpponentWinPruning {
		options = append(options, searcher.WithOpponentWinPruning())
	}
	return options
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mnegamax>\033[0m ",
		HistoryFile:     cfg.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start readline: %w", err)
	}
	sc := newController(l.Stdout(), cfg.AISide, searchOptions(cfg))
	sc.l = l
	return sc, nil
}

func newController(out io.Writer, aiSide game.Side, options []searcher.Option) *ShellController {
	return &ShellController{
		out:       out,
		game:      tictactoe.New(),
		ai:        searcher.NewNegamax(aiSide, options...),
		advisor:   searcher.NewNegamax(aiSide.Other(), options...),
		humanSide: aiSide.Other(),
	}
}

func (sc *ShellController) showMessage(format string, args ...any) {
	fmt.Fprintf(sc.out, format+"\n", args...)
}

func (sc *ShellController) showBoard() {
	sc.showMessage("\n%s", sc.game)
}

func (sc *ShellController) usage() {
	sc.showMessage("commands:")
	sc.showMessage("<row>,<col> - play your %s at row, col (0-indexed)", tictactoe.Glyph(sc.humanSide))
	sc.showMessage("hint - show the searcher's valuation of your moves")
	sc.showMessage("undo - take back your last move and the reply")
	sc.showMessage("board - show the board")
	sc.showMessage("new - start a new game")
	sc.showMessage("exit - quit")
}

// Loop reads commands until exit, EOF or an interrupt on an empty line.
func (sc *ShellController) Loop() {
	defer sc.l.Close()

	sc.usage()
	sc.showBoard()
	for {
		line, err := sc.l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		}

		if quit := sc.handle(strings.TrimSpace(line)); quit {
			break
		}
	}
	log.Debug().Msg("exiting readline loop...")
}

func (sc *ShellController) handle(line string) (quit bool) {
	switch line {
	case "":
	case "exit", "quit":
		return true
	case "help":
		sc.usage()
	case "board":
		sc.showBoard()
	case "new":
		sc.game = tictactoe.New()
		sc.over = false
		sc.showBoard()
	case "undo":
		sc.undo()
	case "hint":
		sc.hint()
	default:
		sc.play(line)
	}
	return false
}

func (sc *ShellController) play(line string) {
	if sc.over {
		sc.showMessage("game is over, type new to play again")
		return
	}
	move, err := tictactoe.ParseCoord(line)
	if err == nil {
		err = sc.game.Validate(move)
	}
	if err != nil {
		sc.showMessage("%v", err)
		return
	}

	sc.game.Move(sc.humanSide, move, true)
	if sc.finished(sc.humanSide, "Player wins!") {
		return
	}
	sc.aiMove()
}

func (sc *ShellController) aiMove() {
	sc.showMessage("AI's turn")
	sc.ai.Search(sc.game)
	move, ok := sc.ai.BestMove()
	if !ok {
		sc.over = true
		sc.showMessage("AI forfeits!")
		return
	}
	log.Debug().Stringer("move", move).Msg("ai move")
	sc.game.Move(sc.ai.Side(), move, true)
	sc.finished(sc.ai.Side(), "AI wins!")
}

// finished shows the board and announces the end of the game, if side's last move ended it.
func (sc *ShellController) finished(side game.Side, win string) bool {
	sc.showBoard()
	switch {
	case sc.game.IsWinner(side):
		sc.showMessage(win)
	case sc.game.IsOver():
		sc.showMessage("Tie game!")
	default:
		return false
	}
	sc.over = true
	return true
}

// undo takes back moves until it is the human's turn with one fewer human move on the board.
func (sc *ShellController) undo() {
	history := sc.game.History()
	if history == 0 {
		sc.showMessage("nothing to undo")
		return
	}
	sc.game.Undo()
	if history%2 == 0 {
		sc.game.Undo()
	}
	sc.over = false
	sc.showBoard()
}

func (sc *ShellController) hint() {
	if sc.over {
		sc.showMessage("game is over, type new to play again")
		return
	}
	sc.advisor.Search(sc.game)
	for _, v := range sc.advisor.Valuations() {
		sc.showMessage("%v: %.1f", v.Move, v.Value)
	}
	if move, ok := sc.advisor.BestMove(); ok {
		sc.showMessage("best: %v", move)
	}
}
