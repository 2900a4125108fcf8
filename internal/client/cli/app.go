package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/dmitrijs2005/pocketbank/internal/client/services"
	"github.com/dmitrijs2005/pocketbank/internal/logging"
)

// App is the interactive client. It holds at most one session.
type App struct {
	accounts   services.AccountService
	deposits   *services.DepositService
	reconciler *services.Reconciler
	log        logging.Logger

	session *models.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(
	accounts services.AccountService,
	deposits *services.DepositService,
	reconciler *services.Reconciler,
	log logging.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		accounts:   accounts,
		deposits:   deposits,
		reconciler: reconciler,
		log:        log,
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to PocketBank (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
	a.log.Debug(ctx, "repl finished", "signed_in", a.isLoggedIn())
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Identity())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
