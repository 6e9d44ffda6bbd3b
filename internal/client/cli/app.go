package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/roster/internal/client/client"
	"github.com/dmitrijs2005/roster/internal/client/config"
	"github.com/dmitrijs2005/roster/internal/client/coordinator"
	"github.com/dmitrijs2005/roster/internal/client/kv"
	"github.com/dmitrijs2005/roster/internal/client/store"
	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster"
)

type App struct {
	coord   *coordinator.Coordinator
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
	closers []func() error
}

// NewApp opens the store selected by c and wires the coordinator to the
// terminal.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	reader := bufio.NewReader(os.Stdin)
	out := io.Writer(os.Stdout)

	st, closers, err := openStore(ctx, c, out)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "store opened", "store", c.StoreKind)

	a := newApp(st, reader, out, log)
	a.closers = closers
	return a, nil
}

func newApp(st store.Store, reader *bufio.Reader, out io.Writer, log logging.Logger) *App {
	confirmer := &promptConfirmer{reader: reader, w: out}
	return &App{
		coord:  coordinator.New(st, NewToaster(out), confirmer, log),
		reader: reader,
		out:    out,
		log:    log,
	}
}

func openStore(ctx context.Context, c *config.Config, w io.Writer) (store.Store, []func() error, error) {
	switch store.Kind(c.StoreKind) {
	case store.KindLocal:
		repo, db, err := client.InitDatabase(ctx, c.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		return store.NewLocalStore(repo), []func() error{db.Close}, nil

	case store.KindS3:
		s3c, err := kv.NewS3Client(ctx, kv.S3Options{
			Bucket:    c.S3Bucket,
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Prefix:    c.S3Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return store.NewLocalStore(kv.NewS3Repository(s3c, c.S3Bucket, c.S3Prefix)), nil, nil

	case store.KindRemote:
		key := c.APIKey
		if key == "" && isTerminal(int(os.Stdin.Fd())) {
			var err error
			if key, err = GetSecret("API key: ", w); err != nil {
				return nil, nil, err
			}
		}
		gc, err := client.NewGRPCClient(c.ServerEndpointAddr, key, c.RequestTimeout)
		if err != nil {
			return nil, nil, err
		}
		if err := gc.Ping(ctx); err != nil {
			_ = gc.Close()
			return nil, nil, fmt.Errorf("error reaching server %s: %w", c.ServerEndpointAddr, err)
		}
		return store.NewRemoteStore(gc), []func() error{gc.Close}, nil
	}
	return nil, nil, fmt.Errorf("unknown store kind %q", c.StoreKind)
}

// Run loads the list in the background, opens the Add form and then blocks
// in the REPL until the user leaves or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	fmt.Fprintln(a.out, "Student Management System (type 'help' for commands)")

	go func() { _ = a.coord.Mount(ctx) }()

	if err := a.Add(ctx); err != nil && !errors.Is(err, io.EOF) {
		a.log.Warn(ctx, "add form aborted", "error", err)
	}

	runREPL(ctx, a, a.status, a.reader)
	a.coord.Close()
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close failed", "error", err)
		}
	}
}

func (a *App) status() string {
	st := a.coord.State()
	if st.Editing != nil {
		return fmt.Sprintf("(%s: editing %s)", st.Mode, st.Editing.ID)
	}
	return fmt.Sprintf("(%s)", st.Mode)
}

func (a *App) render() {
	renderTable(a.out, a.coord.State(), a.coord.Visible())
}

func (a *App) Add(ctx context.Context) error {
	a.coord.Add()
	return a.compose(ctx, roster.Fields{}, false)
}

func (a *App) View(ctx context.Context) error {
	a.coord.View()
	a.render()
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	a.coord.Search(query)
	return a.View(ctx)
}

func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.coord.Edit(id); err != nil {
		a.explain(err, id)
		return err
	}
	editing := a.coord.State().Editing
	return a.compose(ctx, editing.Fields, true)
}

func (a *App) Delete(ctx context.Context, id string) error {
	err := a.coord.Delete(ctx, id)
	switch {
	case errors.Is(err, coordinator.ErrInvalidTransition), errors.Is(err, common.ErrNotFound):
		a.explain(err, id)
		return err
	case err != nil && !errors.Is(err, common.ErrWrite):
		// the store error was already toasted
		fmt.Fprintln(a.out, "Delete aborted:", err)
	}
	a.render()
	return err
}

// compose runs the form until it is submitted successfully or cancelled.
// Rejected submissions bring the form back with the entered values.
func (a *App) compose(ctx context.Context, f roster.Fields, editing bool) error {
	var fieldErrs roster.ValidationErrors
	for {
		var action formAction
		var err error
		f, action, err = runForm(a.reader, a.out, editing, f, fieldErrs)
		if err != nil {
			return err
		}

		if action == actionCancel {
			if editing {
				_ = a.coord.Cancel()
				a.render()
			} else {
				fmt.Fprintln(a.out, "Form discarded. Type 'view' to see the list.")
			}
			return nil
		}

		err = a.coord.Submit(ctx, f)
		var ve *roster.ValidationError
		switch {
		case err == nil:
			a.render()
			return nil
		case errors.As(err, &ve):
			fieldErrs = ve.Fields
		case errors.Is(err, coordinator.ErrSubmitInProgress):
			fmt.Fprintln(a.out, "A submission is already in progress")
			return err
		default:
			fieldErrs = nil
		}
	}
}

func (a *App) explain(err error, id string) {
	switch {
	case errors.Is(err, coordinator.ErrInvalidTransition):
		fmt.Fprintln(a.out, "Records can only be changed from the list. Type 'view' first.")
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintf(a.out, "No student with id %s\n", id)
	default:
		fmt.Fprintln(a.out, err)
	}
}
