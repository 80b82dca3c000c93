package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/relaxrp/storefront/internal/api"
	"github.com/relaxrp/storefront/internal/cart"
	"github.com/relaxrp/storefront/internal/catalog"
	"github.com/relaxrp/storefront/internal/config"
	"github.com/relaxrp/storefront/internal/domain"
	"github.com/relaxrp/storefront/internal/session"
)

// App wires every subcommand to the shared client components.
type App struct {
	cfg      *config.Config
	api      *api.Client
	cart     *cart.Store
	catalog  *catalog.Cache
	sessions *session.Manager
	logger   *zap.Logger
	out      io.Writer
}

func NewApp(cfg *config.Config, client *api.Client, cartStore *cart.Store, cache *catalog.Cache, sessions *session.Manager, logger *zap.Logger, out io.Writer) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:      cfg,
		api:      client,
		cart:     cartStore,
		catalog:  cache,
		sessions: sessions,
		logger:   logger,
		out:      out,
	}
}

// Run dispatches a subcommand. Backend rejections come back as plain
// one-line notices, never as panics or stack traces.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "products":
		return a.listProducts(ctx, rest)
	case "product":
		return a.showProduct(ctx, rest)
	case "product-create":
		return a.createProduct(ctx, rest)
	case "product-update":
		return a.updateProduct(ctx, rest)
	case "product-delete":
		return a.deleteProduct(ctx, rest)
	case "cart":
		return a.cartCommand(ctx, rest)
	case "checkout":
		return a.checkout(ctx)
	case "confirm":
		return a.confirm(ctx, rest)
	case "orders":
		return a.listOrders(ctx, rest)
	case "ticket":
		return a.ticketCommand(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// requireUser resolves the persisted login or fails the command.
func (a *App) requireUser(ctx context.Context) (*domain.User, error) {
	user := a.sessions.Current(ctx)
	if user == nil {
		return nil, errors.New("not logged in, run: storefront login")
	}
	return user, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) usage() {
	a.printf(`Usage: storefront <command> [arguments]

Commands:
  register -email -password -name     create an account
  login -email -password              log in and persist the session
  logout                              forget the persisted session
  products [-category]                list products
  product <id>                        show one product
  cart add <product-id>               add a product to the cart
  cart list                           show the cart and its total
  cart update <product-id> <delta>    adjust quantity (floors at 1)
  cart remove <product-id>            remove a line
  cart clear                          empty the cart
  checkout                            start payment and wait for confirmation
  confirm <session-id>                poll an existing checkout session
  orders [-all]                       list orders (-all is admin-only)
  ticket create|list|show|reply|status
  product-create|product-update|product-delete (admin)
`)
}
