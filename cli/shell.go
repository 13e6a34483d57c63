package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stripe/stripe-go/v79"

	shop "github.com/cherryprincess/shopping-cart-APP"
	"github.com/cherryprincess/shopping-cart-APP/render"
)

const shellHelp = `Commands:
  products          list the catalog
  cart              show the cart
  add <id>          add one unit of a product
  remove <id>       remove one unit of a product
  help              show this help
  quit              leave the shell`

func newShellCmd(root *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Browse products and manage the cart interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			sh := &shell{
				service:  a.service,
				renderer: render.New(plain),
				currency: cfg.Currency(),
				out:      cmd.OutOrStdout(),
			}
			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors and styling")
	return cmd
}

// shell reads one command per line and redraws the cart after every change.
type shell struct {
	service  shop.Service
	renderer *render.Renderer
	currency stripe.Currency
	out      io.Writer
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	sh.renderer.Banner(sh.out)
	if err := sh.showProducts(ctx); err != nil {
		return err
	}
	sh.renderer.Cart(sh.out, sh.service.GetCart(ctx))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}

		quit, err := sh.exec(ctx, strings.Fields(scanner.Text()))
		if err != nil {
			fmt.Fprintln(sh.out, "error:", err)
		}
		if quit {
			return nil
		}
	}
}

func (sh *shell) exec(ctx context.Context, args []string) (quit bool, err error) {
	if len(args) == 0 {
		return false, nil
	}

	switch strings.ToLower(args[0]) {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
	case "products", "p":
		return false, sh.showProducts(ctx)
	case "cart", "c":
		sh.renderer.Cart(sh.out, sh.service.GetCart(ctx))
	case "add", "a":
		id, err := parseID(args)
		if err != nil {
			return false, err
		}
		view, err := sh.service.AddToCart(ctx, id)
		if err != nil {
			return false, err
		}
		sh.renderer.Cart(sh.out, view)
	case "remove", "rm", "r":
		id, err := parseID(args)
		if err != nil {
			return false, err
		}
		view, err := sh.service.RemoveFromCart(ctx, id)
		if err != nil {
			return false, err
		}
		sh.renderer.Cart(sh.out, view)
	default:
		return false, fmt.Errorf("unknown command %q, try help", args[0])
	}
	return false, nil
}

func (sh *shell) showProducts(ctx context.Context) error {
	products, err := sh.service.ListProducts(ctx)
	if err != nil {
		return err
	}
	sh.renderer.Products(sh.out, products, sh.currency)
	return nil
}

func parseID(args []string) (uint64, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("usage: %s <product id>", args[0])
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", args[1])
	}
	return id, nil
}
