package cli

import (
	"github.com/spf13/cobra"

	"github.com/cherryprincess/shopping-cart-APP/render"
)

func newProductsCmd(root *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Print the product catalog",
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

			products, err := a.service.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			render.New(plain).Products(cmd.OutOrStdout(), products, cfg.Currency())
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors and styling")
	return cmd
}
