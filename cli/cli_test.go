package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/cherryprincess/shopping-cart-APP/config"
	"github.com/cherryprincess/shopping-cart-APP/render"
)

func newTestShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	a, err := newApp(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	var out bytes.Buffer
	return &shell{
		service:  a.service,
		renderer: render.New(true),
		currency: cfg.Currency(),
		out:      &out,
	}, &out
}

func TestShell_Session(t *testing.T) {
	sh, out := newTestShell(t)

	input := strings.Join([]string{
		"add 1",
		"add 1",
		"remove 1",
		"add 3",
		"remove 9",
		"bogus",
		"add",
		"cart",
		"quit",
		"add 2", // never read
	}, "\n")

	if err := sh.run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Laptop - $1000 [add 1]",
		"Your cart is empty.",
		"Laptop x 2 ($2000) [remove 1]",
		"Total: $2000",
		"Headphones x 1 ($100) [remove 3]",
		"Total: $1100",
		`error: unknown command "bogus"`,
		"error: usage: add <product id>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "Phone x") {
		t.Errorf("command after quit was executed:\n%s", got)
	}
}

func TestShell_EOF(t *testing.T) {
	sh, _ := newTestShell(t)
	if err := sh.run(context.Background(), strings.NewReader("add 2")); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if view := sh.service.GetCart(context.Background()); len(view.Lines) != 1 {
		t.Errorf("cart = %+v, want one line", view.Lines)
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		args    []string
		want    uint64
		wantErr bool
	}{
		{[]string{"add", "4"}, 4, false},
		{[]string{"add"}, 0, true},
		{[]string{"add", "x"}, 0, true},
		{[]string{"add", "-1"}, 0, true},
		{[]string{"add", "1", "2"}, 0, true},
	}
	for _, c := range cases {
		got, err := parseID(c.args)
		if (err != nil) != c.wantErr || got != c.want {
			t.Errorf("parseID(%v) = %d, %v", c.args, got, err)
		}
	}
}

func TestProductsCommand_YAMLCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("products:\n  - {id: 8, name: Kettle, price: 35}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"products", "--plain", "--log-level", "error", "--catalog-source", "yaml", "--catalog-file", path, "--currency", "eur"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "Kettle - €35 [add 8]") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"products", "--catalog-source", "mongo"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want invalid config")
	}
}
