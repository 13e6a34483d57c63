package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

type catalogFile struct {
	Products []productEntry `yaml:"products"`
}

type productEntry struct {
	ID    uint64 `yaml:"id"`
	Name  string `yaml:"name"`
	Price price  `yaml:"price"`
}

// price accepts both `price: 19.99` and `price: "19.99"` without going
// through float64.
type price struct {
	decimal.Decimal
}

func (p *price) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid price %q: %w", node.Line, node.Value, err)
	}
	p.Decimal = d
	return nil
}

// LoadFile reads a YAML catalog of the form
//
//	products:
//	  - id: 1
//	    name: Laptop
//	    price: 1000
//
// and returns the products in file order.
func LoadFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]models.Product, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]models.Product, 0, len(file.Products))
	for _, entry := range file.Products {
		products = append(products, models.Product{
			ID:    entry.ID,
			Name:  entry.Name,
			Price: entry.Price.Decimal,
		})
	}

	if err := Validate(products); err != nil {
		return nil, err
	}
	return products, nil
}

// NewFileRepository loads path once and serves it from memory.
func NewFileRepository(path string) (Repository, error) {
	products, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewStaticRepository(products)
}
