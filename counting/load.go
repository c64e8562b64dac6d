package counting

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type tableDocument struct {
	Strategies []strategyDocument `yaml:"strategies"`
}

type strategyDocument struct {
	Name    string             `yaml:"name"`
	Weights map[string]float64 `yaml:"weights"`
}

// LoadTable reads a YAML strategy table and validates every strategy in it.
func LoadTable(r io.Reader) (Table, error) {
	var doc tableDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Table{}, fmt.Errorf("failed to decode strategy table: %w", err)
	}
	if len(doc.Strategies) == 0 {
		return Table{}, fmt.Errorf("%w: table has no strategies", ErrIncompleteStrategy)
	}

	strategies := make([]Strategy, 0, len(doc.Strategies))
	for _, sd := range doc.Strategies {
		s, err := NewStrategy(sd.Name, sd.Weights)
		if err != nil {
			return Table{}, err
		}
		strategies = append(strategies, s)
	}
	return NewTable(strategies...)
}

func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open strategy table: %w", err)
	}
	defer f.Close()

	return LoadTable(f)
}

// Write encodes the table in the format LoadTable reads.
func (t Table) Write(w io.Writer) error {
	doc := tableDocument{}
	for _, name := range t.Names() {
		s := t.strategies[name]
		doc.Strategies = append(doc.Strategies, strategyDocument{Name: s.Name, Weights: s.Weights()})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode strategy table: %w", err)
	}
	return encoder.Close()
}
