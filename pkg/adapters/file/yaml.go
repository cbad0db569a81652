package file

import (
	"fmt"
	"io"
	"reflect"

	"github.com/aretw0/piratemap/internal/dto"
	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/aretw0/piratemap/pkg/navigation"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ParseYAML reads a map in the YAML format.
func ParseYAML(r io.Reader) (domain.TreasureMap, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return domain.TreasureMap{}, &domain.ParseError{Reason: "missing start coordinate"}
		}
		return domain.TreasureMap{}, &domain.ParseError{Reason: "invalid yaml", Err: err}
	}
	return FromTree(raw)
}

// FromTree decodes an already parsed YAML or JSON object into a map.
func FromTree(raw map[string]any) (domain.TreasureMap, error) {
	if _, ok := raw["start"]; !ok {
		return domain.TreasureMap{}, &domain.ParseError{Reason: "missing start coordinate"}
	}

	var doc dto.MapDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.DecodeHookFuncType(pairHook),
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return domain.TreasureMap{}, fmt.Errorf("build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return domain.TreasureMap{}, &domain.ParseError{Reason: "invalid map document", Err: err}
	}

	return FromDocument(doc)
}

// FromDocument resolves headings for a structured map document.
func FromDocument(doc dto.MapDocument) (domain.TreasureMap, error) {
	m := domain.TreasureMap{
		Start:        domain.C(doc.Start.Row, doc.Start.Col),
		Instructions: make([]domain.Instruction, 0, len(doc.Instructions)),
	}
	for _, ins := range doc.Instructions {
		m.Instructions = append(m.Instructions, domain.Instruction{Azimuth: ins.Azimuth, Steps: ins.Steps})
	}

	waypoints, idx, err := navigation.ResolveAll(m.Instructions)
	if err != nil {
		return domain.TreasureMap{}, &domain.ParseError{
			Reason: fmt.Sprintf("invalid instruction #%d", idx+1),
			Err:    err,
		}
	}
	m.Waypoints = waypoints
	return m, nil
}

var (
	pointType       = reflect.TypeOf(dto.Point{})
	instructionType = reflect.TypeOf(dto.Instruction{})
)

// pairHook lets points and instructions be written as two-element sequences.
func pairHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice {
		return data, nil
	}

	var keys [2]string
	switch to {
	case pointType:
		keys = [2]string{"row", "col"}
	case instructionType:
		keys = [2]string{"azimuth", "steps"}
	default:
		return data, nil
	}

	items, ok := data.([]any)
	if !ok || len(items) != 2 {
		return nil, fmt.Errorf("expected a [%s, %s] pair", keys[0], keys[1])
	}
	return map[string]any{keys[0]: items[0], keys[1]: items[1]}, nil
}
