package routes

import (
	_ "embed"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed allowlist.yml
var defaultAllowList []byte

var ErrDuplicateStop = errors.New("routes: duplicate stop")

type Stop struct {
	ID       string          `yaml:"stop" validate:"required,numeric"`
	Services map[string]bool `yaml:"services" validate:"required,min=1"`
}

type document struct {
	Stops []Stop `yaml:"stops" validate:"required,min=1,dive"`
}

// AllowList is read-only once built.
type AllowList struct {
	order    []string
	services map[string]map[string]bool
}

func Default() (AllowList, error) {
	return Parse(defaultAllowList)
}

func Parse(data []byte) (AllowList, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return AllowList{}, fmt.Errorf("routes: decode allow-list: %w", err)
	}

	if err := validator.New().Struct(doc); err != nil {
		return AllowList{}, fmt.Errorf("routes: invalid allow-list: %w", err)
	}

	return New(doc.Stops...)
}

func New(stops ...Stop) (AllowList, error) {
	a := AllowList{
		order:    make([]string, 0, len(stops)),
		services: make(map[string]map[string]bool, len(stops)),
	}

	for _, s := range stops {
		if _, ok := a.services[s.ID]; ok {
			return AllowList{}, fmt.Errorf("%w: %s", ErrDuplicateStop, s.ID)
		}

		services := make(map[string]bool, len(s.Services))
		for id, enabled := range s.Services {
			services[id] = enabled
		}

		a.order = append(a.order, s.ID)
		a.services[s.ID] = services
	}

	return a, nil
}

func (a AllowList) StopIDs() []string {
	ids := make([]string, len(a.order))
	copy(ids, a.order)
	return ids
}

func (a AllowList) Allows(stopID, serviceID string) bool {
	return a.services[stopID][serviceID]
}
