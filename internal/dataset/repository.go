// Package dataset holds the fixed mock datasets behind the dashboard, one
// immutable bundle per range key.
package dataset

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/pulsemetrics/internal/format"
	apperrors "github.com/alexisbeaulieu97/pulsemetrics/pkg/errors"
)

//go:embed bundles.yaml
var embeddedBundles []byte

const tableName = "bundle table"

// Repository maps every range key to its bundle. It never mutates after
// construction.
type Repository struct {
	bundles map[RangeKey]Bundle
}

// NewRepository decodes and validates a bundle table.
func NewRepository(data []byte) (*Repository, error) {
	table := make(map[RangeKey]Bundle)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, apperrors.NewParseError(tableName, 0, err)
	}

	if err := validateTable(table); err != nil {
		return nil, err
	}

	return &Repository{bundles: table}, nil
}

// MustLoad is NewRepository for tables that are known at build time. A
// malformed table is a programming error.
func MustLoad(data []byte) *Repository {
	repo, err := NewRepository(data)
	if err != nil {
		panic(fmt.Sprintf("dataset: %v", err))
	}
	return repo
}

// Lookup returns a copy of the bundle for key. An unknown key panics: the
// enumeration is closed, so reaching here with one is a bug.
func (r *Repository) Lookup(key RangeKey) Bundle {
	bundle, ok := r.bundles[key]
	if !ok {
		panic(fmt.Sprintf("dataset: unknown range key %q", string(key)))
	}
	return bundle.clone()
}

var (
	defaultOnce sync.Once
	defaultRepo *Repository
)

// Default returns the repository built from the embedded table.
func Default() *Repository {
	defaultOnce.Do(func() {
		defaultRepo = MustLoad(embeddedBundles)
	})
	return defaultRepo
}

// Lookup looks key up in the default repository.
func Lookup(key RangeKey) Bundle {
	return Default().Lookup(key)
}

func validateTable(table map[RangeKey]Bundle) error {
	for _, key := range rangeOrder {
		if _, ok := table[key]; !ok {
			return apperrors.NewValidationError(string(key), "missing bundle", nil)
		}
	}

	v := validatorInstance()
	for key, bundle := range table {
		if !key.Valid() {
			return apperrors.NewValidationError(string(key), "unknown range key", nil)
		}
		if err := v.Struct(bundle); err != nil {
			return apperrors.NewValidationError(string(key), "invalid bundle", err)
		}

		seen := make(map[MetricID]struct{}, len(bundle.Metrics))
		for _, m := range bundle.Metrics {
			if _, dup := seen[m.ID]; dup {
				return apperrors.NewValidationError(string(key)+".metrics", fmt.Sprintf("duplicate metric id %q", m.ID), nil)
			}
			seen[m.ID] = struct{}{}
		}
	}
	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("metric_id", func(fl validator.FieldLevel) bool {
			id := MetricID(fl.Field().String())
			for _, known := range MetricIDs {
				if id == known {
					return true
				}
			}
			return false
		})

		_ = v.RegisterValidation("value_type", func(fl validator.FieldLevel) bool {
			return format.ValueType(fl.Field().String()).Valid()
		})

		validateInst = v
	})
	return validateInst
}
