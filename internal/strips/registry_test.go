package strips

import (
	"testing"

	"github.com/gitrdm/graphplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

type stubSchema struct {
	name   string
	ground func(Universe) []domain.GroundAction
}

func (s stubSchema) Name() string { return s.name }
func (s stubSchema) Ground(u Universe) []domain.GroundAction {
	if s.ground == nil {
		return nil
	}
	return s.ground(u)
}

func TestSchemaRegistryRegisterAndGet(t *testing.T) {
	reg := NewSchemaRegistry()
	err := reg.Register(stubSchema{name: "Load"})
	assert.NoError(t, err)

	got, ok := reg.Get("Load")
	assert.True(t, ok)
	assert.Equal(t, "Load", got.Name())

	_, ok = reg.Get("Unload")
	assert.False(t, ok)
}

func TestSchemaRegistryRejectsDuplicateName(t *testing.T) {
	reg := NewSchemaRegistry()
	assert.NoError(t, reg.Register(stubSchema{name: "Load"}))
	assert.Error(t, reg.Register(stubSchema{name: "Load"}))
}

func TestSchemaRegistryRejectsNil(t *testing.T) {
	reg := NewSchemaRegistry()
	assert.Error(t, reg.Register(nil))
}

func TestCatalogueGroundsEveryRegisteredSchema(t *testing.T) {
	reg := NewSchemaRegistry()
	_ = reg.Register(stubSchema{name: "A", ground: func(u Universe) []domain.GroundAction {
		return []domain.GroundAction{domain.NewGroundAction("a1", nil, nil, nil, nil, false)}
	}})
	_ = reg.Register(stubSchema{name: "B", ground: func(u Universe) []domain.GroundAction {
		return []domain.GroundAction{domain.NewGroundAction("b1", nil, nil, nil, nil, false)}
	}})

	cat := NewCatalogue(reg, NewUniverse(nil))
	assert.Len(t, cat.Actions(), 2)
}
