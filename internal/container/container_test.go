package container

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface {
	Greet() string
}

type english struct{ name string }

func (e *english) Greet() string { return "hello " + e.name }

type shouter struct{}

func (shouter) Greet() string { return "HEY" }

var (
	nameToken    = NewToken[string]("name")
	greeterToken = NewToken[greeter]("greeter")
)

func TestResolve_Singleton(t *testing.T) {
	c := New()
	builds := 0

	Value(c, nameToken, "ada")
	Provide(c, greeterToken, func(c *Container) (greeter, error) {
		builds++
		name, err := Resolve(c, nameToken)
		if err != nil {
			return nil, err
		}
		return &english{name: name}, nil
	})

	first, err := Resolve(c, greeterToken)
	require.NoError(t, err)
	second, err := Resolve(c, greeterToken)
	require.NoError(t, err)

	assert.Equal(t, "hello ada", first.Greet())
	assert.Same(t, first.(*english), second.(*english))
	assert.Equal(t, 1, builds)
}

func TestResolve_NotRegistered(t *testing.T) {
	c := New()

	_, err := Resolve(c, greeterToken)
	require.ErrorIs(t, err, ErrNotRegistered)
	assert.Contains(t, err.Error(), "greeter")
}

func TestResolve_MissingDependency(t *testing.T) {
	c := New()
	Provide(c, greeterToken, func(c *Container) (greeter, error) {
		name, err := Resolve(c, nameToken)
		return &english{name: name}, err
	})

	_, err := Resolve(c, greeterToken)
	require.ErrorIs(t, err, ErrNotRegistered)
	assert.Contains(t, err.Error(), "resolve greeter: resolve name")
}

func TestResolve_Cycle(t *testing.T) {
	c := New()
	a := NewToken[int]("a")
	b := NewToken[int]("b")

	Provide(c, a, func(c *Container) (int, error) { return Resolve(c, b) })
	Provide(c, b, func(c *Container) (int, error) { return Resolve(c, a) })

	_, err := Resolve(c, a)
	require.ErrorIs(t, err, ErrCycle)
	assert.Contains(t, err.Error(), "a -> b -> a")
}

func TestResolve_FactoryErrorNotCached(t *testing.T) {
	c := New()
	fail := true
	Provide(c, nameToken, func(*Container) (string, error) {
		if fail {
			return "", errors.New("not yet")
		}
		return "ok", nil
	})

	_, err := Resolve(c, nameToken)
	require.Error(t, err)

	fail = false
	v, err := Resolve(c, nameToken)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestProvide_ReplacesImplementation(t *testing.T) {
	c := New()
	Value(c, nameToken, "ada")
	Provide(c, greeterToken, func(c *Container) (greeter, error) {
		return &english{name: MustResolve(c, nameToken)}, nil
	})
	_ = MustResolve(c, greeterToken)

	Provide(c, greeterToken, func(*Container) (greeter, error) { return shouter{}, nil })

	g := MustResolve(c, greeterToken)
	assert.Equal(t, "HEY", g.Greet())
}

func TestMustResolve_Panics(t *testing.T) {
	assert.Panics(t, func() { MustResolve(New(), nameToken) })
}

func TestNamesAndHas(t *testing.T) {
	c := New()
	Value(c, nameToken, "x")
	Value(c, greeterToken, greeter(shouter{}))

	assert.Equal(t, []string{"greeter", "name"}, c.Names())
	assert.True(t, c.Has("name"))
	assert.False(t, c.Has("missing"))
}
