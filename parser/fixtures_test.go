package parser_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"type-parser/container"
	"type-parser/descriptor"
	"type-parser/parser"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	}

	return "Color(" + strconv.Itoa(int(c)) + ")"
}

type Celsius float64

// Node has no way out of its own type.
type Node struct{ Next *Node }

type Email struct{ Addr string }

// Opaque has no parser, factory or constructor.
type Opaque struct{ a, b int }

// Bag wraps a slice of values that have no parser.
type Bag struct{ Items []Opaque }

type Crate struct{ Items []int }

type Version struct{ Major, Minor int }

func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, errors.New("want major.minor")
	}

	m, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, err
	}

	n, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, err
	}

	return Version{m, n}, nil
}

func versionFromOpaque(Opaque) Version { panic("unreachable") }

type Even int

func evenOnly(n int) (Even, bool) { return Even(n), n%2 == 0 }

type Boom struct{ x, y int }

func explode(string) Boom { panic("boom") }

// Loop is only reachable from another Loop.
type Loop struct{ a, b int }

func loopFrom(l Loop) Loop { return l }

type Level struct{ n int }

func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "low":
		l.n = 1
	case "high":
		l.n = 9
	default:
		return fmt.Errorf("unknown level %q", text)
	}

	return nil
}

// ValueBag is a collection that cannot be constructed from a zero pointer.
type ValueBag struct{}

func (ValueBag) Add(any)       {}
func (ValueBag) Len() int      { return 0 }
func (ValueBag) Values() []any { return nil }

// Picky refuses to initialize.
type Picky struct{ container.ArrayList }

func (*Picky) Init() error { return errors.New("not today") }

type Named interface {
	SetName(string)
}

type Person struct {
	Name     string
	Greeting string
}

func (p *Person) SetName(n string) { p.Name, p.Greeting = n, "hello "+n }

type Robot struct{ Serial string }

func (r *Robot) SetName(n string) { r.Serial = "R-" + n }

// nameSetter builds any pointer-to-struct Named target.
var nameSetter = parser.StrategyFunc(func(input string, target descriptor.Type, _ *parser.Helper) parser.Outcome {
	raw := target.Raw()
	if raw.Kind() != reflect.Pointer {
		return parser.TryNext()
	}

	v := reflect.New(raw.Elem()).Interface().(Named)
	v.SetName(strings.TrimSpace(input))

	return parser.Produced(v)
})

type ServerOptions struct {
	Host string   `form:"host" validate:"required"`
	Port int      `form:"port" validate:"gte=1,lte=65535"`
	Tags []string `form:"tag"`
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newBuilder returns a builder with every fixture registered.
func newBuilder() *parser.Builder {
	return parser.NewBuilder().
		WithLogger(quietLogger()).
		RegisterEnum(parser.Enum(Red, Green, Blue)).
		RegisterFactory(versionFromOpaque, ParseVersion, evenOnly, explode, loopFrom).
		RegisterTypeName(reflect.TypeFor[Celsius](), reflect.TypeFor[Node]())
}

func newEngine(t *testing.T) *parser.Engine {
	t.Helper()

	e, err := newBuilder().Build()
	require.NoError(t, err)

	return e
}

func requireKind(t *testing.T, err error, kind error) *parser.Error {
	t.Helper()

	require.ErrorIs(t, err, kind)

	var pe *parser.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, kind, pe.Kind)

	return pe
}
