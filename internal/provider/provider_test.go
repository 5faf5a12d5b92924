package provider

import (
	"errors"
	"reflect"
	"testing"

	"go-flat-icons/internal/sun"
)

func TestDefaultProvider(t *testing.T) {
	p := Default()
	if got, want := p.Names(), []string{"clear_day", "sun"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for _, name := range []string{"sun", "clear_day"} {
		icon, err := p.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if _, ok := icon.(*sun.Drawable); !ok {
			t.Errorf("Get(%q) = %T, want *sun.Drawable", name, icon)
		}
	}
}

func TestGetReturnsFreshInstances(t *testing.T) {
	p := Default()
	a, _ := p.Get("sun")
	b, _ := p.Get("sun")
	if a == b {
		t.Error("Get returned the same instance twice")
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Default().Get("rain")
	if !errors.Is(err, ErrUnknownIcon) {
		t.Errorf("Get(rain) error = %v, want ErrUnknownIcon", err)
	}
}

func TestRegisterReplaces(t *testing.T) {
	p := New()
	calls := 0
	p.Register("x", func() sun.Icon { calls++; return sun.New() })
	p.Register("x", func() sun.Icon { calls += 10; return sun.New() })
	if _, err := p.Get("x"); err != nil {
		t.Fatal(err)
	}
	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
}
