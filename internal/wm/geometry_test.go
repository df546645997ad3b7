package wm

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestGeometryCacheMemoizes(t *testing.T) {
	calls := 0
	cache := NewGeometryCache(func(xproto.Window) (Geometry, error) {
		calls++
		return Geometry{X: 1, Y: 2, Width: 3, Height: 4}, nil
	})

	want := Geometry{X: 1, Y: 2, Width: 3, Height: 4}
	for i := 0; i < 3; i++ {
		if got := cache.Get(7); got != want {
			t.Fatalf("Get = %+v, want %+v", got, want)
		}
	}
	if calls != 1 {
		t.Fatalf("query called %d times, want 1", calls)
	}
}

func TestGeometryCacheFallbackNotCached(t *testing.T) {
	fail := true
	cache := NewGeometryCache(func(xproto.Window) (Geometry, error) {
		if fail {
			return Geometry{}, errors.New("window gone")
		}
		return Geometry{X: 10, Y: 10, Width: 20, Height: 20}, nil
	})

	if got := cache.Get(7); got != fallbackGeometry {
		t.Fatalf("failed query returned %+v, want fallback %+v", got, fallbackGeometry)
	}

	// The fallback must not shadow a later successful query.
	fail = false
	want := Geometry{X: 10, Y: 10, Width: 20, Height: 20}
	if got := cache.Get(7); got != want {
		t.Fatalf("Get after recovery = %+v, want %+v", got, want)
	}
}

func TestGeometryCacheInvalidate(t *testing.T) {
	g := Geometry{Width: 100, Height: 100}
	cache := NewGeometryCache(func(xproto.Window) (Geometry, error) {
		return g, nil
	})

	cache.Get(7)
	g = Geometry{Width: 640, Height: 480}
	if got := cache.Get(7); got.Width != 100 {
		t.Fatalf("cache returned fresh value without invalidation: %+v", got)
	}

	cache.Invalidate(7)
	if got := cache.Get(7); got.Width != 640 {
		t.Fatalf("Get after invalidate = %+v, want fresh geometry", got)
	}

	// Invalidating an absent entry is harmless.
	cache.Invalidate(99)
}
