package locate

import (
	"errors"
	"sync"
	"testing"

	"dispatch/internal/geo"
	"dispatch/internal/zone"
)

func circleZone(t *testing.T, name string, x, y, r int) zone.Zone {
	t.Helper()
	s, err := zone.NewCircle(geo.Point{X: x, Y: y}, r)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	return zone.Zone{Name: name, Shape: s}
}

func novobobrovsk(t *testing.T) City {
	t.Helper()
	return City{
		Name:         "Novobobrovsk",
		CommonNumber: "8 (800) 555 35 35",
		Zones: []zone.Zone{
			circleZone(t, "Market", 0, 0, 5),
			{Name: "Pasture", Shape: zone.NewTriangle(geo.Point{X: 5, Y: 5}, geo.Point{X: 10, Y: 5}, geo.Point{X: 10, Y: 10})},
			{Name: "Farm", Shape: zone.NewQuadrilateral(geo.Point{X: -5, Y: -5}, geo.Point{X: -10, Y: -5}, geo.Point{X: -10, Y: -10}, geo.Point{X: -15, Y: -15})},
		},
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	z := circleZone(t, "Market", 0, 0, 5)
	if r := Check(z, geo.Point{X: 1, Y: 1}); r.Outcome != Matched {
		t.Errorf("expected Matched, got %s", r.Outcome)
	}
	r := Check(z, geo.Point{X: 5, Y: 0})
	if r.Outcome != NotMatched {
		t.Errorf("expected NotMatched on the boundary, got %s", r.Outcome)
	}
	if r.Zone.Name != "Market" {
		t.Errorf("expected zone to be echoed back, got %q", r.Zone.Name)
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	t.Parallel()

	a := circleZone(t, "A", 0, 0, 10)
	b := circleZone(t, "B", 1, 1, 10)
	res, err := Locate([]zone.Zone{a, b}, geo.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Matched || res.Zone.Name != "A" {
		t.Fatalf("expected Matched(A), got %s(%s)", res.Outcome, res.Zone.Name)
	}
}

func TestLocate_LaterZoneMatches(t *testing.T) {
	t.Parallel()

	res, err := novobobrovsk(t).Locate(geo.Point{X: 9, Y: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Matched || res.Zone.Name != "Pasture" {
		t.Fatalf("expected Matched(Pasture), got %s(%s)", res.Outcome, res.Zone.Name)
	}
}

func TestLocate_Nearest(t *testing.T) {
	t.Parallel()

	city := novobobrovsk(t)
	cases := []struct {
		name     string
		p        geo.Point
		expected string
		d        int64
	}{
		// Pasture 中心点 (8,6)
		{"near pasture", geo.Point{X: 20, Y: 18}, "Pasture", 12*12 + 12*12},
		// Farm 中心点 (-10,-8)
		{"near farm", geo.Point{X: -20, Y: -22}, "Farm", 10*10 + 14*14},
		// Market 圆心 (0,0)
		{"near market", geo.Point{X: -6, Y: 3}, "Market", 36 + 9},
	}
	for _, tc := range cases {
		res, err := city.Locate(tc.p)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if res.Outcome != Nearest {
			t.Errorf("%s: expected Nearest, got %s", tc.name, res.Outcome)
		}
		if res.Zone.Name != tc.expected {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.expected, res.Zone.Name)
		}
		if res.DistanceSquared != tc.d {
			t.Errorf("%s: expected distance² %d, got %d", tc.name, tc.d, res.DistanceSquared)
		}
	}
}

func TestLocate_NearestTieKeepsListOrder(t *testing.T) {
	t.Parallel()

	left := circleZone(t, "Left", -10, 0, 1)
	right := circleZone(t, "Right", 10, 0, 1)
	p := geo.Point{X: 0, Y: 0}

	res, err := Locate([]zone.Zone{left, right}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Nearest || res.Zone.Name != "Left" {
		t.Fatalf("expected Nearest(Left), got %s(%s)", res.Outcome, res.Zone.Name)
	}

	res, err = Locate([]zone.Zone{right, left}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Zone.Name != "Right" {
		t.Fatalf("expected Right when listed first, got %s", res.Zone.Name)
	}
}

func TestLocate_DegenerateFarmTriangle(t *testing.T) {
	t.Parallel()

	// Farm 的第二个三角 (-5,-5),(-10,-10),(-15,-15) 共线，y=x 延长线上的点全部命中
	res, err := novobobrovsk(t).Locate(geo.Point{X: 20, Y: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Matched || res.Zone.Name != "Farm" {
		t.Fatalf("expected Matched(Farm), got %s(%s)", res.Outcome, res.Zone.Name)
	}
}

func TestLocate_EmptyZoneList(t *testing.T) {
	t.Parallel()

	_, err := Locate(nil, geo.Point{})
	if !errors.Is(err, ErrEmptyZoneList) {
		t.Fatalf("expected ErrEmptyZoneList, got %v", err)
	}
	_, err = City{Name: "Ghost Town"}.Locate(geo.Point{X: 1, Y: 1})
	if !errors.Is(err, ErrEmptyZoneList) {
		t.Fatalf("expected ErrEmptyZoneList from City, got %v", err)
	}
}

func TestLocate_ConcurrentCallers(t *testing.T) {
	t.Parallel()

	city := novobobrovsk(t)
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := city.Locate(geo.Point{X: 1, Y: 1})
			if err != nil || res.Zone.Name != "Market" {
				errs <- res.Zone.Name
			}
		}()
	}
	wg.Wait()
	close(errs)
	for name := range errs {
		t.Errorf("unexpected concurrent result %q", name)
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	if Matched.String() != "matched" || Nearest.String() != "nearest" || NotMatched.String() != "not_matched" {
		t.Fatal("unexpected outcome labels")
	}
}

func TestLocate_SkipsUnconstructedZones(t *testing.T) {
	t.Parallel()

	usable := circleZone(t, "Real", 90, 0, 1)
	res, err := Locate([]zone.Zone{{Name: "Blank"}, usable}, geo.Point{X: 100, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Nearest || res.Zone.Name != "Real" {
		t.Fatalf("expected nearest Real, got %s %s", res.Outcome, res.Zone.Name)
	}

	if _, err := Locate([]zone.Zone{{Name: "Blank"}}, geo.Point{}); !errors.Is(err, ErrEmptyZoneList) {
		t.Fatalf("expected ErrEmptyZoneList when no zone is usable, got %v", err)
	}
}

func TestLocate_FarPointIsNotInsideSmallCircle(t *testing.T) {
	t.Parallel()

	market := circleZone(t, "Market", 0, 0, 5)
	p := geo.Point{X: geo.MaxAbs, Y: geo.MaxAbs}
	res, err := Locate([]zone.Zone{market}, p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Nearest {
		t.Fatalf("expected Nearest, got %s", res.Outcome)
	}
	want := 2 * int64(geo.MaxAbs) * int64(geo.MaxAbs)
	if res.DistanceSquared != want {
		t.Fatalf("distance² = %d, want %d", res.DistanceSquared, want)
	}
}
