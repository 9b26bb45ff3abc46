package domain

import (
	"reflect"
	"testing"
)

func TestSubmitCommitsCompleteCoordinate(t *testing.T) {
	reg := NewRegistry()
	reg.SetLatitude("40.7128")
	reg.SetLongitude("-74.0060")

	if !reg.Submit() {
		t.Fatalf("Submit() = false, want true")
	}

	want := []Coordinate{{Lat: "40.7128", Lng: "-74.0060"}}
	if got := reg.Locations(); !reflect.DeepEqual(got, want) {
		t.Fatalf("locations = %v, want %v", got, want)
	}
	if got := reg.Pending(); got != (Coordinate{}) {
		t.Fatalf("pending = %+v, want empty", got)
	}
}

func TestSubmitIncompleteIsNoOp(t *testing.T) {
	cases := []struct {
		name string
		lat  string
		lng  string
	}{
		{name: "missing lat", lat: "", lng: "-74.0060"},
		{name: "missing lng", lat: "40.7128", lng: ""},
		{name: "both missing", lat: "", lng: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.SetLatitude(tc.lat)
			reg.SetLongitude(tc.lng)

			if reg.Submit() {
				t.Fatalf("Submit() = true, want false")
			}
			if n := len(reg.Locations()); n != 0 {
				t.Fatalf("len(locations) = %d, want 0", n)
			}
			want := Coordinate{Lat: tc.lat, Lng: tc.lng}
			if got := reg.Pending(); got != want {
				t.Fatalf("pending = %+v, want %+v", got, want)
			}
		})
	}
}

func TestRejectedSubmitKeepsExistingEntries(t *testing.T) {
	reg := NewRegistry()
	reg.Apply(SetLatitude{"1"}, SetLongitude{"2"}, Submit{})
	reg.SetLongitude("3")

	before := reg.State()
	after := reg.Apply(Submit{})

	if !reflect.DeepEqual(after, before) {
		t.Fatalf("state after rejected submit = %+v, want %+v", after, before)
	}
}

func TestRepeatedEmptySubmitNeverMutates(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 50; i++ {
		if reg.Submit() {
			t.Fatalf("submit #%d committed an empty coordinate", i+1)
		}
	}
	if n := len(reg.Locations()); n != 0 {
		t.Fatalf("len(locations) = %d, want 0", n)
	}
}

func TestSubmissionOrderIsPreserved(t *testing.T) {
	reg := NewRegistry()
	pairs := []Coordinate{
		{Lat: "40.7128", Lng: "-74.0060"},
		{Lat: "51.5074", Lng: "-0.1278"},
		{Lat: "35.6762", Lng: "139.6503"},
	}
	for _, p := range pairs {
		reg.SetLatitude(p.Lat)
		reg.SetLongitude(p.Lng)
		reg.Submit()
	}

	if got := reg.Locations(); !reflect.DeepEqual(got, pairs) {
		t.Fatalf("locations = %v, want %v", got, pairs)
	}
}

func TestReduceDoesNotMutateInputSnapshot(t *testing.T) {
	base := Reduce(Reduce(Reduce(State{}, SetLatitude{"1"}), SetLongitude{"2"}), Submit{})
	// leave spare capacity so a careless append would write into it
	base.Locations = append(make([]Coordinate, 0, 8), base.Locations...)

	pending := Reduce(Reduce(base, SetLatitude{"3"}), SetLongitude{"4"})
	first := Reduce(pending, Submit{})
	second := Reduce(Reduce(Reduce(base, SetLatitude{"5"}), SetLongitude{"6"}), Submit{})

	if len(base.Locations) != 1 {
		t.Fatalf("base locations = %v, want one entry", base.Locations)
	}
	if got := first.Locations[1]; got != (Coordinate{Lat: "3", Lng: "4"}) {
		t.Fatalf("first snapshot entry = %+v, want {3 4}", got)
	}
	if got := second.Locations[1]; got != (Coordinate{Lat: "5", Lng: "6"}) {
		t.Fatalf("second snapshot entry = %+v, want {5 6}", got)
	}
	if pending.Pending != (Coordinate{Lat: "3", Lng: "4"}) {
		t.Fatalf("pending snapshot changed: %+v", pending.Pending)
	}
}

func TestMalformedTextIsAccepted(t *testing.T) {
	reg := NewRegistry()
	reg.SetLatitude("north-ish")
	reg.SetLongitude("far east")

	if !reg.Submit() {
		t.Fatalf("Submit() = false, want true for non-numeric text")
	}
}

func TestCoordinateCaption(t *testing.T) {
	c := Coordinate{Lat: "40.7128", Lng: "-74.0060"}
	if got, want := c.Caption(), "Lat: 40.7128, Lng: -74.0060"; got != want {
		t.Fatalf("caption = %q, want %q", got, want)
	}
}

func TestDispatchCountsCommits(t *testing.T) {
	reg := NewRegistry()

	out := reg.Dispatch(
		SetLatitude{"1"}, SetLongitude{"2"}, Submit{},
		SetLatitude{"3"}, Submit{},
	)
	if out.Committed != 1 {
		t.Fatalf("committed = %d, want 1", out.Committed)
	}
	if out.State.Pending != (Coordinate{Lat: "3"}) {
		t.Fatalf("pending = %+v, want {3 }", out.State.Pending)
	}

	if out := reg.Dispatch(Submit{}); out.Committed != 0 {
		t.Fatalf("committed after incomplete submit = %d, want 0", out.Committed)
	}
}
