package org

import "testing"

func TestCapitalise(t *testing.T) {
	cases := map[string]string{
		"octagon": "Octagon",
		"Simon":   "Simon",
		"x":       "X",
		"":        "",
	}
	for in, want := range cases {
		if got := Capitalise(in); got != want {
			t.Errorf("Capitalise(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOrganisationName(t *testing.T) {
	if got := OrganisationName("simon"); got != "Simon's Organisation" {
		t.Errorf("OrganisationName(simon) = %q", got)
	}
}
