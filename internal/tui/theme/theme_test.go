package theme

import "testing"

func TestByName(t *testing.T) {
	for _, name := range Names() {
		if got := ByName(name).Name; got != name {
			t.Errorf("ByName(%q).Name = %q", name, got)
		}
	}
	if got := ByName("no-such-theme").Name; got != FlexokiDark.Name {
		t.Errorf("unknown theme = %q, want %q", got, FlexokiDark.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)
	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q, want terminal", Active.Name)
	}
}
