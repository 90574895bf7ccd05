package card

import (
	"testing"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	ct, err := LoadCatalog("testdata/catalog.json")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return ct
}

func TestLoadCatalog(t *testing.T) {
	ct := loadTestCatalog(t)
	if ct.Len() != 8 {
		t.Fatalf("expected 8 printings, got %d", ct.Len())
	}

	mickey := ct.ByID(2)
	if mickey == nil {
		t.Fatal("printing 2 missing")
	}
	if mickey.Ink != InkRuby || mickey.Cost != 8 || !mickey.Inkwell {
		t.Errorf("printing 2 fields wrong: %+v", mickey)
	}
	if !mickey.HasKeyword("Shift") || !mickey.CanShift {
		t.Error("printing 2 should be a shift card")
	}
	if !hasString(mickey.RequiredCardNames, "mickey mouse") {
		t.Errorf("shift printing should require its own name, got %v", mickey.RequiredCardNames)
	}
}

func TestCatalogByName(t *testing.T) {
	ct := loadTestCatalog(t)
	printings := ct.ByName("mickey mouse")
	if len(printings) != 2 {
		t.Fatalf("expected 2 Mickey Mouse printings, got %d", len(printings))
	}
	if printings[0].ID == printings[1].ID {
		t.Error("printings of the same name must keep distinct ids")
	}
}

func TestCatalogByInks(t *testing.T) {
	ct := loadTestCatalog(t)
	amber := ct.ByInks([]Ink{InkAmber})
	if len(amber) != 3 {
		t.Fatalf("expected 3 Amber printings, got %d", len(amber))
	}
	for _, c := range amber {
		if c.Ink != InkAmber {
			t.Errorf("%s has ink %s", c, c.Ink)
		}
	}

	pair := ct.ByInks([]Ink{InkAmber, InkSteel})
	if len(pair) != 5 {
		t.Errorf("expected 5 Amber+Steel printings, got %d", len(pair))
	}
}

func TestSingerCostDerivedFromText(t *testing.T) {
	ct := loadTestCatalog(t)
	ariel := ct.ByID(3)
	if ariel.SingCost != 5 {
		t.Errorf("SingCost = %d, want 5", ariel.SingCost)
	}
	if !ariel.IsSinger() {
		t.Error("Ariel should be a singer")
	}
}

func TestParseInks(t *testing.T) {
	inks, err := ParseInks("amber, Steel")
	if err != nil {
		t.Fatal(err)
	}
	if len(inks) != 2 || inks[0] != InkAmber || inks[1] != InkSteel {
		t.Errorf("ParseInks = %v", inks)
	}

	if _, err := ParseInks("amber,chartreuse"); err == nil {
		t.Error("expected an error for an unknown ink")
	}
}
