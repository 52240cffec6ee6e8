package catalog

import "testing"

func TestBuiltinSize(t *testing.T) {
	c := Builtin()
	if c.Len() != 42 {
		t.Fatalf("expected 42 builtin exercises, got %d", c.Len())
	}
}

func TestBuiltinUniqueIDs(t *testing.T) {
	c := Builtin()
	seen := make(map[string]bool)
	for _, e := range c.All() {
		if e.ID == "" {
			t.Fatalf("exercise %q has empty id", e.Name)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestBuiltinEntriesAreComplete(t *testing.T) {
	for _, e := range Builtin().All() {
		if e.Name == "" {
			t.Fatalf("%s: empty name", e.ID)
		}
		if e.Difficulty < 1 || e.Difficulty > 3 {
			t.Fatalf("%s: difficulty %d out of range", e.ID, e.Difficulty)
		}
		if e.Duration <= 0 {
			t.Fatalf("%s: non-positive duration", e.ID)
		}
		if len(e.MuscleGroups) == 0 {
			t.Fatalf("%s: no muscle groups", e.ID)
		}
		if len(e.Equipment) == 0 {
			t.Fatalf("%s: no equipment tags", e.ID)
		}
		if len(e.Instructions) == 0 {
			t.Fatalf("%s: no instructions", e.ID)
		}
	}
}

func TestByIDIdempotent(t *testing.T) {
	c := Builtin()
	for _, e := range c.All() {
		got, ok := c.ByID(e.ID)
		if !ok {
			t.Fatalf("ByID(%q) not found", e.ID)
		}
		again, ok := c.ByID(got.ID)
		if !ok || again.ID != got.ID || again.Name != got.Name {
			t.Fatalf("ByID(ByID(%q)) differs", e.ID)
		}
	}
}

func TestByIDUnknown(t *testing.T) {
	if _, ok := Builtin().ByID("nope"); ok {
		t.Fatal("unknown id should not be found")
	}
}

func TestByCategoryPartition(t *testing.T) {
	c := Builtin()
	categories := []Category{Warmup, Strength, Core, Cardio, Flexibility, Cooldown}
	total := 0
	for _, cat := range categories {
		es := c.ByCategory(cat)
		if len(es) == 0 {
			t.Fatalf("category %s is empty", cat)
		}
		for _, e := range es {
			if e.Category != cat {
				t.Fatalf("%s filed under %s", e.ID, cat)
			}
		}
		total += len(es)
	}
	if total != c.Len() {
		t.Fatalf("categories cover %d of %d exercises", total, c.Len())
	}
}

func TestSatisfiedByNoEquipment(t *testing.T) {
	e := Exercise{ID: "x", Equipment: []Equipment{NoEquipment}}
	if !e.SatisfiedBy(nil) {
		t.Fatal("bodyweight exercise should match empty inventory")
	}
	if !e.SatisfiedBy([]Equipment{Dumbbells}) {
		t.Fatal("bodyweight exercise should match any inventory")
	}
}

func TestSatisfiedByOwned(t *testing.T) {
	e := Exercise{ID: "x", Equipment: []Equipment{Dumbbells, ResistanceBand}}
	if e.SatisfiedBy(nil) {
		t.Fatal("gear exercise should not match empty inventory")
	}
	if e.SatisfiedBy([]Equipment{PullUpBar}) {
		t.Fatal("gear exercise should not match wrong inventory")
	}
	// Any one tag owned is enough.
	if !e.SatisfiedBy([]Equipment{ResistanceBand}) {
		t.Fatal("one owned tag should match")
	}
}

func TestHitsAny(t *testing.T) {
	e := Exercise{ID: "x", MuscleGroups: []MuscleGroup{Chest, Triceps}}
	if !e.HitsAny([]MuscleGroup{Triceps}) {
		t.Fatal("should hit triceps")
	}
	if e.HitsAny([]MuscleGroup{Glutes, Calves}) {
		t.Fatal("should not hit lower body")
	}
	if e.HitsAny(nil) {
		t.Fatal("empty target list hits nothing")
	}
}

func TestByEquipmentBodyweightOnly(t *testing.T) {
	c := Builtin()
	es := c.ByEquipment(nil)
	if len(es) == 0 {
		t.Fatal("there should be bodyweight exercises")
	}
	for _, e := range es {
		if !e.SatisfiedBy(nil) {
			t.Fatalf("%s should be doable without equipment", e.ID)
		}
	}
}

func TestByDifficultyLevelsPopulated(t *testing.T) {
	c := Builtin()
	for level := 1; level <= 3; level++ {
		if len(c.ByDifficulty(level)) == 0 {
			t.Fatalf("no exercises at difficulty %d", level)
		}
	}
}

func TestByMuscleGroup(t *testing.T) {
	c := Builtin()
	for _, e := range c.ByMuscleGroup(CoreMuscle) {
		if !e.HitsAny([]MuscleGroup{CoreMuscle}) {
			t.Fatalf("%s does not train core", e.ID)
		}
	}
	if len(c.ByMuscleGroup(CoreMuscle)) == 0 {
		t.Fatal("core group should not be empty")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Builtin()
	a := c.All()
	a[0].Name = "mutated"
	b := c.All()
	if b[0].Name == "mutated" {
		t.Fatal("All must copy; catalog was mutated")
	}
}
