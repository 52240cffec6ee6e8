package fitness

import (
	"testing"
	"time"
)

func TestDifficultyTarget(t *testing.T) {
	cases := []struct {
		level Level
		want  int
	}{
		{Beginner, 1},
		{Intermediate, 2},
		{Advanced, 3},
		{Level("unknown"), 2},
	}
	for _, c := range cases {
		if got := c.level.DifficultyTarget(); got != c.want {
			t.Errorf("%s: got %d, want %d", c.level, got, c.want)
		}
	}
}

func TestSetUserStampsTimes(t *testing.T) {
	s := NewState()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	s.SetUser(UserProfile{ID: "u1", Name: "Ada", Level: Beginner}, now)
	if s.User == nil {
		t.Fatal("user not set")
	}
	if !s.User.CreatedAt.Equal(now) || !s.User.UpdatedAt.Equal(now) {
		t.Fatal("timestamps not stamped")
	}
}

func TestUpdateUser(t *testing.T) {
	s := NewState()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	s.SetUser(UserProfile{ID: "u1", Name: "Ada", Level: Beginner}, now)
	later := now.Add(time.Hour)
	s.UpdateUser(func(p *UserProfile) {
		p.Level = Intermediate
		p.WeeklyGoal = 4
	}, later)
	if s.User.Level != Intermediate || s.User.WeeklyGoal != 4 {
		t.Fatal("update not applied")
	}
	if !s.User.UpdatedAt.Equal(later) {
		t.Fatal("updated_at not bumped")
	}
	if !s.User.CreatedAt.Equal(now) {
		t.Fatal("created_at must not change")
	}
}

func TestUpdateUserWithoutProfileIsNoop(t *testing.T) {
	s := NewState()
	s.UpdateUser(func(p *UserProfile) { p.Name = "x" }, time.Now())
	if s.User != nil {
		t.Fatal("update invented a profile")
	}
}

func TestToggleFavorite(t *testing.T) {
	s := NewState()
	s.ToggleFavorite("w1")
	if !s.IsFavorite("w1") {
		t.Fatal("w1 should be favorite")
	}
	s.ToggleFavorite("w2")
	s.ToggleFavorite("w1")
	if s.IsFavorite("w1") {
		t.Fatal("w1 should be removed")
	}
	if !s.IsFavorite("w2") {
		t.Fatal("w2 should survive")
	}
}

func TestScheduleLifecycle(t *testing.T) {
	s := NewState()
	s.Schedule(ScheduledWorkout{ID: "s1", WorkoutName: "Morning"})
	s.Schedule(ScheduledWorkout{ID: "s2", WorkoutName: "Evening"})
	if len(s.Scheduled) != 2 {
		t.Fatalf("scheduled = %d, want 2", len(s.Scheduled))
	}

	s.MarkScheduledDone("s2")
	if !s.Scheduled[1].Completed {
		t.Fatal("s2 should be completed")
	}
	if s.Scheduled[0].Completed {
		t.Fatal("s1 should stay open")
	}

	s.RemoveScheduled("s1")
	if len(s.Scheduled) != 1 || s.Scheduled[0].ID != "s2" {
		t.Fatalf("after remove: %+v", s.Scheduled)
	}
	s.RemoveScheduled("missing")
	if len(s.Scheduled) != 1 {
		t.Fatal("removing unknown id should be a no-op")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewState()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	s.SetUser(UserProfile{ID: "u1", Name: "Ada"}, now)
	s.CompleteOnboarding()
	s.ToggleFavorite("w1")
	s.SetTheme(ThemeLight)
	s.AddCompleted(record("a", now), now)

	s.Reset()
	if s.User != nil || s.Onboarded {
		t.Fatal("profile should be wiped")
	}
	if len(s.Favorites) != 0 || len(s.History.Completed) != 0 {
		t.Fatal("history should be wiped")
	}
	if s.Theme != ThemeDark {
		t.Fatalf("theme = %s, want default dark", s.Theme)
	}
	for _, a := range s.Achievements {
		if a.Unlocked {
			t.Fatalf("%s should be re-locked", a.ID)
		}
	}
}
