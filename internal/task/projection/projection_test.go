package projection_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task/projection"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Buy milk", Category: "shopping", Completed: false},
		{ID: "2", Title: "Write report", Category: "work", Completed: true},
		{ID: "3", Title: "Call mom", Category: "personal", Completed: false},
		{ID: "4", Title: "Plan sprint", Category: "Work", Completed: false},
		{ID: "5", Title: "Renew passport", Category: "errands", Completed: true},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		params projection.Params
		want   []string
	}{
		{
			name:   "Active Only",
			params: projection.Params{Status: projection.StatusActive, Category: projection.CategoryAll},
			want:   []string{"1", "3", "4"},
		},
		{
			name:   "Completed Only",
			params: projection.Params{Status: projection.StatusCompleted},
			want:   []string{"2", "5"},
		},
		{
			name:   "Zero Params Keep Everything",
			params: projection.Params{},
			want:   []string{"1", "2", "3", "4", "5"},
		},
		{
			name:   "Search Title Case Insensitive",
			params: projection.Params{Status: projection.StatusAll, Search: "MILK"},
			want:   []string{"1"},
		},
		{
			name:   "Search Matches Category",
			params: projection.Params{Search: "work"},
			want:   []string{"2", "4"},
		},
		{
			name:   "Category Exact Case Sensitive",
			params: projection.Params{Category: "work"},
			want:   []string{"2"},
		},
		{
			name:   "Combined Filters",
			params: projection.Params{Status: projection.StatusActive, Category: "Work", Search: "sprint"},
			want:   []string{"4"},
		},
		{
			name:   "No Match",
			params: projection.Params{Search: "zzz"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(projection.Project(sampleTasks(), tt.params))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestProjectScenario(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "Buy milk", Category: "shopping", Completed: false},
		{ID: "2", Title: "Write report", Category: "work", Completed: true},
	}
	got := projection.Project(tasks, projection.Params{Status: projection.StatusActive, Category: "all", Search: ""})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only task 1, got %+v", got)
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	tasks := sampleTasks()
	before := sampleTasks()
	projection.Project(tasks, projection.Params{Status: projection.StatusActive, Search: "a"})
	if !reflect.DeepEqual(tasks, before) {
		t.Errorf("input slice was modified")
	}
}

func randomTasks(r *rand.Rand, n int) []model.Task {
	titles := []string{"Buy milk", "Write REPORT", "call Mom", "fix bike", "Read book", "Pay rent"}
	cats := []string{"work", "personal", "shopping", "Work", "home", ""}
	out := make([]model.Task, n)
	for i := range out {
		out[i] = model.Task{
			ID:        fmt.Sprintf("t%d", i),
			Title:     titles[r.Intn(len(titles))],
			Category:  cats[r.Intn(len(cats))],
			Completed: r.Intn(2) == 0,
		}
	}
	return out
}

func TestProjectProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	statuses := []projection.Status{projection.StatusAll, projection.StatusActive, projection.StatusCompleted}
	terms := []string{"", "o", "WORK", "milk", "e", "x"}
	cats := []string{"all", "work", "Work", "home"}

	for round := 0; round < 200; round++ {
		tasks := randomTasks(r, r.Intn(20))
		params := projection.Params{
			Status:   statuses[r.Intn(len(statuses))],
			Category: cats[r.Intn(len(cats))],
			Search:   terms[r.Intn(len(terms))],
		}
		got := projection.Project(tasks, params)

		position := make(map[string]int, len(tasks))
		for i, task := range tasks {
			position[task.ID] = i
		}

		last := -1
		for _, task := range got {
			if params.Status == projection.StatusActive && task.Completed {
				t.Fatalf("round %d: active view returned completed task %s", round, task.ID)
			}
			if params.Status == projection.StatusCompleted && !task.Completed {
				t.Fatalf("round %d: completed view returned active task %s", round, task.ID)
			}
			term := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(task.Title), term) && !strings.Contains(strings.ToLower(task.Category), term) {
				t.Fatalf("round %d: task %s does not contain %q", round, task.ID, params.Search)
			}
			if position[task.ID] <= last {
				t.Fatalf("round %d: order not preserved at %s", round, task.ID)
			}
			last = position[task.ID]
		}

		// The empty search term is the identity of the text filter.
		withoutSearch := params
		withoutSearch.Search = ""
		a := projection.Project(tasks, withoutSearch)
		b := projection.Project(projection.Project(tasks, projection.Params{}), withoutSearch)
		if !reflect.DeepEqual(ids(a), ids(b)) {
			t.Fatalf("round %d: empty search changed the result", round)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"", "all", "active", "completed"} {
		if _, ok := projection.ParseStatus(s); !ok {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if st, _ := projection.ParseStatus(""); st != projection.StatusAll {
		t.Errorf("expected empty to mean all, got %q", st)
	}
	if _, ok := projection.ParseStatus("done"); ok {
		t.Errorf("expected done to be rejected")
	}
}

func TestCategories(t *testing.T) {
	t.Run("Defaults Only", func(t *testing.T) {
		got := projection.Categories(nil)
		want := []string{"all", "work", "personal", "shopping"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Union In First Appearance Order", func(t *testing.T) {
		got := projection.Categories(sampleTasks())
		want := []string{"all", "work", "personal", "shopping", "Work", "errands"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Empty Category Skipped", func(t *testing.T) {
		got := projection.Categories([]model.Task{{ID: "1", Category: ""}, {ID: "2", Category: "garden"}})
		want := []string{"all", "work", "personal", "shopping", "garden"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}
