package catalog_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/liftplan/internal/catalog"
	"github.com/myrjola/liftplan/internal/program"
	"github.com/myrjola/liftplan/internal/sqlite"
	"github.com/myrjola/liftplan/internal/testhelpers"
)

func newSQLiteReader(t *testing.T) *catalog.SQLiteReader {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return catalog.NewSQLiteReader(db, logger)
}

func TestSQLiteReader_ListExercises(t *testing.T) {
	reader := newSQLiteReader(t)

	entries, err := reader.ListExercises(t.Context())
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	if len(entries) != 36 {
		t.Fatalf("got %d exercises, want 36", len(entries))
	}

	want := []program.CatalogEntry{
		{ID: 1, Name: "Barbell Back Squat", Muscles: []string{"quads", "core", "glutes", "hamstrings"}, Equipment: "barbell"},
		{ID: 5, Name: "Bench Press", Muscles: []string{"chest", "shoulders", "triceps"}, Equipment: "barbell"},
		{ID: 26, Name: "Plank", Muscles: []string{"core"}, Equipment: ""},
	}
	for _, w := range want {
		got := entries[w.ID-1]
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("exercise %d mismatch (-want +got):\n%s", w.ID, diff)
		}
	}
	for i, e := range entries {
		if e.ID != i+1 {
			t.Errorf("entry %d has ID %d, want ordering by ID", i, e.ID)
		}
	}
}

func TestSQLiteReader_Description(t *testing.T) {
	reader := newSQLiteReader(t)

	got, err := reader.Description(t.Context(), 5)
	if err != nil {
		t.Fatalf("Description: %v", err)
	}
	if !strings.Contains(got, "shoulder blades") {
		t.Errorf("Description() = %q, want the bench press cues", got)
	}
	if _, err = reader.Description(t.Context(), 999); err == nil {
		t.Error("Description() of a missing exercise succeeded")
	}
}

func TestDefaultMetadata_CoversSeedCatalog(t *testing.T) {
	reader := newSQLiteReader(t)
	entries, err := reader.ListExercises(t.Context())
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	metadata, err := catalog.DefaultMetadata()
	if err != nil {
		t.Fatalf("DefaultMetadata: %v", err)
	}

	if len(metadata) != len(entries) {
		t.Errorf("metadata has %d entries, catalog has %d", len(metadata), len(entries))
	}
	for _, e := range entries {
		md, ok := metadata[e.Name]
		if !ok {
			t.Errorf("no metadata for %q", e.Name)
			continue
		}
		if len(md.Primary) == 0 {
			t.Errorf("%q has no primary muscle group", e.Name)
		} else if e.Muscles[0] != string(md.Primary[0]) {
			t.Errorf("%q: catalog primary muscle %q, metadata %q", e.Name, e.Muscles[0], md.Primary[0])
		}
	}
}

func TestLoadMetadata(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    program.MetadataTable
		wantErr error
	}{
		{
			name: "valid",
			doc: `
Goblet Squat:
  movement_type: compound
  min_level: beginner
  primary: [quads]
  secondary: [glutes, core]
  injury_risks: [knee]
`,
			want: program.MetadataTable{
				"Goblet Squat": {
					MovementType: "compound",
					MinLevel:     program.LevelBeginner,
					Primary:      []program.MuscleGroup{program.MuscleQuads},
					Secondary:    []program.MuscleGroup{program.MuscleGlutes, program.MuscleCore},
					InjuryRisks:  []string{"knee"},
				},
			},
			wantErr: nil,
		},
		{
			name:    "empty document",
			doc:     "",
			want:    nil,
			wantErr: nil,
		},
		{
			name: "unknown muscle group",
			doc: `
Neck Curl:
  movement_type: isolation
  primary: [neck]
`,
			want:    nil,
			wantErr: catalog.ErrInvalidMetadata,
		},
		{
			name: "names differing only by case",
			doc: `
Squat:
  movement_type: compound
  primary: [quads]
SQUAT:
  movement_type: isolation
  primary: [quads]
`,
			want:    nil,
			wantErr: catalog.ErrInvalidMetadata,
		},
		{
			name: "unknown level",
			doc: `
Muscle-Up:
  movement_type: compound
  min_level: elite
  primary: [back]
`,
			want:    nil,
			wantErr: catalog.ErrInvalidMetadata,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.LoadMetadata(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadMetadata() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadMetadata() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := catalog.LoadMetadata(strings.NewReader("Squat:\n  reps: 5\n")); err == nil {
		t.Error("LoadMetadata() accepted an unknown field")
	}
}

func TestStatic(t *testing.T) {
	static := catalog.Static{{ID: 1, Name: "Plank", Muscles: []string{"core"}, Equipment: ""}}
	got, err := static.ListExercises(t.Context())
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	got[0].Name = "changed"
	if static[0].Name != "Plank" {
		t.Error("modifying the returned slice changed the catalog")
	}
}

type blockingReader struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (r *blockingReader) ListExercises(_ context.Context) ([]program.CatalogEntry, error) {
	r.calls.Add(1)
	<-r.release
	if r.err != nil {
		return nil, r.err
	}
	return []program.CatalogEntry{{ID: 1, Name: "Plank", Muscles: []string{"core"}, Equipment: ""}}, nil
}

func TestShared_CollapsesConcurrentFetches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reader := &blockingReader{release: make(chan struct{})} //nolint:exhaustruct // test only
		shared := catalog.NewShared(reader)

		const callers = 5
		var (
			wg      sync.WaitGroup
			results = make([][]program.CatalogEntry, callers)
			errs    = make([]error, callers)
		)
		for i := range callers {
			wg.Go(func() {
				results[i], errs[i] = shared.ListExercises(t.Context())
			})
		}
		synctest.Wait()
		close(reader.release)
		wg.Wait()

		if got := reader.calls.Load(); got != 1 {
			t.Errorf("underlying reader called %d times, want 1", got)
		}
		for i := range callers {
			if errs[i] != nil {
				t.Errorf("caller %d: %v", i, errs[i])
			}
			if len(results[i]) != 1 || results[i][0].Name != "Plank" {
				t.Errorf("caller %d got %+v", i, results[i])
			}
		}
	})
}

func TestShared_DoesNotCache(t *testing.T) {
	reader := &blockingReader{release: make(chan struct{})} //nolint:exhaustruct // test only
	close(reader.release)
	shared := catalog.NewShared(reader)

	for range 2 {
		if _, err := shared.ListExercises(t.Context()); err != nil {
			t.Fatalf("ListExercises: %v", err)
		}
	}
	if got := reader.calls.Load(); got != 2 {
		t.Errorf("underlying reader called %d times, want 2", got)
	}
}

func TestShared_Errors(t *testing.T) {
	errDown := errors.New("catalog down")
	reader := &blockingReader{release: make(chan struct{}), err: errDown} //nolint:exhaustruct // test only
	close(reader.release)
	shared := catalog.NewShared(reader)

	if _, err := shared.ListExercises(t.Context()); !errors.Is(err, errDown) {
		t.Errorf("ListExercises() error = %v, want %v", err, errDown)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	blocked := &blockingReader{release: make(chan struct{})} //nolint:exhaustruct // test only
	defer close(blocked.release)
	if _, err := catalog.NewShared(blocked).ListExercises(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("ListExercises() with cancelled context error = %v, want %v", err, context.Canceled)
	}
}
