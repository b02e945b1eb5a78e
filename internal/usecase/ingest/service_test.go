package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/domain"
	domdoc "github.com/kailas-cloud/posedex/internal/domain/document"
	"github.com/kailas-cloud/posedex/internal/domain/pose"
)

// --- Mocks ---

// memRepo is an in-memory Repository that assigns sequential ids.
type memRepo struct {
	docs       map[string]domdoc.Document
	ensureErr  error
	insertErrs map[string]error // by pose name
	ensured    int
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[string]domdoc.Document{}, insertErrs: map[string]error{}}
}

func (m *memRepo) EnsureIndex(_ context.Context, _ string) error {
	m.ensured++
	return m.ensureErr
}

func (m *memRepo) Insert(_ context.Context, _ string, doc *domdoc.Document) (string, error) {
	if err := m.insertErrs[doc.Metadata().Name]; err != nil {
		return "", err
	}
	id := strconv.Itoa(len(m.docs) + 1)
	m.docs[id] = *doc
	return id, nil
}

func (m *memRepo) Count(_ context.Context, _ string) (int, error) {
	return len(m.docs), nil
}

type mockEmbedder struct {
	dims   int
	fail   map[string]bool // by content
	inputs []string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.inputs = append(m.inputs, text)
	if m.fail[text] {
		return domain.EmbeddingResult{}, domain.ErrEmbeddingProviderError
	}
	return domain.EmbeddingResult{Embedding: make([]float32, m.dims)}, nil
}

func samplePoses() []pose.Pose {
	return []pose.Pose{
		{Name: "Tree Pose", SanskritName: "Vrksasana", ExpertiseLevel: "Beginner", PoseType: []string{"Standing"}},
		{Name: "Crow Pose", ExpertiseLevel: "Intermediate", PoseType: []string{"Arm Balance"}},
		{Name: "Corpse Pose"},
	}
}

// --- Tests ---

func TestIngest_StoresEveryPose(t *testing.T) {
	repo := newMemRepo()
	emb := &mockEmbedder{dims: 4}
	svc := New(repo, emb, "poses", 4, zap.NewNop())

	rep, err := svc.Ingest(context.Background(), samplePoses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Total != 3 || rep.Stored != 3 || rep.Failed != 0 || rep.Indexed != 3 {
		t.Errorf("unexpected report: %+v", rep)
	}
	if repo.ensured != 1 {
		t.Errorf("EnsureIndex called %d times", repo.ensured)
	}
	want := "name: Tree Pose\ndescription: \nsanskrit_name: Vrksasana\nexpertise_level: Beginner\npose_type: Standing"
	if emb.inputs[0] != want {
		t.Errorf("embedded content = %q, want %q", emb.inputs[0], want)
	}
}

func TestIngest_TwiceDoublesDocuments(t *testing.T) {
	repo := newMemRepo()
	svc := New(repo, &mockEmbedder{dims: 2}, "poses", 2, zap.NewNop())

	for range 2 {
		if _, err := svc.Ingest(context.Background(), samplePoses()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(repo.docs) != 6 {
		t.Errorf("expected 6 documents after two runs, got %d", len(repo.docs))
	}
}

func TestIngest_SkipsFailedRecords(t *testing.T) {
	poses := samplePoses()
	repo := newMemRepo()
	repo.insertErrs["Corpse Pose"] = errors.New("HSET: connection reset")
	emb := &mockEmbedder{dims: 2, fail: map[string]bool{poses[1].Content(): true}}
	svc := New(repo, emb, "poses", 2, zap.NewNop())

	rep, err := svc.Ingest(context.Background(), poses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Stored != 1 || rep.Failed != 2 {
		t.Errorf("unexpected report: %+v", rep)
	}
}

func TestIngest_DimMismatchCountsAsFailure(t *testing.T) {
	repo := newMemRepo()
	svc := New(repo, &mockEmbedder{dims: 3}, "poses", 4, zap.NewNop())

	rep, err := svc.Ingest(context.Background(), samplePoses()[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Failed != 1 || len(repo.docs) != 0 {
		t.Errorf("mismatched vector should be rejected: %+v", rep)
	}
}

func TestIngest_EnsureIndexError(t *testing.T) {
	repo := newMemRepo()
	repo.ensureErr = errors.New("FT.CREATE: unknown command")
	emb := &mockEmbedder{dims: 2}
	svc := New(repo, emb, "poses", 2, zap.NewNop())

	if _, err := svc.Ingest(context.Background(), samplePoses()); err == nil {
		t.Fatal("expected error")
	}
	if len(emb.inputs) != 0 {
		t.Error("nothing should be embedded when the index cannot be ensured")
	}
}

func TestIngest_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := newMemRepo()
	svc := New(repo, &mockEmbedder{dims: 2}, "poses", 2, zap.NewNop())

	_, err := svc.Ingest(ctx, samplePoses())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(repo.docs) != 0 {
		t.Errorf("no documents expected, got %d", len(repo.docs))
	}
}

func TestIngestFile_InvalidDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poses.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	repo := newMemRepo()
	svc := New(repo, &mockEmbedder{dims: 2}, "poses", 2, zap.NewNop())

	_, err := svc.IngestFile(context.Background(), path)
	if !errors.Is(err, domain.ErrDatasetInvalid) {
		t.Fatalf("expected ErrDatasetInvalid, got %v", err)
	}
	if repo.ensured != 0 {
		t.Error("index must not be touched for an invalid dataset")
	}
}

func TestIngestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poses.json")
	if err := os.WriteFile(path, []byte(`[{"name":"Tree Pose"},{"name":"Crow Pose"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	svc := New(newMemRepo(), &mockEmbedder{dims: 2}, "poses", 2, zap.NewNop())

	rep, err := svc.IngestFile(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Stored != 2 {
		t.Errorf("unexpected report: %+v", rep)
	}
}
