package search

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/pose"
	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
	"github.com/kailas-cloud/posedex/internal/domain/search/request"
	"github.com/kailas-cloud/posedex/internal/domain/search/result"
)

// --- Mocks ---

type mockRepo struct {
	results    []result.Result
	err        error
	called     bool
	collection string
	topK       int
	filters    filter.Expression
}

func (m *mockRepo) SearchKNN(
	_ context.Context, collection string,
	_ []float32, filters filter.Expression, topK int,
) ([]result.Result, error) {
	m.called = true
	m.collection, m.topK, m.filters = collection, topK, filters
	return m.results, m.err
}

type mockEmbedder struct {
	vec    []float32
	err    error
	called bool
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.called = true
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec}, nil
}

func hits(distances ...float64) []result.Result {
	out := make([]result.Result, len(distances))
	for i, d := range distances {
		out[i] = result.FromPose(pose.Pose{Name: string(rune('A' + i))}, d)
	}
	return out
}

func mustRequest(t *testing.T, q string, topK int) request.Request {
	t.Helper()
	req, err := request.New(q, filter.Expression{}, topK)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return req
}

// --- Tests ---

func TestSearch_HappyPath(t *testing.T) {
	repo := &mockRepo{results: hits(0.1, 0.2, 0.35)}
	emb := &mockEmbedder{vec: []float32{1, 0, 0}}
	svc := New(repo, emb, "poses", 3)

	req := mustRequest(t, "something for my lower back", 3)
	got, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance() < got[i-1].Distance() {
			t.Errorf("results not in non-decreasing distance order: %v", got)
		}
	}
	if repo.collection != "poses" || repo.topK != 3 {
		t.Errorf("repo called with %q/%d", repo.collection, repo.topK)
	}
}

func TestSearch_TruncatesToTopK(t *testing.T) {
	repo := &mockRepo{results: hits(0.1, 0.2, 0.3, 0.4, 0.5)}
	svc := New(repo, &mockEmbedder{vec: []float32{1}}, "poses", 0)

	req := mustRequest(t, "balance", 2)
	got, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name() != "A" || got[1].Name() != "B" {
		t.Errorf("unexpected results: %+v", got)
	}
}

func TestSearch_ForwardsFilters(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockEmbedder{vec: []float32{1}}, "poses", 0)

	cond, _ := filter.NewMatch(filter.FieldExpertiseLevel, "Intermediate")
	expr, _ := filter.NewExpression(cond)
	req, _ := request.New("twist", expr, 3)

	if _, err := svc.Search(context.Background(), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.filters.IsEmpty() {
		t.Error("filters were not forwarded to the repository")
	}
}

func TestSearch_EmbedError(t *testing.T) {
	repo := &mockRepo{}
	emb := &mockEmbedder{err: domain.ErrEmbeddingProviderError}
	svc := New(repo, emb, "poses", 3)

	req := mustRequest(t, "q", 3)
	_, err := svc.Search(context.Background(), &req)
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected ErrEmbeddingProviderError, got %v", err)
	}
	if repo.called {
		t.Error("repository must not be queried after an embedding failure")
	}
}

func TestSearch_DimMismatch(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockEmbedder{vec: []float32{1, 2}}, "poses", 3)

	req := mustRequest(t, "q", 3)
	_, err := svc.Search(context.Background(), &req)
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
	if repo.called {
		t.Error("repository must not be queried with a mismatched vector")
	}
}

func TestSearch_RepoError(t *testing.T) {
	repo := &mockRepo{err: errors.New("connection refused")}
	svc := New(repo, &mockEmbedder{vec: []float32{1}}, "poses", 0)

	req := mustRequest(t, "q", 3)
	if _, err := svc.Search(context.Background(), &req); err == nil {
		t.Fatal("expected error")
	}
}
