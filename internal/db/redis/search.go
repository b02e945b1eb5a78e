package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/posedex/internal/db"
	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
)

// scoreField carries the KNN distance in FT.SEARCH replies.
const scoreField = "__vector_score"

// tagSyntax lists the characters the query parser treats as syntax inside a {tag} clause.
const tagSyntax = ",.<>{}\"':;!@#$%^&*()-+=~| "

// SearchKNN runs a KNN query against the index's "vector" attribute.
// Entries are ordered by ascending distance; equal distances keep server order.
func (s *Store) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	switch {
	case q.IndexName == "":
		return nil, errors.New("knn: index name is required")
	case len(q.Vector) == 0:
		return nil, errors.New("knn: query vector is required")
	case q.K <= 0:
		return nil, fmt.Errorf("knn: k must be positive, got %d", q.K)
	}

	cmd := s.client.B().Arbitrary(db.CmdSearch).Args(knnArgs(q)...).Build()
	reply, err := s.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, searchErr(q.IndexName, err)
	}
	return parseKNN(reply)
}

// SearchCount reports how many documents the index holds.
func (s *Store) SearchCount(ctx context.Context, index string) (int, error) {
	cmd := s.client.B().Arbitrary(db.CmdSearch).Args(index, "*", "LIMIT", "0", "0").Build()
	reply, err := s.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return 0, searchErr(index, err)
	}
	if len(reply) == 0 {
		return 0, nil
	}
	n, err := reply[0].AsInt64()
	if err != nil {
		return 0, fmt.Errorf("count reply: %w", err)
	}
	return int(n), nil
}

// searchErr maps an unknown-index reply to db.ErrIndexNotFound.
func searchErr(index string, err error) error {
	if indexMissing(err) {
		err = db.ErrIndexNotFound
	}
	return &db.Error{Cmd: db.CmdSearch, Target: index, Err: err}
}

// knnArgs renders: <index> "<prefilter>=>[KNN k @vector $BLOB]" [RETURN ...] LIMIT PARAMS DIALECT 2.
func knnArgs(q *db.KNNQuery) []string {
	prefilter := tagFilter(q.Filters)
	if prefilter == "" {
		prefilter = "*"
	} else {
		prefilter = "(" + prefilter + ")"
	}
	k := strconv.Itoa(q.K)

	args := []string{q.IndexName, prefilter + "=>[KNN " + k + " @vector $BLOB]"}
	if n := len(q.ReturnFields); n > 0 {
		args = append(args, "RETURN", strconv.Itoa(n+1))
		args = append(args, q.ReturnFields...)
		args = append(args, scoreField)
	}
	return append(args,
		"LIMIT", "0", k,
		"PARAMS", "2", "BLOB", string(db.EncodeVector(q.Vector)),
		"DIALECT", "2",
	)
}

// tagFilter ANDs every condition as an @field:{value} clause.
func tagFilter(expr filter.Expression) string {
	conds := expr.Must()
	clauses := make([]string, len(conds))
	for i, c := range conds {
		clauses[i] = "@" + c.Key() + ":{" + escapeTag(c.Match()) + "}"
	}
	return strings.Join(clauses, " ")
}

func escapeTag(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if strings.ContainsRune(tagSyntax, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// parseKNN decodes the RESP2 reply [total, key, [field, value, ...], key, [...], ...]
// and lifts the score field into SearchEntry.Distance. Malformed pairs are skipped.
func parseKNN(reply []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(reply) == 0 {
		return &db.SearchResult{}, nil
	}
	total, err := reply[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("knn reply total: %w", err)
	}

	entries := make([]db.SearchEntry, 0, len(reply)/2)
	for i := 1; i+1 < len(reply); i += 2 {
		key, kerr := reply[i].ToString()
		attrs, aerr := reply[i+1].ToArray()
		if kerr != nil || aerr != nil {
			continue
		}
		fields := pairsToMap(attrs)
		entry := db.SearchEntry{Key: key, Fields: fields}
		if raw, ok := fields[scoreField]; ok {
			entry.Distance, _ = strconv.ParseFloat(raw, 64)
			delete(fields, scoreField)
		}
		entries = append(entries, entry)
	}

	slices.SortStableFunc(entries, func(a, b db.SearchEntry) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func pairsToMap(flat []rueidis.RedisMessage) map[string]string {
	out := make(map[string]string, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		name, nerr := flat[i].ToString()
		value, verr := flat[i+1].ToString()
		if nerr == nil && verr == nil {
			out[name] = value
		}
	}
	return out
}
