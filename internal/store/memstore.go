package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store with the same semantics as the Mongo
// implementation. The service tests run against it instead of a live
// database.
type Memory struct {
	mu   sync.Mutex
	cols map[string]map[string]bson.M
	seq  int
}

func NewMemory() *Memory {
	return &Memory{cols: make(map[string]map[string]bson.M)}
}

func (s *Memory) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	m, err := toFieldMap(doc)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("doc-%04d", s.seq)
	now := primitive.NewDateTimeFromTime(time.Now().UTC())
	m["_id"] = id
	m["createdAt"] = now
	m["updatedAt"] = now

	if s.cols[collection] == nil {
		s.cols[collection] = make(map[string]bson.M)
	}
	s.cols[collection][id] = m
	return id, nil
}

func (s *Memory) Get(ctx context.Context, collection, id string, out interface{}) error {
	s.mu.Lock()
	doc, ok := s.cols[collection][id]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func (s *Memory) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	norm, err := toFieldMap(fields)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.cols[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range norm {
		doc[k] = v
	}
	doc["updatedAt"] = primitive.NewDateTimeFromTime(time.Now().UTC())
	return nil
}

func (s *Memory) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cols[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.cols[collection], id)
	return nil
}

func (s *Memory) Find(ctx context.Context, collection string, q Query, out interface{}) error {
	s.mu.Lock()
	var matched []bson.M
	for _, doc := range s.cols[collection] {
		if matchesFilters(doc, q.Filters) {
			matched = append(matched, doc)
		}
	}
	s.mu.Unlock()

	// Stable id order first so unsorted queries are deterministic.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i]["_id"].(string) < matched[j]["_id"].(string)
	})
	if q.Sort != nil {
		field, desc := q.Sort.Field, q.Sort.Desc
		sort.SliceStable(matched, func(i, j int) bool {
			c := compareValues(matched[i][field], matched[j][field])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}

	return decodeAll(matched, out)
}

func matchesFilters(doc bson.M, filters []Filter) bool {
	for _, f := range filters {
		want, err := toFieldMap(map[string]interface{}{"v": f.Value})
		if err != nil {
			return false
		}
		if compareValues(doc[f.Field], want["v"]) != 0 {
			return false
		}
	}
	return true
}

// compareValues orders two bson-normalized values. Mixed numeric widths
// compare by value; anything else compares as strings.
func compareValues(a, b interface{}) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as := fmt.Sprintf("%v", a)
	bs := fmt.Sprintf("%v", b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case primitive.DateTime:
		return float64(n), true
	case time.Time:
		return float64(primitive.NewDateTimeFromTime(n)), true
	}
	return 0, false
}

// decodeAll decodes the matched documents into *[]T, mirroring what the
// Mongo cursor's All does.
func decodeAll(docs []bson.M, out interface{}) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return errors.New("find result must be a pointer to a slice")
	}

	slice := v.Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, len(docs)))
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(slice.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}
