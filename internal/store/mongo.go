package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a MongoDB database.
//
// Ids are ObjectID hex strings assigned here rather than by the driver,
// so the rest of the system only ever sees opaque strings.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (s *Mongo) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	m, err := toFieldMap(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	now := time.Now().UTC()
	m["_id"] = id
	m["createdAt"] = now
	m["updatedAt"] = now

	if _, err := s.db.Collection(collection).InsertOne(ctx, m); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Mongo) Get(ctx context.Context, collection, id string, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *Mongo) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) Find(ctx context.Context, collection string, q Query, out interface{}) error {
	filter := bson.M{}
	for _, f := range q.Filters {
		filter[f.Field] = f.Value
	}

	opts := options.Find()
	if q.Sort != nil {
		dir := 1
		if q.Sort.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.Sort.Field, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// toFieldMap flattens a typed document into the free-form field map the
// store actually persists.
func toFieldMap(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
