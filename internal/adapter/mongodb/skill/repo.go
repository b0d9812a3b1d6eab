// Package skill implements the Skill repository using MongoDB.
package skill

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/skilltracker-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// lockField counts reference-adding transactions; see Lock.
const lockField = "lock"

// document is the stored shape of a skill.
type document struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Status string             `bson:"status"`
	Lock   int64              `bson:"lock,omitempty"`
}

func (d document) toDomain() domain.Skill {
	return domain.Skill{
		ID:     d.ID.Hex(),
		Title:  d.Title,
		Status: domain.SkillStatus(d.Status),
	}
}

// Repo provides skill persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new skill repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.SkillsCollection)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a skill by id.
// Returns domain.ErrNotFound if the id is malformed or no skill matches.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	oid, ok := mongodb.ParseID(id)
	if !ok {
		return nil, fmt.Errorf("skill %s: %w", id, domain.ErrNotFound)
	}

	var doc document
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "skill", id)
	}

	s := doc.toDomain()
	return &s, nil
}

// GetByIDs returns the skills matching ids (batch for DataLoader).
// Unknown and malformed ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.Skill, error) {
	oids := mongodb.ParseIDs(ids)
	if len(oids) == 0 {
		return []domain.Skill{}, nil
	}

	cur, err := r.coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return nil, fmt.Errorf("get skills by ids: %w", err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("get skills by ids: %w", err)
	}

	skills := make([]domain.Skill, len(docs))
	for i, d := range docs {
		skills[i] = d.toDomain()
	}
	return skills, nil
}

// ExistsByTitle reports whether a skill with exactly this title exists.
func (r *Repo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "title", Value: title}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count skills by title: %w", err)
	}
	return n > 0, nil
}

// List returns one page of skills matching the filter.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.SkillFilter) ([]*domain.Skill, error) {
	query := buildListQuery(f)

	opts := options.Find().
		SetSort(buildSort(f)).
		SetSkip(int64(f.Offset))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	skills := make([]*domain.Skill, len(docs))
	for i, d := range docs {
		s := d.toDomain()
		skills[i] = &s
	}
	return skills, nil
}

// buildListQuery translates the filter into a find document.
// The title is matched as a literal, case-insensitive substring.
func buildListQuery(f domain.SkillFilter) bson.D {
	query := bson.D{}
	if f.Title != nil && *f.Title != "" {
		query = append(query, bson.E{Key: "title", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(*f.Title),
			Options: "i",
		}})
	}
	if f.Status != nil && *f.Status != "" {
		query = append(query, bson.E{Key: "status", Value: string(*f.Status)})
	}
	return query
}

// buildSort orders by the requested field, then by _id so that pages stay
// stable when several skills share the same key.
func buildSort(f domain.SkillFilter) bson.D {
	field := f.SortBy
	if field == "" {
		field = domain.SkillSortTitle
	}
	order := f.SortOrder
	if order == 0 {
		order = domain.SortAsc
	}
	return bson.D{
		{Key: field.String(), Value: int(order)},
		{Key: "_id", Value: int(order)},
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a skill and returns it with its generated id.
// Returns domain.ErrAlreadyExists if the title is taken.
func (r *Repo) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	doc := document{
		ID:     primitive.NewObjectID(),
		Title:  s.Title,
		Status: string(s.Status),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "skill", doc.ID.Hex())
	}

	created := doc.toDomain()
	return &created, nil
}

// Update applies the non-nil fields of params and returns the updated skill.
// With no fields set it returns the current skill unchanged.
// Returns domain.ErrNotFound if the skill does not exist and
// domain.ErrAlreadyExists if the new title is taken.
func (r *Repo) Update(ctx context.Context, id string, params domain.SkillUpdateParams) (*domain.Skill, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	oid, ok := mongodb.ParseID(id)
	if !ok {
		return nil, fmt.Errorf("skill %s: %w", id, domain.ErrNotFound)
	}

	set := bson.D{}
	if params.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *params.Title})
	}
	if params.Status != nil {
		set = append(set, bson.E{Key: "status", Value: string(*params.Status)})
	}

	var doc document
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, mongodb.MapError(err, "skill", id)
	}

	s := doc.toDomain()
	return &s, nil
}

// Lock increments a counter on the skill document and returns the skill.
// Inside a transaction this makes any concurrent transaction that writes the
// same skill, Delete included, fail with a write conflict. Callers that add
// references to a skill use it in place of GetByID.
// Returns domain.ErrNotFound if the skill does not exist.
func (r *Repo) Lock(ctx context.Context, id string) (*domain.Skill, error) {
	oid, ok := mongodb.ParseID(id)
	if !ok {
		return nil, fmt.Errorf("skill %s: %w", id, domain.ErrNotFound)
	}

	var doc document
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: lockField, Value: 1}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, mongodb.MapError(err, "skill", id)
	}

	s := doc.toDomain()
	return &s, nil
}

// Delete removes a skill and returns the removed record.
// Returns domain.ErrNotFound if the skill does not exist.
func (r *Repo) Delete(ctx context.Context, id string) (*domain.Skill, error) {
	oid, ok := mongodb.ParseID(id)
	if !ok {
		return nil, fmt.Errorf("skill %s: %w", id, domain.ErrNotFound)
	}

	var doc document
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "skill", id)
	}

	s := doc.toDomain()
	return &s, nil
}
