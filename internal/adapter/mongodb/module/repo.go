// Package module implements the Module repository using MongoDB.
package module

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/skilltracker-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/skilltracker-backend/internal/domain"
)

// document is the stored shape of a module. Skill references the owning
// skill's _id.
type document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Skill       primitive.ObjectID `bson:"skill"`
}

func (d document) toDomain() domain.Module {
	return domain.Module{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		SkillID:     d.Skill.Hex(),
	}
}

// Repo provides module persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new module repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.ModulesCollection)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ExistsByTitle reports whether a module with exactly this title exists
// under any skill.
func (r *Repo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "title", Value: title}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count modules by title: %w", err)
	}
	return n > 0, nil
}

// ListBySkillID returns all modules of a skill in insertion order.
// Unknown or malformed skill ids yield an empty slice.
func (r *Repo) ListBySkillID(ctx context.Context, skillID string) ([]*domain.Module, error) {
	oid, ok := mongodb.ParseID(skillID)
	if !ok {
		return []*domain.Module{}, nil
	}

	docs, err := r.find(ctx, bson.D{{Key: "skill", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("list modules by skill %s: %w", skillID, err)
	}

	modules := make([]*domain.Module, len(docs))
	for i, d := range docs {
		m := d.toDomain()
		modules[i] = &m
	}
	return modules, nil
}

// ListBySkillIDs returns the modules of several skills (batch for DataLoader).
func (r *Repo) ListBySkillIDs(ctx context.Context, skillIDs []string) ([]domain.Module, error) {
	oids := mongodb.ParseIDs(skillIDs)
	if len(oids) == 0 {
		return []domain.Module{}, nil
	}

	docs, err := r.find(ctx, bson.D{{Key: "skill", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return nil, fmt.Errorf("list modules by skills: %w", err)
	}

	modules := make([]domain.Module, len(docs))
	for i, d := range docs {
		modules[i] = d.toDomain()
	}
	return modules, nil
}

// CountBySkillID returns the number of modules referencing the skill.
func (r *Repo) CountBySkillID(ctx context.Context, skillID string) (int, error) {
	oid, ok := mongodb.ParseID(skillID)
	if !ok {
		return 0, nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "skill", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("count modules by skill %s: %w", skillID, err)
	}
	return int(n), nil
}

// ListOrphans returns modules whose skill reference no longer resolves.
func (r *Repo) ListOrphans(ctx context.Context) ([]domain.Module, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: mongodb.SkillsCollection},
			{Key: "localField", Value: "skill"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: bson.D{{Key: "$size", Value: 0}}}}}},
		{{Key: "$project", Value: bson.D{{Key: "owner", Value: 0}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list orphan modules: %w", err)
	}

	docs := []document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list orphan modules: %w", err)
	}

	out := make([]domain.Module, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *Repo) find(ctx context.Context, filter bson.D) ([]document, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	docs := []document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a module and returns it with its generated id.
// Returns domain.ErrAlreadyExists if the title is taken.
func (r *Repo) Create(ctx context.Context, m *domain.Module) (*domain.Module, error) {
	skillOID, ok := mongodb.ParseID(m.SkillID)
	if !ok {
		return nil, fmt.Errorf("skill %s: %w", m.SkillID, domain.ErrNotFound)
	}

	doc := document{
		ID:          primitive.NewObjectID(),
		Title:       m.Title,
		Description: m.Description,
		Skill:       skillOID,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, "module", doc.ID.Hex())
	}

	created := doc.toDomain()
	return &created, nil
}

// Delete removes a module and returns the removed record.
// Returns domain.ErrNotFound if the module does not exist.
func (r *Repo) Delete(ctx context.Context, id string) (*domain.Module, error) {
	oid, ok := mongodb.ParseID(id)
	if !ok {
		return nil, fmt.Errorf("module %s: %w", id, domain.ErrNotFound)
	}

	var doc document
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, mongodb.MapError(err, "module", id)
	}

	m := doc.toDomain()
	return &m, nil
}
