package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/Team2Kim/exerciesRecord-AI/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new catalog repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new catalog record. The caller is expected to have run
// domain validation; this only guards the uniqueness of the catalog ID.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	if err := exercise.Validate(); err != nil {
		return err
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, exercise)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateID
	}
	return err
}

// GetByExerciseID retrieves a record by its public catalog identifier.
func (r *mongoExerciseRepository) GetByExerciseID(ctx context.Context, exerciseID int64) (*domain.Exercise, error) {
	var exercise domain.Exercise
	filter := bson.M{"exerciseId": exerciseID}

	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// List returns one page of the catalog plus the total match count.
func (r *mongoExerciseRepository) List(ctx context.Context, opts repository.ListOptions) ([]domain.Exercise, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}

	filter := bson.M{}
	if opts.Search != "" {
		filter["name"] = bson.M{"$regex": opts.Search, "$options": "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "exerciseId", Value: 1}}).
		SetSkip(int64((opts.Page - 1) * opts.PageSize)).
		SetLimit(int64(opts.PageSize))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, 0, err
	}

	return exercises, total, nil
}

// All streams the full catalog, ordered by catalog identifier. This is the
// read the snapshot loader uses; ordering here is what makes snapshot
// iteration deterministic.
func (r *mongoExerciseRepository) All(ctx context.Context) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "exerciseId", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

// UpdateMedia modifies the display and media fields of a record. Scoring
// attributes (body part, category, difficulty, duration, goal) are
// deliberately not updatable through this path.
func (r *mongoExerciseRepository) UpdateMedia(ctx context.Context, exerciseID int64, name, videoKey, imageKey string) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if name != "" {
		set["name"] = name
	}
	if videoKey != "" {
		set["videoObjectKey"] = videoKey
	}
	if imageKey != "" {
		set["imageObjectKey"] = imageKey
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"exerciseId": exerciseID},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count returns the catalog size.
func (r *mongoExerciseRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureExerciseIndexes creates the indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// The public catalog identifier must be unique.
			Keys:    bson.D{{Key: "exerciseId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "bodyPart", Value: 1}, {Key: "difficulty", Value: 1}},
			Options: options.Index(),
		},
	}

	// Index creation failing is not fatal; queries degrade to scans.
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: failed to create indexes for %s: %v", collection.Name(), err)
	}
}
