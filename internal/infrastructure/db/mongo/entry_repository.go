package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
)

const entriesCollection = "fitness_entries"

type EntryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{coll: db.Collection(entriesCollection)}
}

type mongoEntry struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         primitive.ObjectID `bson:"user_id"`
	ActivityName   string             `bson:"activity_name"`
	Duration       int                `bson:"duration"`
	Intensity      string             `bson:"intensity"`
	CaloriesBurned int                `bson:"calories_burned"`
	ActivityDate   time.Time          `bson:"activity_date"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (e mongoEntry) toDomain() *domain.Entry {
	return &domain.Entry{
		ID:             e.ID.Hex(),
		UserID:         e.UserID.Hex(),
		ActivityName:   e.ActivityName,
		Duration:       e.Duration,
		Intensity:      e.Intensity,
		CaloriesBurned: e.CaloriesBurned,
		ActivityDate:   e.ActivityDate.UTC(),
		CreatedAt:      e.CreatedAt.UTC(),
		UpdatedAt:      e.UpdatedAt.UTC(),
	}
}

// scopedFilter builds the {_id, user_id} filter applied to every single-entry
// operation. Malformed ids behave exactly like a miss so nothing about other
// users' records leaks.
func scopedFilter(userID, entryID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}
	return bson.M{"_id": oid, "user_id": uid}, nil
}

func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(entry.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	doc := mongoEntry{
		UserID:         uid,
		ActivityName:   entry.ActivityName,
		Duration:       entry.Duration,
		Intensity:      entry.Intensity,
		CaloriesBurned: entry.CaloriesBurned,
		ActivityDate:   entry.ActivityDate,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	created := *entry
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "activity_date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer cur.Close(ctx)

	entries := []*domain.Entry{}
	for cur.Next(ctx) {
		var me mongoEntry
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, me.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (r *EntryRepository) FindByID(ctx context.Context, userID, entryID string) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := scopedFilter(userID, entryID)
	if err != nil {
		return nil, err
	}

	var me mongoEntry
	if err := r.coll.FindOne(ctx, filter).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return me.toDomain(), nil
}

// Update replaces the mutable fields in one conditional operation: the write
// only happens when {_id, user_id} still matches exactly one document.
func (r *EntryRepository) Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := scopedFilter(entry.UserID, entry.ID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"activity_name":   entry.ActivityName,
		"duration":        entry.Duration,
		"intensity":       entry.Intensity,
		"calories_burned": entry.CaloriesBurned,
		"activity_date":   entry.ActivityDate,
		"updated_at":      entry.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var me mongoEntry
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return me.toDomain(), nil
}

func (r *EntryRepository) Delete(ctx context.Context, userID, entryID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := scopedFilter(userID, entryID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// EnsureIndexes creates the owner+date index backing the scoped list query.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "activity_date", Value: -1}},
	})
	return err
}
