package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"Datashare/internal/core/datasets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "datasets"

// datasetDoc is the stored shape of a dataset. The repository owns the
// ObjectID mapping so the core only ever sees the hex string form.
type datasetDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
	Author      string             `bson:"author"`
	Status      string             `bson:"status"`
	Size        int64              `bson:"size"`
}

func (d *datasetDoc) toDataset() datasets.Dataset {
	return datasets.Dataset{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Date:        d.Date,
		Author:      d.Author,
		Status:      d.Status,
		Size:        d.Size,
	}
}

type mongoDatasetRepo struct {
	collection *mongo.Collection
}

// NewDatasetRepository creates a new MongoDB dataset repository
func NewDatasetRepository(db *mongo.Database) datasets.Repository {
	return &mongoDatasetRepo{collection: db.Collection(collectionName)}
}

// Insert stores a new metadata document and writes the generated id back
// into the dataset
func (r *mongoDatasetRepo) Insert(ctx context.Context, dataset *datasets.Dataset) error {
	doc := datasetDoc{
		Name:        dataset.Name,
		Description: dataset.Description,
		Date:        dataset.Date,
		Author:      dataset.Author,
		Status:      dataset.Status,
		Size:        dataset.Size,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	dataset.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// GetByID retrieves a dataset by its hex id
func (r *mongoDatasetRepo) GetByID(ctx context.Context, id string) (*datasets.Dataset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, datasets.ErrMalformedDatasetID
	}

	var doc datasetDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, datasets.ErrDatasetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset %s: %w", id, err)
	}

	dataset := doc.toDataset()
	return &dataset, nil
}

// ListApproved retrieves datasets whose status is approved, newest first
func (r *mongoDatasetRepo) ListApproved(ctx context.Context, limit, skip int64) ([]datasets.Dataset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"status": datasets.StatusApproved}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved datasets: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

// escapeRegex neutralizes regex metacharacters so user input only ever
// matches literally
var escapeRegex = regexp.MustCompile(`[.*+?^${}()|[\]\\]`)

// SearchByName retrieves datasets matching a name. Substring searches build
// a regex from the escaped input; exact searches match the whole field.
func (r *mongoDatasetRepo) SearchByName(ctx context.Context, name string, searchOpts datasets.SearchOptions) ([]datasets.Dataset, error) {
	escaped := escapeRegex.ReplaceAllString(name, `\$0`)

	pattern := escaped
	if searchOpts.Exact {
		pattern = "^" + escaped + "$"
	}

	regex := primitive.Regex{Pattern: pattern}
	if searchOpts.CaseInsensitive {
		regex.Options = "i"
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetSkip(searchOpts.Skip)
	if searchOpts.Limit > 0 {
		findOpts.SetLimit(searchOpts.Limit)
	}

	filter := bson.M{
		"name":   regex,
		"status": datasets.StatusApproved,
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to search datasets by name: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

// SetStatus updates a dataset's status and returns the updated document
func (r *mongoDatasetRepo) SetStatus(ctx context.Context, id, status string) (*datasets.Dataset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, datasets.ErrMalformedDatasetID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc datasetDoc
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, datasets.ErrDatasetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update dataset %s status: %w", id, err)
	}

	dataset := doc.toDataset()
	return &dataset, nil
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]datasets.Dataset, error) {
	results := []datasets.Dataset{}
	for cursor.Next(ctx) {
		var doc datasetDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode dataset: %w", err)
		}
		results = append(results, doc.toDataset())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate datasets: %w", err)
	}

	return results, nil
}
