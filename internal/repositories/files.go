package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rohandas-dev/cabinet/internal/models"
)

// PageSize is the fixed number of records returned per listing page.
const PageSize = 20

type FileRepository interface {
	Create(ctx context.Context, file *models.File) (*models.File, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.File, error)
	FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.File, error)
	ListByParent(ctx context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]models.File, error)
	SetPublic(ctx context.Context, id, userID primitive.ObjectID, public bool) (*models.File, error)
	Count(ctx context.Context) (int64, error)
}

type mongoFileRepository struct {
	coll *mongo.Collection
}

func NewFileRepository(db *mongo.Database) FileRepository {
	return &mongoFileRepository{coll: db.Collection("files")}
}

func (r *mongoFileRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {
	res, err := r.coll.InsertOne(ctx, file)
	if err != nil {
		return nil, err
	}
	file.ID = res.InsertedID.(primitive.ObjectID)
	return file, nil
}

func (r *mongoFileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoFileRepository) FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.File, error) {
	return r.findOne(ctx, bson.M{"_id": id, "userId": userID})
}

func (r *mongoFileRepository) findOne(ctx context.Context, filter bson.M) (*models.File, error) {
	var file models.File
	err := r.coll.FindOne(ctx, filter).Decode(&file)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *mongoFileRepository) ListByParent(ctx context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]models.File, error) {
	filter := bson.M{"userId": userID}
	if parentID == nil {
		// Root records carry no parentId field.
		filter["parentId"] = bson.M{"$exists": false}
	} else {
		filter["parentId"] = *parentID
	}

	opts := options.Find().
		SetSkip(page * PageSize).
		SetLimit(PageSize)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	files := make([]models.File, 0, PageSize)
	if err := cur.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// SetPublic flips isPublic and returns the post-update record in one
// owner-scoped FindOneAndUpdate, so the response always reflects the
// caller's own write.
func (r *mongoFileRepository) SetPublic(ctx context.Context, id, userID primitive.ObjectID, public bool) (*models.File, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var file models.File
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"isPublic": public}},
		opts,
	).Decode(&file)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *mongoFileRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
